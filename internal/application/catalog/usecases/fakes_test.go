package usecases

import (
	"context"

	"milkrun/internal/domain/catalog"
)

// In-memory fakes for use case tests.

type fakeProductRepo struct {
	products  map[uint64]*catalog.Product
	createErr error
	getErr    error
	updateErr error
}

func newFakeProductRepo(products ...*catalog.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uint64]*catalog.Product)}
	for _, p := range products {
		r.products[p.ID()] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, product *catalog.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	id := uint64(len(r.products))
	if id != 0 {
		if err := product.SetID(id); err != nil {
			return err
		}
	}
	r.products[id] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uint64) (*catalog.Product, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.products[id], nil
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*catalog.Product, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	var result []*catalog.Product
	for id := uint64(0); id < uint64(len(r.products)); id++ {
		result = append(result, r.products[id])
	}
	return result, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *catalog.Product) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.products[product.ID()] = product
	return nil
}

type fakeInitFlagRepo struct {
	initialized bool
	readErr     error
	writeErr    error
}

func (r *fakeInitFlagRepo) IsInitialized(ctx context.Context) (bool, error) {
	if r.readErr != nil {
		return false, r.readErr
	}
	return r.initialized, nil
}

func (r *fakeInitFlagRepo) MarkInitialized(ctx context.Context) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.initialized = true
	return nil
}
