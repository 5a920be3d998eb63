package usecases

import (
	"context"
	"slices"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/domain/customer"
	"milkrun/internal/domain/order"
)

// In-memory fakes for use case tests. Error fields inject failures per
// method; the zero value behaves like an empty store.

type fakeOrderRepo struct {
	orders    map[uint64]*order.Order
	nextID    uint64
	createErr error
	getErr    error
	updateErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint64]*order.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	if err := o.SetID(r.nextID); err != nil {
		return err
	}
	r.orders[o.ID()] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uint64) (*order.Order, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetByPhone(ctx context.Context, phoneNumber string) ([]*order.Order, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	var result []*order.Order
	for id := uint64(1); id <= r.nextID; id++ {
		if o, ok := r.orders[id]; ok && o.IsOwnedBy(phoneNumber) {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]*order.Order, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	var result []*order.Order
	for id := uint64(1); id <= r.nextID; id++ {
		if o, ok := r.orders[id]; ok {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, o *order.Order) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.orders[o.ID()] = o
	return nil
}

type fakeProfileRepo struct {
	profiles  map[string]*customer.Profile
	getErr    error
	upsertErr error
}

func newFakeProfileRepo(profiles ...*customer.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[string]*customer.Profile)}
	for _, p := range profiles {
		r.profiles[p.PhoneNumber()] = p
	}
	return r
}

func (r *fakeProfileRepo) GetByPhone(ctx context.Context, phoneNumber string) (*customer.Profile, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.profiles[phoneNumber], nil
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, profile *customer.Profile) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.profiles[profile.PhoneNumber()] = profile
	return nil
}

func (r *fakeProfileRepo) Delete(ctx context.Context, phoneNumber string) (*customer.Profile, error) {
	p := r.profiles[phoneNumber]
	delete(r.profiles, phoneNumber)
	return p, nil
}

func (r *fakeProfileRepo) List(ctx context.Context) ([]*customer.Profile, error) {
	var result []*customer.Profile
	for _, p := range r.profiles {
		result = append(result, p)
	}
	slices.SortFunc(result, func(a, b *customer.Profile) int {
		switch {
		case a.PhoneNumber() < b.PhoneNumber():
			return -1
		case a.PhoneNumber() > b.PhoneNumber():
			return 1
		default:
			return 0
		}
	})
	return result, nil
}

type fakeProductRepo struct {
	products map[uint64]*catalog.Product
	getErr   error
}

func newFakeProductRepo(products ...*catalog.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uint64]*catalog.Product)}
	for _, p := range products {
		r.products[p.ID()] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, product *catalog.Product) error {
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
	var result []*catalog.Product
	for id := uint64(0); id < uint64(len(r.products)); id++ {
		result = append(result, r.products[id])
	}
	return result, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *catalog.Product) error {
	r.products[product.ID()] = product
	return nil
}
