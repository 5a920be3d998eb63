package catalog

import "context"

// ProductRepository persists catalog products. Create assigns ids in strict
// insertion order starting at zero; entries are never deleted, so an id is
// also the product's stable position in the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint64) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, product *Product) error
}
