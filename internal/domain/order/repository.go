package order

import "context"

// Repository persists orders. Create assigns the next id from a monotonic
// sequence; ids are never reused and orders are never deleted.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint64) (*Order, error)
	GetByPhone(ctx context.Context, phoneNumber string) ([]*Order, error)
	List(ctx context.Context) ([]*Order, error)
	Update(ctx context.Context, order *Order) error
}
