package subscription

import (
	"context"
	"time"

	vo "milkrun/internal/domain/subscription/valueobjects"
)

// Repository persists subscriptions. Create assigns the next id from a
// monotonic sequence; records are never deleted.
type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint64) (*Subscription, error)
	GetByPhone(ctx context.Context, phoneNumber string) ([]*Subscription, error)
	List(ctx context.Context) ([]*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error

	// FindDue returns active subscriptions whose next order date is at or
	// before asOf, for the recurring-order sweep.
	FindDue(ctx context.Context, asOf time.Time) ([]*Subscription, error)

	// HasWithStatus reports whether the user holds any subscription in the
	// given status. Used to enforce the one-active-per-phone invariant.
	HasWithStatus(ctx context.Context, phoneNumber string, status vo.SubscriptionStatus) (bool, error)
}
