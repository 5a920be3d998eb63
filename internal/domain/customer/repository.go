package customer

import "context"

// ProfileRepository persists customer profiles keyed by phone number. The
// key uniqueness invariant is enforced by the store itself.
type ProfileRepository interface {
	GetByPhone(ctx context.Context, phoneNumber string) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, phoneNumber string) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
}
