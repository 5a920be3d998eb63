package usecases

import (
	"context"
	"slices"

	"milkrun/internal/domain/customer"
)

// In-memory fake for use case tests.

type fakeProfileRepo struct {
	profiles  map[string]*customer.Profile
	getErr    error
	upsertErr error
	deleteErr error
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
	if r.deleteErr != nil {
		return nil, r.deleteErr
	}
	p := r.profiles[phoneNumber]
	delete(r.profiles, phoneNumber)
	return p, nil
}

func (r *fakeProfileRepo) List(ctx context.Context) ([]*customer.Profile, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
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
