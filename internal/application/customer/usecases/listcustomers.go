package usecases

import (
	"context"
	"fmt"

	"milkrun/internal/domain/customer"
	"milkrun/internal/shared/logger"
)

// ListCustomersUseCase returns every profile. Admin only; the guard is
// applied before this runs.
type ListCustomersUseCase struct {
	profileRepo customer.ProfileRepository
	logger      logger.Interface
}

func NewListCustomersUseCase(profileRepo customer.ProfileRepository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]*customer.Profile, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list profiles", "error", err)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}
