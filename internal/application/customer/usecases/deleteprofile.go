package usecases

import (
	"context"
	"strings"

	"milkrun/internal/domain/customer"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

// DeleteProfileUseCase removes a profile. Admin only; orders and
// subscriptions referencing the phone number are left in place and treated
// as dangling references by their readers.
type DeleteProfileUseCase struct {
	profileRepo customer.ProfileRepository
	logger      logger.Interface
}

func NewDeleteProfileUseCase(profileRepo customer.ProfileRepository, logger logger.Interface) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *DeleteProfileUseCase) Execute(ctx context.Context, phoneNumber string) (*customer.Profile, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, apperrors.NewValidationError("phone number is required")
	}

	deleted, err := uc.profileRepo.Delete(ctx, phoneNumber)
	if err != nil {
		uc.logger.Errorw("failed to delete profile", "error", err, "phone", phoneNumber)
		return nil, apperrors.NewInternalError("failed to delete profile")
	}
	if deleted == nil {
		return nil, apperrors.NewNotFoundError("user profile not found")
	}

	uc.logger.Infow("profile deleted", "phone", phoneNumber)
	return deleted, nil
}
