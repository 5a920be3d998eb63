package usecases

import (
	"context"
	"strings"

	"milkrun/internal/domain/customer"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type GetProfileUseCase struct {
	profileRepo customer.ProfileRepository
	logger      logger.Interface
}

func NewGetProfileUseCase(profileRepo customer.ProfileRepository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, phoneNumber string) (*customer.Profile, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, apperrors.NewValidationError("phone number is required")
	}

	profile, err := uc.profileRepo.GetByPhone(ctx, phoneNumber)
	if err != nil {
		uc.logger.Errorw("failed to look up profile", "error", err, "phone", phoneNumber)
		return nil, apperrors.NewInternalError("failed to look up profile")
	}
	if profile == nil {
		return nil, apperrors.NewNotFoundError("user profile not found")
	}
	return profile, nil
}
