package usecases

import (
	"context"

	"milkrun/internal/domain/customer"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type CreateProfileCommand struct {
	PhoneNumber string
	Name        string
	Address     string
}

type CreateProfileUseCase struct {
	profileRepo customer.ProfileRepository
	clock       clock.Clock
	logger      logger.Interface
}

func NewCreateProfileUseCase(profileRepo customer.ProfileRepository, clk clock.Clock, logger logger.Interface) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		profileRepo: profileRepo,
		clock:       clk,
		logger:      logger,
	}
}

// Execute creates a profile; the phone number must not already be taken.
func (uc *CreateProfileUseCase) Execute(ctx context.Context, cmd CreateProfileCommand) (*customer.Profile, error) {
	profile, err := customer.NewProfile(cmd.PhoneNumber, cmd.Name, cmd.Address, uc.clock.Now())
	if err != nil {
		return nil, apperrors.NewValidationError("invalid profile", err.Error())
	}

	existing, err := uc.profileRepo.GetByPhone(ctx, cmd.PhoneNumber)
	if err != nil {
		uc.logger.Errorw("failed to look up profile", "error", err, "phone", cmd.PhoneNumber)
		return nil, apperrors.NewInternalError("failed to look up profile")
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("profile already exists")
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		uc.logger.Errorw("failed to store profile", "error", err, "phone", cmd.PhoneNumber)
		return nil, apperrors.NewInternalError("failed to store profile")
	}

	uc.logger.Infow("profile created", "phone", profile.PhoneNumber())
	return profile, nil
}
