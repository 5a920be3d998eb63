package usecases

import (
	"context"

	"milkrun/internal/domain/customer"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type UpdateProfileCommand struct {
	PhoneNumber string
	Name        string
	Address     string
}

type UpdateProfileUseCase struct {
	profileRepo customer.ProfileRepository
	clock       clock.Clock
	logger      logger.Interface
}

func NewUpdateProfileUseCase(profileRepo customer.ProfileRepository, clk clock.Clock, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
		clock:       clk,
		logger:      logger,
	}
}

// Execute updates name and address, inserting the profile if it does not
// exist yet. Order history and subscription state are untouched.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*customer.Profile, error) {
	now := uc.clock.Now()

	profile, err := uc.profileRepo.GetByPhone(ctx, cmd.PhoneNumber)
	if err != nil {
		uc.logger.Errorw("failed to look up profile", "error", err, "phone", cmd.PhoneNumber)
		return nil, apperrors.NewInternalError("failed to look up profile")
	}

	if profile == nil {
		profile, err = customer.NewProfile(cmd.PhoneNumber, cmd.Name, cmd.Address, now)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid profile", err.Error())
		}
	} else if err := profile.UpdateDetails(cmd.Name, cmd.Address, now); err != nil {
		return nil, apperrors.NewValidationError("invalid profile", err.Error())
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		uc.logger.Errorw("failed to store profile", "error", err, "phone", cmd.PhoneNumber)
		return nil, apperrors.NewInternalError("failed to store profile")
	}

	return profile, nil
}
