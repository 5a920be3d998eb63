package usecases

import (
	"context"
	"strings"

	"milkrun/internal/domain/subscription"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type GetMySubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetMySubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *GetMySubscriptionsUseCase {
	return &GetMySubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute returns all of the caller's subscriptions, cancelled ones
// included.
func (uc *GetMySubscriptionsUseCase) Execute(ctx context.Context, phoneNumber string) ([]*subscription.Subscription, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, apperrors.NewValidationError("phone number is required")
	}

	subs, err := uc.subscriptionRepo.GetByPhone(ctx, phoneNumber)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "phone", phoneNumber)
		return nil, apperrors.NewInternalError("failed to list subscriptions")
	}
	return subs, nil
}
