package usecases

import (
	"context"
	"errors"

	"milkrun/internal/domain/customer"
	"milkrun/internal/domain/subscription"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	SubscriptionID uint64
	RequestorPhone string
}

// CancelSubscriptionUseCase cancels a subscription permanently. The record
// stays queryable; the profile drops both the flag and the reference so the
// customer can create a new one.
type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	profileRepo      customer.ProfileRepository
	clock            clock.Clock
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	profileRepo customer.ProfileRepository,
	clk clock.Clock,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*subscription.Subscription, error) {
	sub, err := loadOwnedSubscription(ctx, uc.subscriptionRepo, uc.logger, cmd.SubscriptionID, cmd.RequestorPhone)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := sub.Cancel(now); err != nil {
		if errors.Is(err, subscription.ErrInvalidStatusTransition) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to store subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to store subscription")
	}

	syncProfileOnCancel(ctx, uc.profileRepo, uc.logger, sub.UserPhoneNumber(), now)

	uc.logger.Infow("subscription cancelled", "subscription_id", cmd.SubscriptionID, "phone", cmd.RequestorPhone)
	return sub, nil
}
