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

type PauseSubscriptionCommand struct {
	SubscriptionID uint64
	RequestorPhone string
}

// PauseSubscriptionUseCase pauses an active subscription. The sweep skips
// paused subscriptions; the profile keeps its reference so the subscription
// can be resumed.
type PauseSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	profileRepo      customer.ProfileRepository
	clock            clock.Clock
	logger           logger.Interface
}

func NewPauseSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	profileRepo customer.ProfileRepository,
	clk clock.Clock,
	logger logger.Interface,
) *PauseSubscriptionUseCase {
	return &PauseSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *PauseSubscriptionUseCase) Execute(ctx context.Context, cmd PauseSubscriptionCommand) (*subscription.Subscription, error) {
	sub, err := loadOwnedSubscription(ctx, uc.subscriptionRepo, uc.logger, cmd.SubscriptionID, cmd.RequestorPhone)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := sub.Pause(now); err != nil {
		if errors.Is(err, subscription.ErrInvalidStatusTransition) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to store subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to store subscription")
	}

	syncProfileOnPause(ctx, uc.profileRepo, uc.logger, sub.UserPhoneNumber(), now)

	uc.logger.Infow("subscription paused", "subscription_id", cmd.SubscriptionID, "phone", cmd.RequestorPhone)
	return sub, nil
}
