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

type ResumeSubscriptionCommand struct {
	SubscriptionID uint64
	RequestorPhone string
}

// ResumeSubscriptionUseCase resumes a paused subscription. A cancelled
// subscription cannot be resumed.
type ResumeSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	profileRepo      customer.ProfileRepository
	clock            clock.Clock
	logger           logger.Interface
}

func NewResumeSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	profileRepo customer.ProfileRepository,
	clk clock.Clock,
	logger logger.Interface,
) *ResumeSubscriptionUseCase {
	return &ResumeSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *ResumeSubscriptionUseCase) Execute(ctx context.Context, cmd ResumeSubscriptionCommand) (*subscription.Subscription, error) {
	sub, err := loadOwnedSubscription(ctx, uc.subscriptionRepo, uc.logger, cmd.SubscriptionID, cmd.RequestorPhone)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := sub.Resume(now); err != nil {
		if errors.Is(err, subscription.ErrInvalidStatusTransition) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to store subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to store subscription")
	}

	syncProfileOnResume(ctx, uc.profileRepo, uc.logger, sub.UserPhoneNumber(), now)

	uc.logger.Infow("subscription resumed", "subscription_id", cmd.SubscriptionID, "phone", cmd.RequestorPhone)
	return sub, nil
}
