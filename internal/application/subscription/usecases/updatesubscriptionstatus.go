package usecases

import (
	"context"
	"fmt"
	"time"

	"milkrun/internal/domain/customer"
	"milkrun/internal/domain/subscription"
	vo "milkrun/internal/domain/subscription/valueobjects"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type UpdateSubscriptionStatusCommand struct {
	SubscriptionID uint64
	Status         string
}

// UpdateSubscriptionStatusUseCase sets a subscription status directly,
// bypassing the owner transition rules. Admin only; used by support to
// correct state, including un-cancelling.
type UpdateSubscriptionStatusUseCase struct {
	subscriptionRepo subscription.Repository
	profileRepo      customer.ProfileRepository
	clock            clock.Clock
	logger           logger.Interface
}

func NewUpdateSubscriptionStatusUseCase(
	subscriptionRepo subscription.Repository,
	profileRepo customer.ProfileRepository,
	clk clock.Clock,
	logger logger.Interface,
) *UpdateSubscriptionStatusUseCase {
	return &UpdateSubscriptionStatusUseCase{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *UpdateSubscriptionStatusUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionStatusCommand) (*subscription.Subscription, error) {
	status, ok := vo.ParseStatus(cmd.Status)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid subscription status: %s", cmd.Status))
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to look up subscription")
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	now := uc.clock.Now()
	if err := sub.SetStatus(status, now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to store subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to store subscription")
	}

	uc.syncProfile(ctx, sub, status, now)

	uc.logger.Infow("subscription status updated", "subscription_id", cmd.SubscriptionID, "status", status)
	return sub, nil
}

// syncProfile realigns the owner's cached subscription flags after a forced
// status change.
func (uc *UpdateSubscriptionStatusUseCase) syncProfile(ctx context.Context, sub *subscription.Subscription, status vo.SubscriptionStatus, now time.Time) {
	profile, err := uc.profileRepo.GetByPhone(ctx, sub.UserPhoneNumber())
	if err != nil || profile == nil {
		logProfileSyncFailure(uc.logger, err, sub.UserPhoneNumber())
		return
	}

	switch status {
	case vo.StatusActive:
		profile.AttachSubscription(sub.ID(), now)
	case vo.StatusPaused:
		if ref := profile.ActiveSubscriptionID(); ref != nil && *ref == sub.ID() {
			profile.MarkSubscriptionPaused(now)
		}
	case vo.StatusCancelled:
		if ref := profile.ActiveSubscriptionID(); ref != nil && *ref == sub.ID() {
			profile.DetachSubscription(now)
		}
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		logProfileSyncFailure(uc.logger, err, sub.UserPhoneNumber())
	}
}
