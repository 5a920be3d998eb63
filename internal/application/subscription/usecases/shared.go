package usecases

import (
	"context"
	"time"

	"milkrun/internal/domain/customer"
	"milkrun/internal/domain/subscription"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

// loadOwnedSubscription fetches a subscription and checks the requestor owns
// it. Shared by the owner-facing lifecycle use cases.
func loadOwnedSubscription(
	ctx context.Context,
	repo subscription.Repository,
	log logger.Interface,
	id uint64,
	requestorPhone string,
) (*subscription.Subscription, error) {
	sub, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to look up subscription", "error", err, "subscription_id", id)
		return nil, apperrors.NewInternalError("failed to look up subscription")
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}
	if !sub.IsOwnedBy(requestorPhone) {
		return nil, apperrors.NewForbiddenError("access denied: you can only manage your own subscriptions")
	}
	return sub, nil
}

// Profile sync after a lifecycle transition is best-effort: the subscription
// record is the source of truth, the profile flags are a cached view.

func syncProfileOnPause(ctx context.Context, repo customer.ProfileRepository, log logger.Interface, phone string, now time.Time) {
	profile, err := repo.GetByPhone(ctx, phone)
	if err != nil || profile == nil {
		logProfileSyncFailure(log, err, phone)
		return
	}
	profile.MarkSubscriptionPaused(now)
	if err := repo.Upsert(ctx, profile); err != nil {
		logProfileSyncFailure(log, err, phone)
	}
}

func syncProfileOnResume(ctx context.Context, repo customer.ProfileRepository, log logger.Interface, phone string, now time.Time) {
	profile, err := repo.GetByPhone(ctx, phone)
	if err != nil || profile == nil {
		logProfileSyncFailure(log, err, phone)
		return
	}
	profile.MarkSubscriptionResumed(now)
	if err := repo.Upsert(ctx, profile); err != nil {
		logProfileSyncFailure(log, err, phone)
	}
}

func syncProfileOnCancel(ctx context.Context, repo customer.ProfileRepository, log logger.Interface, phone string, now time.Time) {
	profile, err := repo.GetByPhone(ctx, phone)
	if err != nil || profile == nil {
		logProfileSyncFailure(log, err, phone)
		return
	}
	profile.DetachSubscription(now)
	if err := repo.Upsert(ctx, profile); err != nil {
		logProfileSyncFailure(log, err, phone)
	}
}

func logProfileSyncFailure(log logger.Interface, err error, phone string) {
	if err != nil {
		log.Errorw("failed to sync subscription state to profile", "error", err, "phone", phone)
	} else {
		log.Warnw("profile missing during subscription state sync", "phone", phone)
	}
}
