package usecases

import (
	"context"

	"milkrun/internal/domain/subscription"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type GetSubscriptionDetailsQuery struct {
	SubscriptionID uint64
	RequestorPhone string
	Privileged     bool
}

// GetSubscriptionDetailsUseCase returns a single subscription to its owner
// or to a privileged caller.
type GetSubscriptionDetailsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetSubscriptionDetailsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *GetSubscriptionDetailsUseCase {
	return &GetSubscriptionDetailsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionDetailsUseCase) Execute(ctx context.Context, query GetSubscriptionDetailsQuery) (*subscription.Subscription, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, query.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "error", err, "subscription_id", query.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to look up subscription")
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	if !query.Privileged && !sub.IsOwnedBy(query.RequestorPhone) {
		return nil, apperrors.NewForbiddenError("access denied: you can only view your own subscriptions")
	}
	return sub, nil
}
