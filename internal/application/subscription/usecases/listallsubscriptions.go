package usecases

import (
	"context"
	"fmt"

	"milkrun/internal/domain/subscription"
	"milkrun/internal/shared/logger"
)

// ListAllSubscriptionsUseCase returns every subscription. Admin only.
type ListAllSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListAllSubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ListAllSubscriptionsUseCase {
	return &ListAllSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListAllSubscriptionsUseCase) Execute(ctx context.Context) ([]*subscription.Subscription, error) {
	subs, err := uc.subscriptionRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}
