package usecases

import (
	"context"
	"time"

	orderusecases "milkrun/internal/application/order/usecases"
	"milkrun/internal/domain/subscription"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

// SweepSummary reports one recurring-order sweep run.
type SweepSummary struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// GenerateRecurringOrdersUseCase materializes orders from due subscriptions.
// Each generated order goes through the normal order creation path, so it
// snapshots current catalog prices, not the subscription's. A failed
// subscription is skipped without advancing its schedule and retried on the
// next run.
type GenerateRecurringOrdersUseCase struct {
	subscriptionRepo subscription.Repository
	createOrder      *orderusecases.CreateOrderUseCase
	clock            clock.Clock
	logger           logger.Interface
}

func NewGenerateRecurringOrdersUseCase(
	subscriptionRepo subscription.Repository,
	createOrder *orderusecases.CreateOrderUseCase,
	clk clock.Clock,
	logger logger.Interface,
) *GenerateRecurringOrdersUseCase {
	return &GenerateRecurringOrdersUseCase{
		subscriptionRepo: subscriptionRepo,
		createOrder:      createOrder,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *GenerateRecurringOrdersUseCase) Execute(ctx context.Context) (SweepSummary, error) {
	now := uc.clock.Now()

	due, err := uc.subscriptionRepo.FindDue(ctx, now)
	if err != nil {
		uc.logger.Errorw("failed to find due subscriptions", "error", err)
		return SweepSummary{}, apperrors.NewInternalError("failed to find due subscriptions")
	}

	summary := SweepSummary{Processed: len(due)}
	for _, sub := range due {
		if err := uc.processOne(ctx, sub, now); err != nil {
			summary.Failed++
			uc.logger.Warnw("recurring order generation failed",
				"error", err,
				"subscription_id", sub.ID(),
				"phone", sub.UserPhoneNumber(),
			)
			continue
		}
		summary.Succeeded++
	}

	uc.logger.Infow("recurring order sweep finished",
		"processed", summary.Processed,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)
	return summary, nil
}

func (uc *GenerateRecurringOrdersUseCase) processOne(ctx context.Context, sub *subscription.Subscription, now time.Time) error {
	items := make([]orderusecases.ItemInput, 0, len(sub.Items()))
	for _, item := range sub.Items() {
		items = append(items, orderusecases.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	orderID, err := uc.createOrder.Execute(ctx, orderusecases.CreateOrderCommand{
		PhoneNumber:     sub.UserPhoneNumber(),
		Items:           items,
		DeliveryAddress: sub.DeliveryAddress(),
	})
	if err != nil {
		return err
	}

	// Advance only after the order exists, so a failed run retries instead
	// of silently skipping a delivery.
	sub.AdvanceSchedule(subscription.NextOrderDate(sub.StartDate(), sub.DeliveryDays(), now), now)
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to advance subscription schedule",
			"error", err, "subscription_id", sub.ID(), "order_id", orderID)
		return err
	}

	uc.logger.Infow("recurring order generated",
		"subscription_id", sub.ID(),
		"order_id", orderID,
		"next_order_date", sub.NextOrderDate(),
	)
	return nil
}
