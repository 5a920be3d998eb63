package usecases

import (
	"context"
	"fmt"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/domain/subscription"
	vo "milkrun/internal/domain/subscription/valueobjects"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type UpdateSubscriptionDetailsCommand struct {
	SubscriptionID uint64
	RequestorPhone string
	Privileged     bool

	// Nil fields are left unchanged. Items carries raw product/quantity
	// pairs; prices are re-snapshotted from the current catalog.
	Items            []ItemInput
	DeliveryDays     []string
	DeliveryTimeSlot *string
	DeliveryAddress  *string
}

// UpdateSubscriptionDetailsUseCase applies a partial update to a
// subscription's items and delivery details. Owners can edit their own live
// subscriptions; privileged callers can edit any, including cancelled ones.
type UpdateSubscriptionDetailsUseCase struct {
	subscriptionRepo subscription.Repository
	productRepo      catalog.ProductRepository
	clock            clock.Clock
	logger           logger.Interface
}

func NewUpdateSubscriptionDetailsUseCase(
	subscriptionRepo subscription.Repository,
	productRepo catalog.ProductRepository,
	clk clock.Clock,
	logger logger.Interface,
) *UpdateSubscriptionDetailsUseCase {
	return &UpdateSubscriptionDetailsUseCase{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *UpdateSubscriptionDetailsUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionDetailsCommand) (*subscription.Subscription, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to look up subscription")
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	if !cmd.Privileged {
		if !sub.IsOwnedBy(cmd.RequestorPhone) {
			return nil, apperrors.NewForbiddenError("access denied: you can only manage your own subscriptions")
		}
		if sub.Status() == vo.StatusCancelled {
			return nil, apperrors.NewConflictError("cannot update a cancelled subscription")
		}
	}

	patch := subscription.Patch{
		DeliveryDays:     cmd.DeliveryDays,
		DeliveryTimeSlot: cmd.DeliveryTimeSlot,
		DeliveryAddress:  cmd.DeliveryAddress,
	}
	if cmd.Items != nil {
		items, err := uc.resolvePatchItems(ctx, cmd.Items)
		if err != nil {
			return nil, err
		}
		patch.Items = items
	}

	if patch.IsEmpty() {
		return sub, nil
	}

	if err := sub.ApplyPatch(patch, uc.clock.Now()); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to store subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewInternalError("failed to store subscription")
	}

	uc.logger.Infow("subscription details updated", "subscription_id", cmd.SubscriptionID)
	return sub, nil
}

// resolvePatchItems snapshots current catalog prices onto replacement lines.
func (uc *UpdateSubscriptionDetailsUseCase) resolvePatchItems(ctx context.Context, inputs []ItemInput) ([]subscription.Item, error) {
	if len(inputs) == 0 {
		return nil, apperrors.NewValidationError("subscription items cannot be empty")
	}

	items := make([]subscription.Item, 0, len(inputs))
	for _, input := range inputs {
		if input.Quantity <= 0 {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("invalid quantity %v for product %d", input.Quantity, input.ProductID))
		}
		product, err := uc.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			uc.logger.Errorw("failed to resolve product", "error", err, "product_id", input.ProductID)
			return nil, apperrors.NewInternalError("failed to resolve product")
		}
		if product == nil {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("invalid product in subscription: %d", input.ProductID))
		}

		item, err := subscription.NewItem(input.ProductID, input.Quantity, product.Price())
		if err != nil {
			return nil, apperrors.NewValidationError("invalid subscription item", err.Error())
		}
		items = append(items, item)
	}
	return items, nil
}
