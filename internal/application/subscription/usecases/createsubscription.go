package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/domain/customer"
	"milkrun/internal/domain/subscription"
	vo "milkrun/internal/domain/subscription/valueobjects"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

// ItemInput is a caller-supplied subscription line before price resolution.
type ItemInput struct {
	ProductID uint64
	Quantity  float64
}

type CreateSubscriptionCommand struct {
	PhoneNumber      string
	Items            []ItemInput
	DeliveryDays     []string
	DeliveryTimeSlot string
	DeliveryAddress  string
	StartDate        time.Time
}

// CreateSubscriptionUseCase creates a recurring subscription and links it to
// the owner's profile. A customer can hold at most one active subscription
// at a time.
type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	profileRepo      customer.ProfileRepository
	productRepo      catalog.ProductRepository
	clock            clock.Clock
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	profileRepo customer.ProfileRepository,
	productRepo catalog.ProductRepository,
	clk clock.Clock,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		productRepo:      productRepo,
		clock:            clk,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (uint64, error) {
	if strings.TrimSpace(cmd.PhoneNumber) == "" {
		return 0, apperrors.NewValidationError("phone number is required")
	}

	profile, err := uc.profileRepo.GetByPhone(ctx, cmd.PhoneNumber)
	if err != nil {
		uc.logger.Errorw("failed to look up profile", "error", err, "phone", cmd.PhoneNumber)
		return 0, apperrors.NewInternalError("failed to look up profile")
	}
	if profile == nil {
		return 0, apperrors.NewNotFoundError("user profile not found")
	}

	hasActive, err := uc.subscriptionRepo.HasWithStatus(ctx, cmd.PhoneNumber, vo.StatusActive)
	if err != nil {
		uc.logger.Errorw("failed to check existing subscriptions", "error", err, "phone", cmd.PhoneNumber)
		return 0, apperrors.NewInternalError("failed to check existing subscriptions")
	}
	if hasActive {
		return 0, apperrors.NewConflictError("user already has an active subscription")
	}

	items, err := uc.resolveItems(ctx, cmd.Items)
	if err != nil {
		return 0, err
	}

	now := uc.clock.Now()
	sub, err := subscription.NewSubscription(
		cmd.PhoneNumber, items, cmd.DeliveryDays,
		cmd.DeliveryTimeSlot, cmd.DeliveryAddress, cmd.StartDate, now,
	)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid subscription", err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to store subscription", "error", err, "phone", cmd.PhoneNumber)
		return 0, apperrors.NewInternalError("failed to store subscription")
	}

	profile.AttachSubscription(sub.ID(), now)
	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		uc.logger.Errorw("failed to link subscription to profile",
			"error", err, "subscription_id", sub.ID(), "phone", cmd.PhoneNumber)
	}

	uc.logger.Infow("subscription created",
		"subscription_id", sub.ID(),
		"phone", cmd.PhoneNumber,
		"next_order_date", sub.NextOrderDate(),
	)
	return sub.ID(), nil
}

// resolveItems snapshots the current catalog price onto each line.
func (uc *CreateSubscriptionUseCase) resolveItems(ctx context.Context, inputs []ItemInput) ([]subscription.Item, error) {
	if len(inputs) == 0 {
		return nil, apperrors.NewValidationError("subscription items are required")
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
