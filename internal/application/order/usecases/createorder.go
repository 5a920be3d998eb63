package usecases

import (
	"context"
	"fmt"
	"strings"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/domain/customer"
	"milkrun/internal/domain/order"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

// ItemInput is a caller-supplied order line before price resolution.
type ItemInput struct {
	ProductID uint64
	Quantity  float64
}

type CreateOrderCommand struct {
	PhoneNumber     string
	Items           []ItemInput
	DeliveryAddress string
}

// CreateOrderUseCase creates orders for customers and for the recurring
// sweep, which goes through this exact path. All validation happens before
// any write; a validation failure leaves no partial state behind.
type CreateOrderUseCase struct {
	orderRepo   order.Repository
	profileRepo customer.ProfileRepository
	productRepo catalog.ProductRepository
	clock       clock.Clock
	logger      logger.Interface
}

func NewCreateOrderUseCase(
	orderRepo order.Repository,
	profileRepo customer.ProfileRepository,
	productRepo catalog.ProductRepository,
	clk clock.Clock,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		productRepo: productRepo,
		clock:       clk,
		logger:      logger,
	}
}

// Execute validates the command, snapshots current catalog prices into the
// order lines, persists the order and appends its id to the owner's history.
// Returns the new order id.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (uint64, error) {
	if strings.TrimSpace(cmd.PhoneNumber) == "" || len(cmd.Items) == 0 || strings.TrimSpace(cmd.DeliveryAddress) == "" {
		return 0, apperrors.NewValidationError("phone number, items, and delivery address cannot be empty")
	}

	profile, err := uc.profileRepo.GetByPhone(ctx, cmd.PhoneNumber)
	if err != nil {
		uc.logger.Errorw("failed to look up profile", "error", err, "phone", cmd.PhoneNumber)
		return 0, apperrors.NewInternalError("failed to look up profile")
	}
	if profile == nil {
		return 0, apperrors.NewNotFoundError("user profile not found")
	}

	items := make([]order.Item, 0, len(cmd.Items))
	for _, input := range cmd.Items {
		if input.Quantity <= 0 {
			return 0, apperrors.NewValidationError(
				fmt.Sprintf("invalid quantity %v for product %d", input.Quantity, input.ProductID))
		}
		product, err := uc.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			uc.logger.Errorw("failed to resolve product", "error", err, "product_id", input.ProductID)
			return 0, apperrors.NewInternalError("failed to resolve product")
		}
		if product == nil {
			return 0, apperrors.NewValidationError(
				fmt.Sprintf("invalid product in order: %d", input.ProductID))
		}

		item, err := order.NewItem(input.ProductID, input.Quantity, product.Price())
		if err != nil {
			return 0, apperrors.NewValidationError("invalid order item", err.Error())
		}
		items = append(items, item)
	}

	now := uc.clock.Now()
	newOrder, err := order.NewOrder(cmd.PhoneNumber, items, cmd.DeliveryAddress, now)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid order", err.Error())
	}

	if err := uc.orderRepo.Create(ctx, newOrder); err != nil {
		uc.logger.Errorw("failed to store order", "error", err, "phone", cmd.PhoneNumber)
		return 0, apperrors.NewInternalError("failed to store order")
	}

	// The id is allocated at this point; recording it on the profile is
	// best-effort bookkeeping and must not unwind the order.
	profile.RecordOrder(newOrder.ID(), now)
	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		uc.logger.Errorw("failed to record order on profile",
			"error", err, "order_id", newOrder.ID(), "phone", cmd.PhoneNumber)
	}

	uc.logger.Infow("order created",
		"order_id", newOrder.ID(),
		"phone", cmd.PhoneNumber,
		"total_amount", newOrder.TotalAmount(),
	)
	return newOrder.ID(), nil
}
