package usecases

import (
	"context"
	"fmt"

	"milkrun/internal/domain/order"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type UpdateOrderStatusCommand struct {
	OrderID uint64
	Status  string
}

// UpdateOrderStatusUseCase sets an order's fulfillment status. Admin only;
// any known status can be set regardless of the current one, so support can
// correct mistakes.
type UpdateOrderStatusUseCase struct {
	orderRepo order.Repository
	clock     clock.Clock
	logger    logger.Interface
}

func NewUpdateOrderStatusUseCase(orderRepo order.Repository, clk clock.Clock, logger logger.Interface) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo: orderRepo,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	status, ok := order.ParseStatus(cmd.Status)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid order status: %s", cmd.Status))
	}

	found, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		uc.logger.Errorw("failed to look up order", "error", err, "order_id", cmd.OrderID)
		return nil, apperrors.NewInternalError("failed to look up order")
	}
	if found == nil {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	if err := found.SetStatus(status, uc.clock.Now()); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.orderRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to store order", "error", err, "order_id", cmd.OrderID)
		return nil, apperrors.NewInternalError("failed to store order")
	}

	uc.logger.Infow("order status updated", "order_id", cmd.OrderID, "status", status)
	return found, nil
}
