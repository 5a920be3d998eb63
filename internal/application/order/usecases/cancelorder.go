package usecases

import (
	"context"
	"errors"

	"milkrun/internal/domain/order"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type CancelOrderCommand struct {
	OrderID        uint64
	RequestorPhone string
}

// CancelOrderUseCase lets an owner cancel their own order while it is still
// pending. Admins use status updates instead of this path.
type CancelOrderUseCase struct {
	orderRepo order.Repository
	clock     clock.Clock
	logger    logger.Interface
}

func NewCancelOrderUseCase(orderRepo order.Repository, clk clock.Clock, logger logger.Interface) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		orderRepo: orderRepo,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *CancelOrderUseCase) Execute(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	found, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		uc.logger.Errorw("failed to look up order", "error", err, "order_id", cmd.OrderID)
		return nil, apperrors.NewInternalError("failed to look up order")
	}
	if found == nil {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	if !found.IsOwnedBy(cmd.RequestorPhone) {
		return nil, apperrors.NewForbiddenError("access denied: you can only cancel your own orders")
	}

	if err := found.CancelByOwner(uc.clock.Now()); err != nil {
		if errors.Is(err, order.ErrCannotCancel) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.orderRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to store order", "error", err, "order_id", cmd.OrderID)
		return nil, apperrors.NewInternalError("failed to store order")
	}

	uc.logger.Infow("order cancelled by owner", "order_id", cmd.OrderID, "phone", cmd.RequestorPhone)
	return found, nil
}
