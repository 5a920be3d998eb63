package usecases

import (
	"context"

	"milkrun/internal/domain/order"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type GetOrderDetailsQuery struct {
	OrderID        uint64
	RequestorPhone string
	Privileged     bool
}

// GetOrderDetailsUseCase returns a single order to its owner or to a
// privileged caller.
type GetOrderDetailsUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderDetailsUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderDetailsUseCase {
	return &GetOrderDetailsUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *GetOrderDetailsUseCase) Execute(ctx context.Context, query GetOrderDetailsQuery) (*order.Order, error) {
	found, err := uc.orderRepo.GetByID(ctx, query.OrderID)
	if err != nil {
		uc.logger.Errorw("failed to look up order", "error", err, "order_id", query.OrderID)
		return nil, apperrors.NewInternalError("failed to look up order")
	}
	if found == nil {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	if !query.Privileged && !found.IsOwnedBy(query.RequestorPhone) {
		return nil, apperrors.NewForbiddenError("access denied: you can only view your own orders")
	}
	return found, nil
}
