package usecases

import (
	"context"
	"fmt"

	"milkrun/internal/domain/order"
	"milkrun/internal/shared/logger"
)

// ListAllOrdersUseCase returns every order in the system. Admin only.
type ListAllOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListAllOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListAllOrdersUseCase {
	return &ListAllOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListAllOrdersUseCase) Execute(ctx context.Context) ([]*order.Order, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
