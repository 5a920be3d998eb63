package usecases

import (
	"context"
	"strings"

	"milkrun/internal/domain/order"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type GetMyOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetMyOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *GetMyOrdersUseCase {
	return &GetMyOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Execute returns the caller's orders, oldest first. A customer with no
// orders gets an empty list, not an error.
func (uc *GetMyOrdersUseCase) Execute(ctx context.Context, phoneNumber string) ([]*order.Order, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, apperrors.NewValidationError("phone number is required")
	}

	orders, err := uc.orderRepo.GetByPhone(ctx, phoneNumber)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err, "phone", phoneNumber)
		return nil, apperrors.NewInternalError("failed to list orders")
	}
	return orders, nil
}
