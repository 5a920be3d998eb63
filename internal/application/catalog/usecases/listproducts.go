package usecases

import (
	"context"
	"fmt"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/shared/logger"
)

type ListProductsUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo catalog.ProductRepository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]*catalog.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
