package usecases

import (
	"context"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type UpdateProductCommand struct {
	ID          uint64
	Name        string
	Description string
	Price       float64
	Unit        string
}

type UpdateProductUseCase struct {
	productRepo catalog.ProductRepository
	clock       clock.Clock
	logger      logger.Interface
}

func NewUpdateProductUseCase(productRepo catalog.ProductRepository, clk clock.Clock, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		clock:       clk,
		logger:      logger,
	}
}

// Execute replaces a product's fields while preserving its id.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*catalog.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ID)
		return nil, apperrors.NewInternalError("failed to load product")
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	if err := product.Update(cmd.Name, cmd.Description, cmd.Price, cmd.Unit, uc.clock.Now()); err != nil {
		return nil, apperrors.NewValidationError("invalid product", err.Error())
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		uc.logger.Errorw("failed to update product", "error", err, "product_id", cmd.ID)
		return nil, apperrors.NewInternalError("failed to store product")
	}

	uc.logger.Infow("product updated", "product_id", product.ID(), "name", product.Name())
	return product, nil
}
