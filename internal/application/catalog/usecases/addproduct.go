package usecases

import (
	"context"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type AddProductCommand struct {
	Name        string
	Description string
	Price       float64
	Unit        string
}

type AddProductUseCase struct {
	productRepo catalog.ProductRepository
	clock       clock.Clock
	logger      logger.Interface
}

func NewAddProductUseCase(productRepo catalog.ProductRepository, clk clock.Clock, logger logger.Interface) *AddProductUseCase {
	return &AddProductUseCase{
		productRepo: productRepo,
		clock:       clk,
		logger:      logger,
	}
}

// Execute adds a product to the catalog and returns its assigned id.
func (uc *AddProductUseCase) Execute(ctx context.Context, cmd AddProductCommand) (uint64, error) {
	product, err := catalog.NewProduct(cmd.Name, cmd.Description, cmd.Price, cmd.Unit, uc.clock.Now())
	if err != nil {
		return 0, apperrors.NewValidationError("invalid product", err.Error())
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		uc.logger.Errorw("failed to create product", "error", err, "name", cmd.Name)
		return 0, apperrors.NewInternalError("failed to store product")
	}

	uc.logger.Infow("product added", "product_id", product.ID(), "name", product.Name())
	return product.ID(), nil
}
