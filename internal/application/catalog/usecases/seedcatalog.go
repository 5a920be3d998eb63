package usecases

import (
	"context"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/domain/system"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

type seedProduct struct {
	name        string
	description string
	price       float64
	unit        string
}

// defaultCatalog is the fixed dairy range seeded on first run.
var defaultCatalog = []seedProduct{
	{"Milk", "Fresh Cow Milk", 70.0, "litre"},
	{"Paneer", "Fresh Homemade Paneer", 300.0, "kg"},
	{"Methi Dahi", "Curd with Fenugreek", 100.0, "kg"},
	{"Khatti Dahi", "Sour Curd", 50.0, "kg"},
	{"Matha", "Buttermilk", 20.0, "litre"},
	{"Ghee", "Pure Desi Ghee", 600.0, "litre"},
	{"Cream", "Fresh Milk Cream", 300.0, "kg"},
}

type SeedCatalogUseCase struct {
	productRepo catalog.ProductRepository
	initFlags   system.InitFlagRepository
	clock       clock.Clock
	logger      logger.Interface
}

func NewSeedCatalogUseCase(
	productRepo catalog.ProductRepository,
	initFlags system.InitFlagRepository,
	clk clock.Clock,
	logger logger.Interface,
) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{
		productRepo: productRepo,
		initFlags:   initFlags,
		clock:       clk,
		logger:      logger,
	}
}

// Execute seeds the fixed catalog exactly once and returns the number of
// products added. A second run fails without touching the catalog.
func (uc *SeedCatalogUseCase) Execute(ctx context.Context) (int, error) {
	initialized, err := uc.initFlags.IsInitialized(ctx)
	if err != nil {
		uc.logger.Errorw("failed to read init flag", "error", err)
		return 0, apperrors.NewInternalError("failed to read initialization state")
	}
	if initialized {
		return 0, apperrors.NewConflictError("catalog already initialized")
	}

	now := uc.clock.Now()
	count := 0
	for _, seed := range defaultCatalog {
		product, err := catalog.NewProduct(seed.name, seed.description, seed.price, seed.unit, now)
		if err != nil {
			return count, apperrors.NewInternalError("invalid seed product", err.Error())
		}
		if err := uc.productRepo.Create(ctx, product); err != nil {
			uc.logger.Errorw("failed to seed product", "error", err, "name", seed.name)
			return count, apperrors.NewInternalError("failed to store seed product")
		}
		count++
	}

	if err := uc.initFlags.MarkInitialized(ctx); err != nil {
		uc.logger.Errorw("failed to mark catalog initialized", "error", err)
		return count, apperrors.NewInternalError("failed to record initialization")
	}

	uc.logger.Infow("catalog seeded", "count", count)
	return count, nil
}
