package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/infrastructure/persistence/mappers"
	"milkrun/internal/infrastructure/persistence/models"
	"milkrun/internal/shared/logger"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
	logger logger.Interface
}

func NewProductRepository(db *gorm.DB, logger logger.Interface) catalog.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mappers.NewProductMapper(),
		logger: logger,
	}
}

// Create assigns the next dense id (row count) inside a transaction so ids
// are 0,1,2,... in insertion order even under concurrent writers.
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ProductModel{}).Count(&count).Error; err != nil {
			r.logger.Errorw("failed to count products", "error", err)
			return fmt.Errorf("failed to count products: %w", err)
		}

		id := uint64(count)

		model, err := r.mapper.ToModel(product)
		if err != nil {
			r.logger.Errorw("failed to map product entity to model", "error", err)
			return fmt.Errorf("failed to map product entity: %w", err)
		}
		model.ID = id

		if err := tx.Create(model).Error; err != nil {
			r.logger.Errorw("failed to create product in database", "error", err)
			return fmt.Errorf("failed to create product: %w", err)
		}

		// Product zero is a valid id; SetID only works for nonzero, so the
		// first product keeps its zero value without going through it.
		if id != 0 {
			if err := product.SetID(id); err != nil {
				r.logger.Errorw("failed to set product ID", "error", err)
				return fmt.Errorf("failed to set product ID: %w", err)
			}
		}

		r.logger.Infow("product created successfully", "id", id, "name", model.Name)
		return nil
	})
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint64) (*catalog.Product, error) {
	var model models.ProductModel

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get product by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context) ([]*catalog.Product, error) {
	var productModels []*models.ProductModel

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&productModels).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return r.mapper.ToEntities(productModels), nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *catalog.Product) error {
	model, err := r.mapper.ToModel(product)
	if err != nil {
		r.logger.Errorw("failed to map product entity to model", "id", product.ID(), "error", err)
		return fmt.Errorf("failed to map product entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(model).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"price":       model.Price,
			"unit":        model.Unit,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update product", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update product: %w", result.Error)
	}

	r.logger.Infow("product updated successfully", "id", model.ID)
	return nil
}
