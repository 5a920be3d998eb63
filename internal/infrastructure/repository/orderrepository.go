package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"milkrun/internal/domain/order"
	"milkrun/internal/infrastructure/persistence/mappers"
	"milkrun/internal/infrastructure/persistence/models"
	"milkrun/internal/shared/logger"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
	logger logger.Interface
}

func NewOrderRepository(db *gorm.DB, logger logger.Interface) order.Repository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrderMapper(),
		logger: logger,
	}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, orderEntity *order.Order) error {
	model, err := r.mapper.ToModel(orderEntity)
	if err != nil {
		r.logger.Errorw("failed to map order entity to model", "error", err)
		return fmt.Errorf("failed to map order entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create order in database", "error", err)
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := orderEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set order ID", "error", err)
		return fmt.Errorf("failed to set order ID: %w", err)
	}

	r.logger.Infow("order created successfully", "id", model.ID, "phone", model.UserPhoneNumber)
	return nil
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id uint64) (*order.Order, error) {
	var model models.OrderModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get order by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map order model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map order: %w", err)
	}
	return entity, nil
}

func (r *OrderRepositoryImpl) GetByPhone(ctx context.Context, phoneNumber string) ([]*order.Order, error) {
	var orderModels []*models.OrderModel

	if err := r.db.WithContext(ctx).
		Where("user_phone_number = ?", phoneNumber).
		Order("id ASC").
		Find(&orderModels).Error; err != nil {
		r.logger.Errorw("failed to get orders by phone", "phone", phoneNumber, "error", err)
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	entities, err := r.mapper.ToEntities(orderModels)
	if err != nil {
		r.logger.Errorw("failed to map order models to entities", "phone", phoneNumber, "error", err)
		return nil, fmt.Errorf("failed to map orders: %w", err)
	}
	return entities, nil
}

func (r *OrderRepositoryImpl) List(ctx context.Context) ([]*order.Order, error) {
	var orderModels []*models.OrderModel

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&orderModels).Error; err != nil {
		r.logger.Errorw("failed to list orders", "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	entities, err := r.mapper.ToEntities(orderModels)
	if err != nil {
		r.logger.Errorw("failed to map order models to entities", "error", err)
		return nil, fmt.Errorf("failed to map orders: %w", err)
	}
	return entities, nil
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, orderEntity *order.Order) error {
	model, err := r.mapper.ToModel(orderEntity)
	if err != nil {
		r.logger.Errorw("failed to map order entity to model", "id", orderEntity.ID(), "error", err)
		return fmt.Errorf("failed to map order entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(model).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"user_phone_number": model.UserPhoneNumber,
			"items":             model.Items,
			"total_amount":      model.TotalAmount,
			"status":            model.Status,
			"delivery_address":  model.DeliveryAddress,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update order", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	r.logger.Infow("order updated successfully", "id", model.ID)
	return nil
}
