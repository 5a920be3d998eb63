package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"milkrun/internal/domain/subscription"
	vo "milkrun/internal/domain/subscription/valueobjects"
	"milkrun/internal/infrastructure/persistence/mappers"
	"milkrun/internal/infrastructure/persistence/models"
	"milkrun/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscriptionEntity *subscription.Subscription) error {
	model, err := r.mapper.ToModel(subscriptionEntity)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := subscriptionEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set subscription ID", "error", err)
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created successfully", "id", model.ID, "phone", model.UserPhoneNumber)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint64) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map subscription model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}
	return entity, nil
}

func (r *SubscriptionRepositoryImpl) GetByPhone(ctx context.Context, phoneNumber string) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	if err := r.db.WithContext(ctx).
		Where("user_phone_number = ?", phoneNumber).
		Order("id ASC").
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to get subscriptions by phone", "phone", phoneNumber, "error", err)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(subscriptionModels)
	if err != nil {
		r.logger.Errorw("failed to map subscription models to entities", "phone", phoneNumber, "error", err)
		return nil, fmt.Errorf("failed to map subscriptions: %w", err)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(subscriptionModels)
	if err != nil {
		r.logger.Errorw("failed to map subscription models to entities", "error", err)
		return nil, fmt.Errorf("failed to map subscriptions: %w", err)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscriptionEntity *subscription.Subscription) error {
	model, err := r.mapper.ToModel(subscriptionEntity)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "id", subscriptionEntity.ID(), "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(model).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"user_phone_number":  model.UserPhoneNumber,
			"items":              model.Items,
			"delivery_days":      model.DeliveryDays,
			"delivery_time_slot": model.DeliveryTimeSlot,
			"delivery_address":   model.DeliveryAddress,
			"start_date":         model.StartDate,
			"status":             model.Status,
			"next_order_date":    model.NextOrderDate,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	r.logger.Infow("subscription updated successfully", "id", model.ID)
	return nil
}

// FindDue returns active subscriptions whose next order date is at or before
// asOf, oldest first.
func (r *SubscriptionRepositoryImpl) FindDue(ctx context.Context, asOf time.Time) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	if err := r.db.WithContext(ctx).
		Where("status = ?", string(vo.StatusActive)).
		Where("next_order_date <= ?", asOf).
		Order("next_order_date ASC").
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to find due subscriptions", "error", err)
		return nil, fmt.Errorf("failed to find due subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(subscriptionModels)
	if err != nil {
		r.logger.Errorw("failed to map subscription models to entities", "error", err)
		return nil, fmt.Errorf("failed to map subscriptions: %w", err)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) HasWithStatus(ctx context.Context, phoneNumber string, status vo.SubscriptionStatus) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("user_phone_number = ? AND status = ?", phoneNumber, string(status)).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions by status", "phone", phoneNumber, "status", status, "error", err)
		return false, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	return count > 0, nil
}
