package mappers

import (
	"encoding/json"
	"fmt"

	"milkrun/internal/domain/subscription"
	vo "milkrun/internal/domain/subscription/valueobjects"
	"milkrun/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	var items []subscription.Item
	if err := json.Unmarshal(model.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal subscription items: %w", err)
	}

	var deliveryDays []string
	if err := json.Unmarshal(model.DeliveryDays, &deliveryDays); err != nil {
		return nil, fmt.Errorf("failed to unmarshal delivery days: %w", err)
	}

	status := vo.SubscriptionStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.UserPhoneNumber,
		items,
		deliveryDays,
		model.DeliveryTimeSlot,
		model.DeliveryAddress,
		model.StartDate,
		status,
		model.NextOrderDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}
	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	items, err := json.Marshal(entity.Items())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal subscription items: %w", err)
	}

	deliveryDays, err := json.Marshal(entity.DeliveryDays())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal delivery days: %w", err)
	}

	model := &models.SubscriptionModel{
		ID:               entity.ID(),
		UserPhoneNumber:  entity.UserPhoneNumber(),
		Items:            items,
		DeliveryDays:     deliveryDays,
		DeliveryTimeSlot: entity.DeliveryTimeSlot(),
		DeliveryAddress:  entity.DeliveryAddress(),
		StartDate:        entity.StartDate(),
		Status:           string(entity.Status()),
		NextOrderDate:    entity.NextOrderDate(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}

	if err := checkRecordSize(model, maxSubscriptionBytes, "subscription"); err != nil {
		return nil, err
	}
	return model, nil
}

func (m *SubscriptionMapperImpl) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subscriptionModels))
	for _, model := range subscriptionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
