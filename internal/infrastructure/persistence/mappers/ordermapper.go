package mappers

import (
	"encoding/json"
	"fmt"

	"milkrun/internal/domain/order"
	"milkrun/internal/infrastructure/persistence/models"
)

type OrderMapper interface {
	ToEntity(model *models.OrderModel) (*order.Order, error)
	ToModel(entity *order.Order) (*models.OrderModel, error)
	ToEntities(models []*models.OrderModel) ([]*order.Order, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToEntity(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	var items []order.Item
	if err := json.Unmarshal(model.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	status, ok := order.ParseStatus(model.Status)
	if !ok {
		return nil, fmt.Errorf("invalid order status: %s", model.Status)
	}

	entity, err := order.ReconstructOrder(
		model.ID,
		model.UserPhoneNumber,
		items,
		model.TotalAmount,
		status,
		model.DeliveryAddress,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order entity: %w", err)
	}
	return entity, nil
}

func (m *OrderMapperImpl) ToModel(entity *order.Order) (*models.OrderModel, error) {
	if entity == nil {
		return nil, nil
	}

	items, err := json.Marshal(entity.Items())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order items: %w", err)
	}

	model := &models.OrderModel{
		ID:              entity.ID(),
		UserPhoneNumber: entity.UserPhoneNumber(),
		Items:           items,
		TotalAmount:     entity.TotalAmount(),
		Status:          string(entity.Status()),
		DeliveryAddress: entity.DeliveryAddress(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.LastUpdated(),
	}

	if err := checkRecordSize(model, maxOrderBytes, "order"); err != nil {
		return nil, err
	}
	return model, nil
}

func (m *OrderMapperImpl) ToEntities(orderModels []*models.OrderModel) ([]*order.Order, error) {
	entities := make([]*order.Order, 0, len(orderModels))
	for _, model := range orderModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
