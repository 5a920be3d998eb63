package mappers

import (
	"encoding/json"
	"fmt"

	"milkrun/internal/domain/customer"
	"milkrun/internal/infrastructure/persistence/models"
)

type ProfileMapper interface {
	ToEntity(model *models.ProfileModel) (*customer.Profile, error)
	ToModel(entity *customer.Profile) (*models.ProfileModel, error)
	ToEntities(models []*models.ProfileModel) ([]*customer.Profile, error)
}

type ProfileMapperImpl struct{}

func NewProfileMapper() ProfileMapper {
	return &ProfileMapperImpl{}
}

func (m *ProfileMapperImpl) ToEntity(model *models.ProfileModel) (*customer.Profile, error) {
	if model == nil {
		return nil, nil
	}

	var orderIDs []uint64
	if len(model.OrderIDs) > 0 {
		if err := json.Unmarshal(model.OrderIDs, &orderIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order ids: %w", err)
		}
	}

	return customer.ReconstructProfile(
		model.PhoneNumber,
		model.Name,
		model.Address,
		orderIDs,
		model.HasActiveSubscription,
		model.ActiveSubscriptionID,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *ProfileMapperImpl) ToModel(entity *customer.Profile) (*models.ProfileModel, error) {
	if entity == nil {
		return nil, nil
	}

	orderIDs, err := json.Marshal(entity.OrderIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order ids: %w", err)
	}

	model := &models.ProfileModel{
		PhoneNumber:           entity.PhoneNumber(),
		Name:                  entity.Name(),
		Address:               entity.Address(),
		OrderIDs:              orderIDs,
		HasActiveSubscription: entity.HasActiveSubscription(),
		ActiveSubscriptionID:  entity.ActiveSubscriptionID(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}

	if err := checkRecordSize(model, maxProfileBytes, "profile"); err != nil {
		return nil, err
	}
	return model, nil
}

func (m *ProfileMapperImpl) ToEntities(profileModels []*models.ProfileModel) ([]*customer.Profile, error) {
	entities := make([]*customer.Profile, 0, len(profileModels))
	for _, model := range profileModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
