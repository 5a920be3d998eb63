package mappers

import (
	"encoding/json"
	"fmt"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/infrastructure/persistence/models"
)

type ProductMapper interface {
	ToEntity(model *models.ProductModel) *catalog.Product
	ToModel(entity *catalog.Product) (*models.ProductModel, error)
	ToEntities(models []*models.ProductModel) []*catalog.Product
}

type ProductMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToEntity(model *models.ProductModel) *catalog.Product {
	if model == nil {
		return nil
	}
	return catalog.ReconstructProduct(
		model.ID,
		model.Name,
		model.Description,
		model.Price,
		model.Unit,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ProductMapperImpl) ToModel(entity *catalog.Product) (*models.ProductModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.ProductModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Price:       entity.Price(),
		Unit:        entity.Unit(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}

	if err := checkRecordSize(model, maxProductBytes, "product"); err != nil {
		return nil, err
	}
	return model, nil
}

func (m *ProductMapperImpl) ToEntities(productModels []*models.ProductModel) []*catalog.Product {
	entities := make([]*catalog.Product, 0, len(productModels))
	for _, model := range productModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}

// checkRecordSize enforces the per-record serialized ceiling shared by all
// mappers.
func checkRecordSize(model any, limit int, kind string) error {
	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to measure %s record: %w", kind, err)
	}
	if len(data) > limit {
		return fmt.Errorf("%s record exceeds %d byte limit (%d bytes)", kind, limit, len(data))
	}
	return nil
}
