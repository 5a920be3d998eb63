package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"milkrun/internal/domain/system"
	"milkrun/internal/infrastructure/persistence/models"
	"milkrun/internal/shared/logger"
)

const catalogSeededFlag = "catalog_seeded"

type SystemFlagRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSystemFlagRepository(db *gorm.DB, logger logger.Interface) system.InitFlagRepository {
	return &SystemFlagRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SystemFlagRepositoryImpl) IsInitialized(ctx context.Context) (bool, error) {
	var model models.SystemFlagModel

	if err := r.db.WithContext(ctx).Where("name = ?", catalogSeededFlag).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		r.logger.Errorw("failed to read init flag", "error", err)
		return false, fmt.Errorf("failed to read init flag: %w", err)
	}

	return model.Value, nil
}

func (r *SystemFlagRepositoryImpl) MarkInitialized(ctx context.Context) error {
	model := &models.SystemFlagModel{
		Name:  catalogSeededFlag,
		Value: true,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to set init flag", "error", err)
		return fmt.Errorf("failed to set init flag: %w", err)
	}

	return nil
}
