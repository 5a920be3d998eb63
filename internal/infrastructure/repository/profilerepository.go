package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"milkrun/internal/domain/customer"
	"milkrun/internal/infrastructure/persistence/mappers"
	"milkrun/internal/infrastructure/persistence/models"
	"milkrun/internal/shared/logger"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
	logger logger.Interface
}

func NewProfileRepository(db *gorm.DB, logger logger.Interface) customer.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mappers.NewProfileMapper(),
		logger: logger,
	}
}

func (r *ProfileRepositoryImpl) GetByPhone(ctx context.Context, phoneNumber string) (*customer.Profile, error) {
	var model models.ProfileModel

	if err := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get profile by phone", "phone", phoneNumber, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map profile model to entity", "phone", phoneNumber, "error", err)
		return nil, fmt.Errorf("failed to map profile: %w", err)
	}
	return entity, nil
}

// Upsert writes the full profile row, inserting or replacing on the phone
// number key.
func (r *ProfileRepositoryImpl) Upsert(ctx context.Context, profile *customer.Profile) error {
	model, err := r.mapper.ToModel(profile)
	if err != nil {
		r.logger.Errorw("failed to map profile entity to model", "phone", profile.PhoneNumber(), "error", err)
		return fmt.Errorf("failed to map profile entity: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone_number"}},
			UpdateAll: true,
		}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to upsert profile", "phone", model.PhoneNumber, "error", err)
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

// Delete removes the profile and returns the deleted record, or nil when no
// profile exists for the phone number.
func (r *ProfileRepositoryImpl) Delete(ctx context.Context, phoneNumber string) (*customer.Profile, error) {
	var deleted *customer.Profile

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ProfileModel
		if err := tx.Where("phone_number = ?", phoneNumber).First(&model).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return fmt.Errorf("failed to get profile: %w", err)
		}

		entity, err := r.mapper.ToEntity(&model)
		if err != nil {
			return fmt.Errorf("failed to map profile: %w", err)
		}

		if err := tx.Where("phone_number = ?", phoneNumber).Delete(&models.ProfileModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}

		deleted = entity
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to delete profile", "phone", phoneNumber, "error", err)
		return nil, err
	}

	if deleted != nil {
		r.logger.Infow("profile deleted successfully", "phone", phoneNumber)
	}
	return deleted, nil
}

func (r *ProfileRepositoryImpl) List(ctx context.Context) ([]*customer.Profile, error) {
	var profileModels []*models.ProfileModel

	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&profileModels).Error; err != nil {
		r.logger.Errorw("failed to list profiles", "error", err)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	entities, err := r.mapper.ToEntities(profileModels)
	if err != nil {
		r.logger.Errorw("failed to map profile models to entities", "error", err)
		return nil, fmt.Errorf("failed to map profiles: %w", err)
	}
	return entities, nil
}
