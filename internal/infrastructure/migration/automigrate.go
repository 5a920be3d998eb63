package migration

import (
	"milkrun/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ProductModel{},
		&models.ProfileModel{},
		&models.OrderModel{},
		&models.SubscriptionModel{},
		&models.SystemFlagModel{},
	}
}
