package models

import (
	"time"

	"milkrun/internal/shared/constants"
)

// ProductModel represents the database persistence model for catalog
// products. IDs are dense positions assigned by the repository starting at
// zero, so auto-increment is disabled.
type ProductModel struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement:false"`
	Name        string  `gorm:"not null;size:100"`
	Description string  `gorm:"size:300"`
	Price       float64 `gorm:"not null"`
	Unit        string  `gorm:"not null;size:20"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}
