package models

import (
	"time"

	"milkrun/internal/shared/constants"
)

// SystemFlagModel stores one-shot system markers such as the catalog seed
// flag.
type SystemFlagModel struct {
	Name      string `gorm:"primaryKey;size:50"`
	Value     bool   `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SystemFlagModel) TableName() string {
	return constants.TableSystemFlags
}
