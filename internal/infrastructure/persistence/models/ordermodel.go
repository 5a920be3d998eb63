package models

import (
	"time"

	"milkrun/internal/shared/constants"
)

// OrderModel represents the database persistence model for orders. Items is
// a JSON array of lines with their frozen price snapshots; the primary key
// sequence is never reused, matching the monotonic order-id contract.
type OrderModel struct {
	ID              uint64  `gorm:"primaryKey"`
	UserPhoneNumber string  `gorm:"not null;size:20;index:idx_order_phone"`
	Items           []byte  `gorm:"type:json;not null"`
	TotalAmount     float64 `gorm:"not null"`
	Status          string  `gorm:"not null;size:20;index:idx_order_status"`
	DeliveryAddress string  `gorm:"not null;size:300"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}
