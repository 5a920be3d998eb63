package models

import (
	"time"

	"milkrun/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for recurring
// subscriptions. Items and DeliveryDays are JSON arrays; NextOrderDate is
// indexed for the due-subscription sweep.
type SubscriptionModel struct {
	ID               uint64    `gorm:"primaryKey"`
	UserPhoneNumber  string    `gorm:"not null;size:20;index:idx_subscription_phone"`
	Items            []byte    `gorm:"type:json;not null"`
	DeliveryDays     []byte    `gorm:"type:json;not null"`
	DeliveryTimeSlot string    `gorm:"not null;size:50"`
	DeliveryAddress  string    `gorm:"not null;size:300"`
	StartDate        time.Time `gorm:"not null"`
	Status           string    `gorm:"not null;size:20;index:idx_subscription_status"`
	NextOrderDate    time.Time `gorm:"not null;index:idx_next_order_date"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
