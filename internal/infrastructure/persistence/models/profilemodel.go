package models

import (
	"time"

	"milkrun/internal/shared/constants"
)

// ProfileModel represents the database persistence model for customer
// profiles, keyed by phone number. OrderIDs is a JSON array of order ids in
// placement order.
type ProfileModel struct {
	PhoneNumber           string `gorm:"primaryKey;size:20"`
	Name                  string `gorm:"not null;size:100"`
	Address               string `gorm:"not null;size:300"`
	OrderIDs              []byte `gorm:"type:json"`
	HasActiveSubscription bool   `gorm:"not null;default:false"`
	ActiveSubscriptionID  *uint64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return constants.TableProfiles
}
