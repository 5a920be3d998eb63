package customer

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Profile is a customer record keyed by phone number, the natural key for
// everything in the fulfillment flow. It tracks the ids of orders the
// customer placed and whether they currently hold an active subscription.
type Profile struct {
	phoneNumber           string
	name                  string
	address               string
	orderIDs              []uint64
	hasActiveSubscription bool
	activeSubscriptionID  *uint64
	createdAt             time.Time
	updatedAt             time.Time
}

// NewProfile creates a profile. Phone, name and address are all required
// for the shipping context.
func NewProfile(phoneNumber, name, address string, now time.Time) (*Profile, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("address is required")
	}

	return &Profile{
		phoneNumber: phoneNumber,
		name:        name,
		address:     address,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProfile rebuilds a profile from persistence.
func ReconstructProfile(
	phoneNumber, name, address string,
	orderIDs []uint64,
	hasActiveSubscription bool,
	activeSubscriptionID *uint64,
	createdAt, updatedAt time.Time,
) *Profile {
	return &Profile{
		phoneNumber:           phoneNumber,
		name:                  name,
		address:               address,
		orderIDs:              orderIDs,
		hasActiveSubscription: hasActiveSubscription,
		activeSubscriptionID:  activeSubscriptionID,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

func (p *Profile) PhoneNumber() string { return p.phoneNumber }
func (p *Profile) Name() string        { return p.name }
func (p *Profile) Address() string     { return p.address }

// OrderIDs returns the ids of orders this customer has placed, oldest first.
func (p *Profile) OrderIDs() []uint64 {
	return slices.Clone(p.orderIDs)
}

func (p *Profile) HasActiveSubscription() bool   { return p.hasActiveSubscription }
func (p *Profile) ActiveSubscriptionID() *uint64 { return p.activeSubscriptionID }
func (p *Profile) CreatedAt() time.Time          { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time          { return p.updatedAt }

// UpdateDetails replaces name and address.
func (p *Profile) UpdateDetails(name, address string, now time.Time) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("address is required")
	}
	p.name = name
	p.address = address
	p.updatedAt = now
	return nil
}

// RecordOrder appends an order id to the customer's history.
func (p *Profile) RecordOrder(orderID uint64, now time.Time) {
	p.orderIDs = append(p.orderIDs, orderID)
	p.updatedAt = now
}

// AttachSubscription marks the customer as holding the active subscription id.
func (p *Profile) AttachSubscription(subscriptionID uint64, now time.Time) {
	p.hasActiveSubscription = true
	p.activeSubscriptionID = &subscriptionID
	p.updatedAt = now
}

// MarkSubscriptionPaused clears the active flag but keeps the reference so
// the subscription can be resumed.
func (p *Profile) MarkSubscriptionPaused(now time.Time) {
	p.hasActiveSubscription = false
	p.updatedAt = now
}

// MarkSubscriptionResumed restores the active flag.
func (p *Profile) MarkSubscriptionResumed(now time.Time) {
	p.hasActiveSubscription = true
	p.updatedAt = now
}

// DetachSubscription clears both the flag and the reference. Used on
// cancellation.
func (p *Profile) DetachSubscription(now time.Time) {
	p.hasActiveSubscription = false
	p.activeSubscriptionID = nil
	p.updatedAt = now
}
