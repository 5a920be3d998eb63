package subscription

import (
	"fmt"
	"slices"
	"strings"
	"time"

	vo "milkrun/internal/domain/subscription/valueobjects"
)

// Subscription is the recurring-delivery aggregate root. Cancelled is
// terminal but the record remains queryable; subscriptions are never
// deleted.
type Subscription struct {
	id               uint64
	userPhoneNumber  string
	items            []Item
	deliveryDays     []string
	deliveryTimeSlot string
	deliveryAddress  string
	startDate        time.Time
	status           vo.SubscriptionStatus
	nextOrderDate    time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewSubscription creates an active subscription. The initial next order
// date comes from NextOrderDate; the id stays zero until the repository
// assigns one.
func NewSubscription(
	phoneNumber string,
	items []Item,
	deliveryDays []string,
	deliveryTimeSlot string,
	deliveryAddress string,
	startDate time.Time,
	now time.Time,
) (*Subscription, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("subscription items are required")
	}
	if err := validateDeliveryDays(deliveryDays); err != nil {
		return nil, err
	}
	if strings.TrimSpace(deliveryTimeSlot) == "" {
		return nil, fmt.Errorf("delivery time slot is required")
	}
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, fmt.Errorf("delivery address is required")
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("start date is required")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %v for product %d", item.Quantity, item.ProductID)
		}
	}

	return &Subscription{
		userPhoneNumber:  phoneNumber,
		items:            slices.Clone(items),
		deliveryDays:     slices.Clone(deliveryDays),
		deliveryTimeSlot: deliveryTimeSlot,
		deliveryAddress:  deliveryAddress,
		startDate:        startDate,
		status:           vo.StatusActive,
		nextOrderDate:    NextOrderDate(startDate, deliveryDays, now),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(
	id uint64,
	userPhoneNumber string,
	items []Item,
	deliveryDays []string,
	deliveryTimeSlot string,
	deliveryAddress string,
	startDate time.Time,
	status vo.SubscriptionStatus,
	nextOrderDate time.Time,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:               id,
		userPhoneNumber:  userPhoneNumber,
		items:            items,
		deliveryDays:     deliveryDays,
		deliveryTimeSlot: deliveryTimeSlot,
		deliveryAddress:  deliveryAddress,
		startDate:        startDate,
		status:           status,
		nextOrderDate:    nextOrderDate,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (s *Subscription) ID() uint64                    { return s.id }
func (s *Subscription) UserPhoneNumber() string       { return s.userPhoneNumber }
func (s *Subscription) Items() []Item                 { return slices.Clone(s.items) }
func (s *Subscription) DeliveryDays() []string        { return slices.Clone(s.deliveryDays) }
func (s *Subscription) DeliveryTimeSlot() string      { return s.deliveryTimeSlot }
func (s *Subscription) DeliveryAddress() string       { return s.deliveryAddress }
func (s *Subscription) StartDate() time.Time          { return s.startDate }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) NextOrderDate() time.Time      { return s.nextOrderDate }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time          { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint64) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// IsOwnedBy reports whether phoneNumber owns this subscription.
func (s *Subscription) IsOwnedBy(phoneNumber string) bool {
	return s.userPhoneNumber == phoneNumber
}

// IsDue reports whether the sweep should materialize an order now.
func (s *Subscription) IsDue(now time.Time) bool {
	return s.status == vo.StatusActive && !s.nextOrderDate.After(now)
}

// Pause transitions Active -> Paused.
func (s *Subscription) Pause(now time.Time) error {
	return s.transition(vo.StatusPaused, now)
}

// Resume transitions Paused -> Active. Resuming a cancelled subscription is
// not allowed.
func (s *Subscription) Resume(now time.Time) error {
	return s.transition(vo.StatusActive, now)
}

// Cancel transitions Active or Paused -> Cancelled.
func (s *Subscription) Cancel(now time.Time) error {
	return s.transition(vo.StatusCancelled, now)
}

func (s *Subscription) transition(target vo.SubscriptionStatus, now time.Time) error {
	if !s.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, s.status, target)
	}
	s.status = target
	s.updatedAt = now
	return nil
}

// SetStatus sets any valid status directly, bypassing the transition table.
// Admin path only.
func (s *Subscription) SetStatus(status vo.SubscriptionStatus, now time.Time) error {
	if !vo.ValidStatuses[status] {
		return fmt.Errorf("invalid subscription status: %s", status)
	}
	s.status = status
	s.updatedAt = now
	return nil
}

// AdvanceSchedule moves the next order date forward after the sweep
// materialized an order.
func (s *Subscription) AdvanceSchedule(nextOrderDate, now time.Time) {
	s.nextOrderDate = nextOrderDate
	s.updatedAt = now
}

// Patch carries the optional detail updates. Nil fields are untouched.
type Patch struct {
	Items            []Item
	DeliveryDays     []string
	DeliveryTimeSlot *string
	DeliveryAddress  *string
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Items == nil && p.DeliveryDays == nil && p.DeliveryTimeSlot == nil && p.DeliveryAddress == nil
}

// ApplyPatch validates and applies each supplied field independently.
// Applying an empty patch is a no-op, not an error.
func (s *Subscription) ApplyPatch(patch Patch, now time.Time) error {
	if patch.IsEmpty() {
		return nil
	}

	if patch.Items != nil {
		if len(patch.Items) == 0 {
			return fmt.Errorf("subscription items cannot be empty")
		}
		for _, item := range patch.Items {
			if item.Quantity <= 0 {
				return fmt.Errorf("invalid quantity %v for product %d", item.Quantity, item.ProductID)
			}
		}
	}
	if patch.DeliveryDays != nil {
		if err := validateDeliveryDays(patch.DeliveryDays); err != nil {
			return err
		}
	}
	if patch.DeliveryTimeSlot != nil && strings.TrimSpace(*patch.DeliveryTimeSlot) == "" {
		return fmt.Errorf("delivery time slot cannot be empty")
	}
	if patch.DeliveryAddress != nil && strings.TrimSpace(*patch.DeliveryAddress) == "" {
		return fmt.Errorf("delivery address cannot be empty")
	}

	if patch.Items != nil {
		s.items = slices.Clone(patch.Items)
	}
	if patch.DeliveryDays != nil {
		s.deliveryDays = slices.Clone(patch.DeliveryDays)
	}
	if patch.DeliveryTimeSlot != nil {
		s.deliveryTimeSlot = *patch.DeliveryTimeSlot
	}
	if patch.DeliveryAddress != nil {
		s.deliveryAddress = *patch.DeliveryAddress
	}
	s.updatedAt = now
	return nil
}

func validateDeliveryDays(days []string) error {
	if len(days) == 0 {
		return fmt.Errorf("delivery days are required")
	}
	for _, day := range days {
		if !ValidDeliveryDays[day] {
			return fmt.Errorf("invalid delivery day: %s", day)
		}
	}
	return nil
}
