package order

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Order is the order aggregate root. Orders are created through the
// lifecycle manager, mutated only by status transitions, and never deleted.
type Order struct {
	id              uint64
	userPhoneNumber string
	items           []Item
	totalAmount     float64
	status          Status
	deliveryAddress string
	createdAt       time.Time
	lastUpdated     time.Time
}

// NewOrder creates a pending order from already price-snapshotted items and
// computes the total. The id stays zero until the repository assigns one.
func NewOrder(phoneNumber string, items []Item, deliveryAddress string, now time.Time) (*Order, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order items are required")
	}
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, fmt.Errorf("delivery address is required")
	}

	total := 0.0
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %v for product %d", item.Quantity, item.ProductID)
		}
		total += item.Total()
	}

	return &Order{
		userPhoneNumber: phoneNumber,
		items:           slices.Clone(items),
		totalAmount:     total,
		status:          StatusPending,
		deliveryAddress: deliveryAddress,
		createdAt:       now,
		lastUpdated:     now,
	}, nil
}

// ReconstructOrder rebuilds an order from persistence.
func ReconstructOrder(
	id uint64,
	userPhoneNumber string,
	items []Item,
	totalAmount float64,
	status Status,
	deliveryAddress string,
	createdAt, lastUpdated time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	return &Order{
		id:              id,
		userPhoneNumber: userPhoneNumber,
		items:           items,
		totalAmount:     totalAmount,
		status:          status,
		deliveryAddress: deliveryAddress,
		createdAt:       createdAt,
		lastUpdated:     lastUpdated,
	}, nil
}

func (o *Order) ID() uint64              { return o.id }
func (o *Order) UserPhoneNumber() string { return o.userPhoneNumber }
func (o *Order) Items() []Item           { return slices.Clone(o.items) }
func (o *Order) TotalAmount() float64    { return o.totalAmount }
func (o *Order) Status() Status          { return o.status }
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) LastUpdated() time.Time  { return o.lastUpdated }

// SetID sets the order ID (only for persistence layer use)
func (o *Order) SetID(id uint64) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// IsOwnedBy reports whether phoneNumber placed this order.
func (o *Order) IsOwnedBy(phoneNumber string) bool {
	return o.userPhoneNumber == phoneNumber
}

// CancelByOwner applies the customer cancellation rule: an owner may cancel
// only while the order is still pending. Everything else is the trusted
// admin path via SetStatus.
func (o *Order) CancelByOwner(now time.Time) error {
	if o.status != StatusPending {
		return fmt.Errorf("%w: status is %s", ErrCannotCancel, o.status)
	}
	o.status = StatusCancelled
	o.lastUpdated = now
	return nil
}

// SetStatus sets any valid status directly. No transition table is applied;
// the admin path is trusted.
func (o *Order) SetStatus(status Status, now time.Time) error {
	if !ValidStatuses[status] {
		return fmt.Errorf("invalid order status: %s", status)
	}
	o.status = status
	o.lastUpdated = now
	return nil
}
