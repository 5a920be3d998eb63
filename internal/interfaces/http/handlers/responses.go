package handlers

import (
	"time"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/domain/customer"
	"milkrun/internal/domain/order"
	"milkrun/internal/domain/subscription"
)

// Response DTOs decouple the wire shape from the domain aggregates.

type ProductResponse struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
}

func NewProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Unit:        p.Unit(),
	}
}

func NewProductResponses(products []*catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, NewProductResponse(p))
	}
	return responses
}

type ProfileResponse struct {
	PhoneNumber           string    `json:"phone_number"`
	Name                  string    `json:"name"`
	Address               string    `json:"address"`
	OrderIDs              []uint64  `json:"order_ids"`
	HasActiveSubscription bool      `json:"has_active_subscription"`
	ActiveSubscriptionID  *uint64   `json:"active_subscription_id,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func NewProfileResponse(p *customer.Profile) ProfileResponse {
	orderIDs := p.OrderIDs()
	if orderIDs == nil {
		orderIDs = []uint64{}
	}
	return ProfileResponse{
		PhoneNumber:           p.PhoneNumber(),
		Name:                  p.Name(),
		Address:               p.Address(),
		OrderIDs:              orderIDs,
		HasActiveSubscription: p.HasActiveSubscription(),
		ActiveSubscriptionID:  p.ActiveSubscriptionID(),
		CreatedAt:             p.CreatedAt(),
		UpdatedAt:             p.UpdatedAt(),
	}
}

func NewProfileResponses(profiles []*customer.Profile) []ProfileResponse {
	responses := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, NewProfileResponse(p))
	}
	return responses
}

type OrderResponse struct {
	ID              uint64       `json:"id"`
	UserPhoneNumber string       `json:"user_phone_number"`
	Items           []order.Item `json:"items"`
	TotalAmount     float64      `json:"total_amount"`
	Status          string       `json:"status"`
	DeliveryAddress string       `json:"delivery_address"`
	CreatedAt       time.Time    `json:"created_at"`
	LastUpdated     time.Time    `json:"last_updated"`
}

func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID(),
		UserPhoneNumber: o.UserPhoneNumber(),
		Items:           o.Items(),
		TotalAmount:     o.TotalAmount(),
		Status:          string(o.Status()),
		DeliveryAddress: o.DeliveryAddress(),
		CreatedAt:       o.CreatedAt(),
		LastUpdated:     o.LastUpdated(),
	}
}

func NewOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}
	return responses
}

type SubscriptionResponse struct {
	ID               uint64              `json:"id"`
	UserPhoneNumber  string              `json:"user_phone_number"`
	Items            []subscription.Item `json:"items"`
	DeliveryDays     []string            `json:"delivery_days"`
	DeliveryTimeSlot string              `json:"delivery_time_slot"`
	DeliveryAddress  string              `json:"delivery_address"`
	StartDate        time.Time           `json:"start_date"`
	Status           string              `json:"status"`
	NextOrderDate    time.Time           `json:"next_order_date"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func NewSubscriptionResponse(s *subscription.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:               s.ID(),
		UserPhoneNumber:  s.UserPhoneNumber(),
		Items:            s.Items(),
		DeliveryDays:     s.DeliveryDays(),
		DeliveryTimeSlot: s.DeliveryTimeSlot(),
		DeliveryAddress:  s.DeliveryAddress(),
		StartDate:        s.StartDate(),
		Status:           string(s.Status()),
		NextOrderDate:    s.NextOrderDate(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func NewSubscriptionResponses(subs []*subscription.Subscription) []SubscriptionResponse {
	responses := make([]SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		responses = append(responses, NewSubscriptionResponse(s))
	}
	return responses
}
