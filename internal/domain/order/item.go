package order

import "fmt"

// Item is a single order line. PricePerUnit is the catalog price frozen at
// order creation; later catalog changes never affect it.
type Item struct {
	ProductID    uint64  `json:"product_id"`
	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit_at_order"`
}

// NewItem builds an order line with a price snapshot. Quantity is a decimal
// amount (0.5 litre of milk is a valid line).
func NewItem(productID uint64, quantity, pricePerUnit float64) (Item, error) {
	if quantity <= 0 {
		return Item{}, fmt.Errorf("invalid quantity %v for product %d", quantity, productID)
	}
	if pricePerUnit < 0 {
		return Item{}, fmt.Errorf("invalid price %v for product %d", pricePerUnit, productID)
	}
	return Item{
		ProductID:    productID,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
	}, nil
}

// Total returns the line amount.
func (i Item) Total() float64 {
	return i.Quantity * i.PricePerUnit
}
