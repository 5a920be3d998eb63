package subscription

import "fmt"

// Item is a recurring order line. PricePerUnit is the catalog price frozen
// when the subscription was created or its items were last updated; orders
// generated from the subscription snapshot their own prices separately.
type Item struct {
	ProductID    uint64  `json:"product_id"`
	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit_at_subscription"`
}

// NewItem builds a subscription line with a price snapshot.
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
