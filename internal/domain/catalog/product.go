package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Product is a catalog entry. The id is assigned by the repository at
// insertion time in strict insertion order and is never reused or
// reassigned, so it doubles as the product's position in the catalog.
type Product struct {
	id          uint64
	name        string
	description string
	price       float64
	unit        string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProduct creates a product that has not been persisted yet (id 0 until
// the repository assigns one).
func NewProduct(name, description string, price float64, unit string, now time.Time) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if price <= 0 {
		return nil, fmt.Errorf("product price must be positive")
	}
	if strings.TrimSpace(unit) == "" {
		return nil, fmt.Errorf("product unit is required")
	}

	return &Product{
		name:        name,
		description: description,
		price:       price,
		unit:        unit,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProduct rebuilds a product from persistence.
func ReconstructProduct(id uint64, name, description string, price float64, unit string, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		unit:        unit,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) ID() uint64           { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() float64       { return p.price }
func (p *Product) Unit() string         { return p.unit }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the product ID (only for persistence layer use)
func (p *Product) SetID(id uint64) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	p.id = id
	return nil
}

// Update replaces the mutable fields while preserving the id. This is the
// admin path; there is no customer-facing product mutation.
func (p *Product) Update(name, description string, price float64, unit string, now time.Time) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("product name is required")
	}
	if price <= 0 {
		return fmt.Errorf("product price must be positive")
	}
	if strings.TrimSpace(unit) == "" {
		return fmt.Errorf("product unit is required")
	}

	p.name = name
	p.description = description
	p.price = price
	p.unit = unit
	p.updatedAt = now
	return nil
}
