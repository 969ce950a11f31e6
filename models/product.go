package models

import "time"

// Variant is a named option of a product (a size) with its own price,
// overriding the base price when selected.
type Variant struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	BasePrice   float64   `json:"base_price"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Nutrition   []string  `json:"nutrition"`
	Variants    []Variant `json:"variants"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PriceFor resolves the effective unit price for a selected size. A
// product with variants is only sold in one of them, so the size must
// name an existing variant; the base price applies only to variant-less
// products.
func (p *Product) PriceFor(size string) (float64, bool) {
	if size == "" {
		if len(p.Variants) > 0 {
			return 0, false
		}
		return p.BasePrice, true
	}
	for _, v := range p.Variants {
		if v.Size == size {
			return v.Price, true
		}
	}
	return 0, false
}
