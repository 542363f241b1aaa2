package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DealCategory is the closed enumeration of product categories.
type DealCategory string

const (
	CategoryProduce   DealCategory = "produce"
	CategoryMeat      DealCategory = "meat"
	CategorySeafood   DealCategory = "seafood"
	CategoryDairy     DealCategory = "dairy"
	CategoryBakery    DealCategory = "bakery"
	CategoryPantry    DealCategory = "pantry"
	CategoryFrozen    DealCategory = "frozen"
	CategoryBeverages DealCategory = "beverages"
	CategorySnacks    DealCategory = "snacks"
	CategoryHousehold DealCategory = "household"
)

// Valid reports whether the category is one of the known product categories.
func (c DealCategory) Valid() bool {
	switch c {
	case CategoryProduce, CategoryMeat, CategorySeafood, CategoryDairy, CategoryBakery,
		CategoryPantry, CategoryFrozen, CategoryBeverages, CategorySnacks, CategoryHousehold:
		return true
	}

	return false
}

// Deal represents a priced product offer at a specific store with a validity
// window. Deals are logically deactivated rather than hard-deleted; hard
// deletion only happens via cascade when the owning store is removed.
type Deal struct {
	ID            uuid.UUID    `json:"id"`
	StoreID       string       `json:"store_id"`
	StoreName     string       `json:"store_name"` // denormalized from the owning store for display and ranking
	ProductName   string       `json:"product_name"`
	Category      DealCategory `json:"category"`
	RegularPrice  float64      `json:"regular_price"`
	SalePrice     float64      `json:"sale_price"`
	Unit          string       `json:"unit,omitempty"`
	LoyaltyPoints int          `json:"loyalty_points,omitempty"`
	LoyaltyValue  float64      `json:"loyalty_value,omitempty"`
	Description   string       `json:"description,omitempty"`
	ValidFrom     time.Time    `json:"valid_from"`
	ValidUntil    time.Time    `json:"valid_until"`
	Featured      bool         `json:"featured"`
	Source        string       `json:"source,omitempty"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// DiscountPercent is the canonical discount derivation:
// round((regular - sale) / regular * 100). Any value stored elsewhere is
// ignored; every call site derives through here. A non-positive regular
// price derives 0, as does a sale price at or above the regular price.
func (d *Deal) DiscountPercent() int {
	if d.RegularPrice <= 0 || d.SalePrice >= d.RegularPrice {
		return 0
	}

	return int(math.Round((d.RegularPrice - d.SalePrice) / d.RegularPrice * 100))
}

// Savings is the per-deal potential saving, clamped to be non-negative.
func (d *Deal) Savings() float64 {
	if saving := d.RegularPrice - d.SalePrice; saving > 0 {
		return saving
	}

	return 0
}

// ValidAt reports whether the deal's validity window contains the given time.
func (d *Deal) ValidAt(now time.Time) bool {
	return !now.Before(d.ValidFrom) && !now.After(d.ValidUntil)
}
