// Package entity contains the core business objects of the project.
package entity

import "time"

// Region is the closed set of geographic groupings used to filter stores and subscribers.
type Region string

const (
	RegionAvalon   Region = "avalon"
	RegionEastern  Region = "eastern"
	RegionCentral  Region = "central"
	RegionWestern  Region = "western"
	RegionLabrador Region = "labrador"
)

// Valid reports whether the region is one of the known groupings.
func (r Region) Valid() bool {
	switch r {
	case RegionAvalon, RegionEastern, RegionCentral, RegionWestern, RegionLabrador:
		return true
	}

	return false
}

// StoreType classifies a store within the market.
type StoreType string

const (
	StoreTypeGrocery       StoreType = "grocery"
	StoreTypeDiscount      StoreType = "discount"
	StoreTypeWholesale     StoreType = "wholesale"
	StoreTypeSpecialty     StoreType = "specialty"
	StoreTypeFarmersMarket StoreType = "farmers_market"
)

// Valid reports whether the store type is one of the known classifications.
func (t StoreType) Valid() bool {
	switch t {
	case StoreTypeGrocery, StoreTypeDiscount, StoreTypeWholesale, StoreTypeSpecialty, StoreTypeFarmersMarket:
		return true
	}

	return false
}

// Store represents a physical store location. Stores are immutable reference
// data loaded by seeding; their identifier is a stable slug such as
// "sobeys-avalon-mall".
type Store struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Chain          string    `json:"chain"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Region         Region    `json:"region"`
	Phone          string    `json:"phone,omitempty"`
	Website        string    `json:"website,omitempty"`
	LoyaltyProgram string    `json:"loyalty_program,omitempty"`
	Type           StoreType `json:"type"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
