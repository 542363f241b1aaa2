package usecase

import (
	"context"
	"time"

	"dealdigest/internal/domain/entity"
)

// DealListOptions filters the deal reference listing.
type DealListOptions struct {
	StoreID         string
	Category        string
	FeaturedOnly    bool
	IncludeInactive bool
}

// CreateDealInput carries an admin deal insertion.
type CreateDealInput struct {
	StoreID       string
	ProductName   string
	Category      string
	RegularPrice  float64
	SalePrice     float64
	Unit          string
	LoyaltyPoints int
	LoyaltyValue  float64
	Description   string
	ValidFrom     time.Time
	ValidUntil    time.Time
	Featured      bool
	Source        string
}

// DealUsecase defines the deal reference data use cases.
type DealUsecase interface {
	// List retrieves deals matching the options.
	List(ctx context.Context, opts DealListOptions) ([]*entity.Deal, error)

	// Create validates and persists a new deal.
	Create(ctx context.Context, input CreateDealInput) (*entity.Deal, error)

	// Deactivate logically deactivates a deal by its ID string.
	Deactivate(ctx context.Context, id string) error
}
