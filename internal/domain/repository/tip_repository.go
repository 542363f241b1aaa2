package repository

import (
	"context"

	"dealdigest/internal/domain/entity"
)

// TipRepository defines the interface for fixture tip content.
type TipRepository interface {
	// Create persists a tip. Used by seeding only.
	Create(ctx context.Context, tip *entity.Tip) error

	// FindAll retrieves tips, optionally restricted to one category.
	FindAll(ctx context.Context, category entity.DealCategory) ([]*entity.Tip, error)
}
