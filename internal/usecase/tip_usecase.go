package usecase

import (
	"context"

	"dealdigest/internal/domain/entity"
)

// TipUsecase defines the shopper tip use cases.
type TipUsecase interface {
	// List retrieves tips, optionally restricted to one category.
	List(ctx context.Context, category string) ([]*entity.Tip, error)
}
