package usecase

import (
	"context"

	"dealdigest/internal/domain/entity"
)

// StoreUsecase defines the store reference data use cases.
type StoreUsecase interface {
	// List retrieves stores, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]*entity.Store, error)

	// Get retrieves a store by its slug identifier.
	Get(ctx context.Context, id string) (*entity.Store, error)

	// Delete removes a store and, by cascade, its deals.
	Delete(ctx context.Context, id string) error
}
