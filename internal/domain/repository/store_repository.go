package repository

import (
	"context"

	"dealdigest/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the interface for store reference data. Stores are
// seeded once and treated as immutable; the only mutation is removal, which
// cascades to the store's deals.
type StoreRepository interface {
	// Create persists a store. Used by seeding only.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a store by its slug identifier.
	FindByID(ctx context.Context, id string) (*entity.Store, error)

	// FindAll retrieves stores, optionally restricted to active ones,
	// ordered by name.
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Store, error)

	// Count returns the number of stored stores. Used to decide seeding.
	Count(ctx context.Context) (int64, error)

	// Delete removes a store; its deals are removed by foreign-key cascade.
	// Returns ErrStoreNotFound when no row existed.
	Delete(ctx context.Context, id string) error
}
