package repository

import (
	"context"
	"time"

	"dealdigest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for deal persistence.
var (
	// ErrDealNotFound is returned when a deal is not found.
	ErrDealNotFound = errors.New("deal not found")
	// ErrStoreReferenceInvalid is returned when a deal references an unknown store.
	ErrStoreReferenceInvalid = errors.New("deal references unknown store")
)

// CandidateFilter narrows the deal set considered for newsletter generation.
type CandidateFilter struct {
	// Now anchors the validity-window check.
	Now time.Time

	// Lookahead additionally admits deals whose window opens within the
	// given duration after Now (weekly digests cover the coming week).
	Lookahead time.Duration

	// StoreIDs restricts to the given stores; empty means all active stores.
	StoreIDs []string

	// Categories restricts to the given categories; empty means all.
	Categories []entity.DealCategory
}

// DealFilter narrows reference listings of deals.
type DealFilter struct {
	StoreID      string
	Category     entity.DealCategory
	FeaturedOnly bool
	// IncludeInactive also returns logically deactivated deals.
	IncludeInactive bool
}

// DealRepository defines the interface for deal-related database operations.
type DealRepository interface {
	// Create persists a new deal, assigning its ID.
	Create(ctx context.Context, deal *entity.Deal) error

	// FindByID retrieves a deal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// FindCandidates retrieves active deals matching the candidate filter,
	// each carrying the owning store's name. Order is unspecified; ranking
	// is the builder's concern.
	FindCandidates(ctx context.Context, filter CandidateFilter) ([]*entity.Deal, error)

	// List retrieves deals for the reference API.
	List(ctx context.Context, filter DealFilter) ([]*entity.Deal, error)

	// Deactivate logically deactivates a deal. Returns ErrDealNotFound when
	// no row matched.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
