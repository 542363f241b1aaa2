// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dealdigest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for newsletter persistence.
var (
	// ErrNewsletterNotFound is returned when a newsletter is not found.
	ErrNewsletterNotFound = errors.New("newsletter not found")
)

// NewsletterRepository defines the interface for newsletter-related database
// operations. Writes are atomic at the granularity of one newsletter record:
// readers never observe a newsletter without its junction rows.
type NewsletterRepository interface {
	// Create persists a newsletter and its ordered deal references in one
	// transaction, assigning ID and Sequence on the passed entity.
	Create(ctx context.Context, newsletter *entity.Newsletter) error

	// FindByID retrieves a newsletter with its deals in stored display order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Newsletter, error)

	// FindLatest retrieves the newsletter with the most recent generation
	// timestamp; ties are broken by insertion order (most recently inserted
	// wins). Returns ErrNewsletterNotFound when none are stored.
	FindLatest(ctx context.Context) (*entity.Newsletter, error)

	// List retrieves newsletters ordered newest-first. The caller is
	// responsible for clamping limit; a non-positive limit returns nothing.
	List(ctx context.Context, limit int) ([]*entity.Newsletter, error)

	// Count returns the total number of stored newsletters.
	Count(ctx context.Context) (int64, error)

	// DeleteByID removes a newsletter and its junction rows.
	// Returns ErrNewsletterNotFound when no row existed.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every stored newsletter. Administrative/test utility.
	DeleteAll(ctx context.Context) error
}
