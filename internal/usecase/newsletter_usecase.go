// Package usecase defines the application's use case interfaces and the
// option types they accept.
package usecase

import (
	"context"

	"dealdigest/internal/domain/entity"
)

// List page size bounds, applied wherever a caller-supplied limit enters.
const (
	DefaultListLimit = 10
	MaxListLimit     = 30
)

// GenerateOptions carries a newsletter generation request. Zero values mean
// "use the default": daily frequency, all active stores, all categories,
// recipes included.
type GenerateOptions struct {
	// Frequency is "daily" or "weekly"; empty defaults to daily.
	Frequency string

	// StoreIDs restricts the digest to the given store slugs.
	StoreIDs []string

	// FocusCategories restricts the digest to the given categories;
	// unknown names are ignored.
	FocusCategories []string

	// IncludeRecipes attaches recipe suggestions; nil defaults to true.
	IncludeRecipes *bool

	// AIEnhancements attaches templated commentary to the digest.
	AIEnhancements bool

	CustomGreeting string
	CustomClosing  string
}

// NewsletterUsecase defines the newsletter generation and retrieval use cases.
type NewsletterUsecase interface {
	// Generate builds a newsletter from the current deal set and persists
	// it. Validation failures surface before any storage write.
	Generate(ctx context.Context, opts GenerateOptions) (*entity.Newsletter, error)

	// GetByID retrieves a newsletter by its public ID string. Unknown and
	// unparseable IDs both report not-found.
	GetByID(ctx context.Context, id string) (*entity.Newsletter, error)

	// Latest retrieves the most recently generated newsletter, or nil
	// (with no error) when none exist.
	Latest(ctx context.Context) (*entity.Newsletter, error)

	// List retrieves newsletters newest-first along with the total stored
	// count. A non-positive limit falls back to the default page size and
	// any requested limit is clamped to the hard cap of 30.
	List(ctx context.Context, limit int) ([]*entity.Newsletter, int64, error)

	// Delete removes a newsletter by its public ID string.
	Delete(ctx context.Context, id string) error

	// ClearAll removes every stored newsletter. Administrative utility.
	ClearAll(ctx context.Context) error
}
