// Package service defines domain service abstractions implemented by infra.
package service

import (
	"context"

	"dealdigest/internal/domain/entity"
)

// RecommendationProvider supplies recipe suggestions and optional commentary
// for a generated newsletter. The shipped implementation is fixture-backed
// (templated content with simple name/category matching); a real provider can
// be substituted without touching the builder.
type RecommendationProvider interface {
	// RecipeSuggestions returns up to max suggestions matched against the
	// selected deals by name/category string matching.
	RecipeSuggestions(ctx context.Context, deals []*entity.Deal, max int) ([]entity.RecipeSuggestion, error)

	// Commentary returns a short templated remark about the selection, used
	// when a generation request asks for enhanced content.
	Commentary(ctx context.Context, frequency entity.Frequency, deals []*entity.Deal) (string, error)
}
