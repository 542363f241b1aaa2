package entity

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is the generation cadence selector for a newsletter.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Valid reports whether the frequency is one of the supported cadences.
func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// RecipeSuggestion is a templated recipe attached to a newsletter. Matching
// against deals is simple name/category string matching, not inference.
type RecipeSuggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories,omitempty"`
}

// Newsletter is a generated digest of selected deals plus supporting content,
// persisted as an immutable artifact. Invariants:
//
//	TotalDealsCount == len(Deals)
//	TotalPotentialSavings == sum over Deals of max(0, regular - sale), rounded to cents
type Newsletter struct {
	ID          uuid.UUID `json:"id"`
	Sequence    int64     `json:"-"` // insertion order, assigned by the persistence layer
	GeneratedAt time.Time `json:"generated_at"`
	Frequency   Frequency `json:"frequency"`
	Greeting    string    `json:"greeting"`
	Closing     string    `json:"closing"`
	Commentary  string    `json:"commentary,omitempty"`

	// StoresIncluded lists the distinct store names appearing in Deals,
	// in first-appearance order of the ranked deal list.
	StoresIncluded []string `json:"stores_included"`

	// Deals is ordered by rank: discount percent descending, featured first
	// on ties, then store name ascending.
	Deals []*Deal `json:"deals_included"`

	TotalDealsCount       int     `json:"total_deals_count"`
	TotalPotentialSavings float64 `json:"total_potential_savings"`

	Recipes []RecipeSuggestion `json:"recipe_suggestions,omitempty"`
}
