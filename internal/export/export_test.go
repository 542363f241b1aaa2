package export

import (
	"strings"
	"testing"
	"time"

	"dealdigest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func exportFixture() *entity.Newsletter {
	return &entity.Newsletter{
		ID:          uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		GeneratedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Frequency:   entity.FrequencyWeekly,
		Greeting:    "Happy shopping!",
		Closing:     "See you next week.",
		StoresIncluded: []string{
			"Sobeys Avalon Mall",
			"Colemans",
		},
		Deals: []*entity.Deal{
			{
				ID:           uuid.New(),
				StoreName:    "Sobeys Avalon Mall",
				ProductName:  "Salmon Fillets",
				Category:     entity.CategorySeafood,
				RegularPrice: 16.99,
				SalePrice:    10.19,
				Unit:         "per lb",
				Featured:     true,
			},
			{
				ID:           uuid.New(),
				StoreName:    "Colemans",
				ProductName:  "Apples",
				Category:     entity.CategoryProduce,
				RegularPrice: 4.99,
				SalePrice:    2.99,
			},
		},
		TotalDealsCount:       2,
		TotalPotentialSavings: 8.80,
		Recipes: []entity.RecipeSuggestion{
			{Title: "Maple salmon", Description: "Roast with maple glaze."},
		},
	}
}

func TestFileName(t *testing.T) {
	n := exportFixture()

	assert.Equal(t, "newsletter-6ba7b810-9dad-11d1-80b4-00c04fd430c8.txt", FileName(n))
}

func TestToPlainText(t *testing.T) {
	text := ToPlainText(exportFixture())

	assert.Contains(t, text, "Happy shopping!")
	assert.Contains(t, text, "Your weekly deal digest for March 14, 2026")
	assert.Contains(t, text, "Sobeys Avalon Mall")
	assert.Contains(t, text, "Salmon Fillets — $10.19 per lb (reg $16.99, 40% off) *featured*")
	assert.Contains(t, text, "Apples — $2.99 (reg $4.99, 40% off)")
	assert.Contains(t, text, "Total deals: 2")
	assert.Contains(t, text, "Potential savings: $8.80")
	assert.Contains(t, text, "Maple salmon: Roast with maple glaze.")
	assert.Contains(t, text, "See you next week.")

	// Store sections follow StoresIncluded order.
	assert.Less(t,
		strings.Index(text, "Sobeys Avalon Mall"),
		strings.Index(text, "Colemans"),
	)
}

func TestToPlainText_Deterministic(t *testing.T) {
	n := exportFixture()

	assert.Equal(t, ToPlainText(n), ToPlainText(n))
	assert.Equal(t, ToHTML(n), ToHTML(n))
}

func TestToHTML(t *testing.T) {
	html := ToHTML(exportFixture())

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<h2>Sobeys Avalon Mall</h2>")
	assert.Contains(t, html, "<strong>$10.19</strong>")
	assert.Contains(t, html, "<del>$16.99</del>")
	assert.Contains(t, html, "(40% off)")
	assert.Contains(t, html, "<strong>Maple salmon</strong>: Roast with maple glaze.")
	assert.Contains(t, html, "See you next week.")
}

func TestToHTML_EscapesContent(t *testing.T) {
	n := exportFixture()
	n.Greeting = `Deals <script>alert("x")</script>`

	html := ToHTML(n)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestGroupByStore_TrailingUnlistedStore(t *testing.T) {
	n := exportFixture()
	n.Deals = append(n.Deals, &entity.Deal{StoreName: "Powell's", ProductName: "Tea"})

	groups := groupByStore(n)

	assert.Len(t, groups, 3)
	assert.Equal(t, "Powell's", groups[2].StoreName)
}
