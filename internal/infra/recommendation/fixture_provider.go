// Package recommendation provides the fixture-backed recommendation
// provider. It stands in for a future model-backed service: content is
// templated and matching is plain string matching, never inference.
package recommendation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"dealdigest/internal/domain/entity"
	"dealdigest/internal/domain/service"
)

// fixtureRecipe is a catalog entry matched against deals by keyword and category.
type fixtureRecipe struct {
	title       string
	description string
	keywords    []string
	categories  []entity.DealCategory
}

var recipeCatalog = []fixtureRecipe{
	{
		title:       "Sheet-Pan Chicken and Root Vegetables",
		description: "Roast chicken thighs with carrots, parsnips and potatoes for an easy one-pan supper.",
		keywords:    []string{"chicken", "carrot", "potato", "parsnip"},
		categories:  []entity.DealCategory{entity.CategoryMeat, entity.CategoryProduce},
	},
	{
		title:       "Pan-Fried Cod with Lemon Butter",
		description: "A weeknight classic: fresh cod fillets dredged in flour and finished with lemon butter.",
		keywords:    []string{"cod", "salmon", "fish", "lemon"},
		categories:  []entity.DealCategory{entity.CategorySeafood},
	},
	{
		title:       "Berry Yogurt Parfaits",
		description: "Layer yogurt, granola and whatever berries are on special this week.",
		keywords:    []string{"yogurt", "berry", "berries", "strawberr", "blueberr", "granola"},
		categories:  []entity.DealCategory{entity.CategoryDairy, entity.CategoryProduce},
	},
	{
		title:       "Weeknight Pasta with Pantry Sauce",
		description: "Dried pasta, canned tomatoes and a splash of olive oil feed four for a few dollars.",
		keywords:    []string{"pasta", "tomato", "olive oil", "spaghetti"},
		categories:  []entity.DealCategory{entity.CategoryPantry},
	},
	{
		title:       "Freezer-Friendly Vegetable Soup",
		description: "Simmer frozen mixed vegetables with stock and herbs; portions keep for months.",
		keywords:    []string{"vegetable", "soup", "stock", "frozen"},
		categories:  []entity.DealCategory{entity.CategoryFrozen, entity.CategoryProduce},
	},
	{
		title:       "Loaded Breakfast Toast",
		description: "Thick-cut bakery bread under eggs, cheese and whatever produce needs using up.",
		keywords:    []string{"bread", "egg", "cheese", "bagel"},
		categories:  []entity.DealCategory{entity.CategoryBakery, entity.CategoryDairy},
	},
}

type fixtureProvider struct{}

// NewFixtureProvider creates the fixture-backed recommendation provider.
func NewFixtureProvider() service.RecommendationProvider {
	return &fixtureProvider{}
}

// RecipeSuggestions matches catalog recipes against the deals by keyword and
// category, best matches first; catalog order breaks ties so output is
// deterministic for a given deal list.
func (p *fixtureProvider) RecipeSuggestions(_ context.Context, deals []*entity.Deal, max int) ([]entity.RecipeSuggestion, error) {
	if max <= 0 {
		return nil, nil
	}

	type scored struct {
		recipe fixtureRecipe
		score  int
		order  int
	}

	dealCategories := make(map[entity.DealCategory]bool, len(deals))
	var names []string
	for _, deal := range deals {
		dealCategories[deal.Category] = true
		names = append(names, strings.ToLower(deal.ProductName))
	}

	candidates := make([]scored, 0, len(recipeCatalog))
	for i, recipe := range recipeCatalog {
		score := 0
		for _, keyword := range recipe.keywords {
			for _, name := range names {
				if strings.Contains(name, keyword) {
					score += 2

					break
				}
			}
		}
		for _, category := range recipe.categories {
			if dealCategories[category] {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{recipe: recipe, score: score, order: i})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}

		return candidates[i].order < candidates[j].order
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}

	suggestions := make([]entity.RecipeSuggestion, 0, len(candidates))
	for _, candidate := range candidates {
		categories := make([]string, 0, len(candidate.recipe.categories))
		for _, category := range candidate.recipe.categories {
			categories = append(categories, string(category))
		}
		suggestions = append(suggestions, entity.RecipeSuggestion{
			Title:       candidate.recipe.title,
			Description: candidate.recipe.description,
			Categories:  categories,
		})
	}

	return suggestions, nil
}

// Commentary produces a short templated remark about the selection.
func (p *fixtureProvider) Commentary(_ context.Context, frequency entity.Frequency, deals []*entity.Deal) (string, error) {
	if len(deals) == 0 {
		return fmt.Sprintf("A quiet stretch for %s deals — check back soon.", frequency), nil
	}

	best := deals[0]
	for _, deal := range deals[1:] {
		if deal.DiscountPercent() > best.DiscountPercent() {
			best = deal
		}
	}

	stores := make(map[string]bool, len(deals))
	for _, deal := range deals {
		stores[deal.StoreName] = true
	}

	return fmt.Sprintf("This %s digest covers %d deals across %d stores. Standout: %s at %s, %d%% off.",
		frequency, len(deals), len(stores), best.ProductName, best.StoreName, best.DiscountPercent()), nil
}
