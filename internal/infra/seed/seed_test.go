package seed

import (
	"testing"
	"time"

	"dealdigest/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestStores_WellFormed(t *testing.T) {
	stores := Stores()
	assert.NotEmpty(t, stores)

	seen := map[string]bool{}
	for _, store := range stores {
		assert.NotEmpty(t, store.ID)
		assert.NotEmpty(t, store.Name)
		assert.True(t, store.Region.Valid(), "store %s has invalid region", store.ID)
		assert.True(t, store.Type.Valid(), "store %s has invalid type", store.ID)
		assert.False(t, seen[store.ID], "duplicate store id %s", store.ID)
		seen[store.ID] = true
	}
}

func TestDeals_WellFormed(t *testing.T) {
	now := time.Now()
	stores := map[string]bool{}
	for _, store := range Stores() {
		stores[store.ID] = true
	}

	deals := Deals(now)
	assert.NotEmpty(t, deals)

	anyValidNow := false
	for _, deal := range deals {
		assert.True(t, stores[deal.StoreID], "deal %q references unknown store %s", deal.ProductName, deal.StoreID)
		assert.True(t, deal.Category.Valid(), "deal %q has invalid category", deal.ProductName)
		assert.GreaterOrEqual(t, deal.RegularPrice, deal.SalePrice, "deal %q has no discount", deal.ProductName)
		assert.True(t, deal.ValidFrom.Before(deal.ValidUntil), "deal %q has inverted window", deal.ProductName)
		if deal.ValidAt(now) {
			anyValidNow = true
		}
	}
	// The fixtures must produce a non-empty daily digest out of the box.
	assert.True(t, anyValidNow)
}

func TestTips_WellFormed(t *testing.T) {
	tips := Tips()
	assert.NotEmpty(t, tips)

	for _, tip := range tips {
		assert.NotEmpty(t, tip.Title)
		assert.NotEmpty(t, tip.Body)
		if tip.Category != "" {
			assert.True(t, tip.Category.Valid(), "tip %q has invalid category", tip.Title)
		}
	}
}

func TestStores_AllActiveFixturesInKnownRegions(t *testing.T) {
	regions := map[entity.Region]bool{}
	for _, store := range Stores() {
		regions[store.Region] = true
	}

	assert.True(t, regions[entity.RegionAvalon])
}
