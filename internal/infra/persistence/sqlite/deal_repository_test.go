package sqlite

import (
	"context"
	"testing"
	"time"

	"dealdigest/internal/domain/entity"
	"dealdigest/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedDealAt(t *testing.T, db *gorm.DB, storeID, product string, category entity.DealCategory, from, until time.Time, active bool) *entity.Deal {
	t.Helper()

	deal := &entity.Deal{
		ID:           uuid.New(),
		StoreID:      storeID,
		ProductName:  product,
		Category:     category,
		RegularPrice: 9.99,
		SalePrice:    6.99,
		ValidFrom:    from,
		ValidUntil:   until,
		IsActive:     active,
	}

	require.NoError(t, NewDealRepository(db).Create(context.Background(), deal))

	return deal
}

func TestDealRepository_Create_UnknownStore(t *testing.T) {
	db := newTestDB(t)

	deal := &entity.Deal{
		ID:           uuid.New(),
		StoreID:      "no-such-store",
		ProductName:  "Milk",
		Category:     entity.CategoryDairy,
		RegularPrice: 6.49,
		SalePrice:    5.49,
		ValidFrom:    time.Now(),
		ValidUntil:   time.Now().Add(time.Hour),
		IsActive:     true,
	}

	err := NewDealRepository(db).Create(context.Background(), deal)
	assert.ErrorIs(t, err, repository.ErrStoreReferenceInvalid)
}

func TestDealRepository_FindCandidates_Window(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	seedStore(t, db, "colemans", "Colemans")

	current := seedDealAt(t, db, "colemans", "Apples", entity.CategoryProduce,
		now.Add(-time.Hour), now.Add(24*time.Hour), true)
	expired := seedDealAt(t, db, "colemans", "Old Bread", entity.CategoryBakery,
		now.Add(-72*time.Hour), now.Add(-time.Hour), true)
	upcoming := seedDealAt(t, db, "colemans", "Next Week Cod", entity.CategorySeafood,
		now.Add(3*24*time.Hour), now.Add(10*24*time.Hour), true)
	inactive := seedDealAt(t, db, "colemans", "Pulled Deal", entity.CategoryProduce,
		now.Add(-time.Hour), now.Add(24*time.Hour), false)

	// Daily window: only the currently valid deal qualifies.
	deals, err := NewDealRepository(db).FindCandidates(ctx, repository.CandidateFilter{Now: now})
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, current.ID, deals[0].ID)

	// Weekly lookahead additionally admits the upcoming deal.
	deals, err = NewDealRepository(db).FindCandidates(ctx, repository.CandidateFilter{
		Now:       now,
		Lookahead: 7 * 24 * time.Hour,
	})
	require.NoError(t, err)
	require.Len(t, deals, 2)

	ids := []uuid.UUID{deals[0].ID, deals[1].ID}
	assert.Contains(t, ids, current.ID)
	assert.Contains(t, ids, upcoming.ID)
	assert.NotContains(t, ids, expired.ID)
	assert.NotContains(t, ids, inactive.ID)
}

func TestDealRepository_FindCandidates_Filters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	seedStore(t, db, "colemans", "Colemans")
	seedStore(t, db, "dominion", "Dominion")

	produce := seedDealAt(t, db, "colemans", "Apples", entity.CategoryProduce,
		now.Add(-time.Hour), now.Add(24*time.Hour), true)
	seedDealAt(t, db, "dominion", "Milk", entity.CategoryDairy,
		now.Add(-time.Hour), now.Add(24*time.Hour), true)

	deals, err := NewDealRepository(db).FindCandidates(ctx, repository.CandidateFilter{
		Now:      now,
		StoreIDs: []string{"colemans"},
	})
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, produce.ID, deals[0].ID)
	// Candidates carry the owning store's name for ranking and display.
	assert.Equal(t, "Colemans", deals[0].StoreName)

	deals, err = NewDealRepository(db).FindCandidates(ctx, repository.CandidateFilter{
		Now:        now,
		Categories: []entity.DealCategory{entity.CategoryDairy},
	})
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "Milk", deals[0].ProductName)
}

func TestDealRepository_FindCandidates_InactiveStoreExcluded(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	store := &entity.Store{
		ID:       "closed-mart",
		Name:     "Closed Mart",
		Chain:    "Closed Mart",
		City:     "Gander",
		Region:   entity.RegionCentral,
		Type:     entity.StoreTypeGrocery,
		IsActive: false,
	}
	require.NoError(t, NewStoreRepository(db).Create(ctx, store))
	seedDealAt(t, db, "closed-mart", "Orphan Deal", entity.CategoryPantry,
		now.Add(-time.Hour), now.Add(24*time.Hour), true)

	deals, err := NewDealRepository(db).FindCandidates(ctx, repository.CandidateFilter{Now: now})
	require.NoError(t, err)
	assert.Empty(t, deals)
}

func TestDealRepository_Deactivate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	seedStore(t, db, "colemans", "Colemans")
	deal := seedDealAt(t, db, "colemans", "Apples", entity.CategoryProduce,
		now.Add(-time.Hour), now.Add(24*time.Hour), true)

	repo := NewDealRepository(db)
	require.NoError(t, repo.Deactivate(ctx, deal.ID))

	found, err := repo.FindByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	assert.ErrorIs(t, repo.Deactivate(ctx, uuid.New()), repository.ErrDealNotFound)
}
