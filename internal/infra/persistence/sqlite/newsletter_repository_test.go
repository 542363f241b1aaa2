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
	gormlogger "gorm.io/gorm/logger"

	glebarez "github.com/glebarez/sqlite"
)

// newTestDB opens a private in-memory database with the schema migrated.
// The pool is capped at one connection so every statement sees the same
// memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(glebarez.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	return db
}

func seedStore(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()

	repo := NewStoreRepository(db)
	require.NoError(t, repo.Create(context.Background(), &entity.Store{
		ID:       id,
		Name:     name,
		Chain:    name,
		City:     "St. John's",
		Region:   entity.RegionAvalon,
		Type:     entity.StoreTypeGrocery,
		IsActive: true,
	}))
}

func seedDeal(t *testing.T, db *gorm.DB, storeID, storeName, product string) *entity.Deal {
	t.Helper()

	now := time.Now()
	deal := &entity.Deal{
		ID:           uuid.New(),
		StoreID:      storeID,
		StoreName:    storeName,
		ProductName:  product,
		Category:     entity.CategoryProduce,
		RegularPrice: 4.99,
		SalePrice:    2.99,
		ValidFrom:    now.Add(-time.Hour),
		ValidUntil:   now.Add(48 * time.Hour),
		IsActive:     true,
	}

	repo := NewDealRepository(db)
	require.NoError(t, repo.Create(context.Background(), deal))

	return deal
}

func newsletterWithDeals(deals []*entity.Deal, generatedAt time.Time) *entity.Newsletter {
	stores := make([]string, 0, len(deals))
	seen := map[string]bool{}
	for _, deal := range deals {
		if !seen[deal.StoreName] {
			seen[deal.StoreName] = true
			stores = append(stores, deal.StoreName)
		}
	}

	return &entity.Newsletter{
		ID:              uuid.New(),
		GeneratedAt:     generatedAt,
		Frequency:       entity.FrequencyDaily,
		Greeting:        "Good morning!",
		Closing:         "Bye.",
		StoresIncluded:  stores,
		Deals:           deals,
		TotalDealsCount: len(deals),
	}
}

func TestNewsletterRepository_CreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedStore(t, db, "sobeys-avalon-mall", "Sobeys Avalon Mall")
	seedStore(t, db, "colemans", "Colemans")

	dealA := seedDeal(t, db, "colemans", "Colemans", "Apples")
	dealB := seedDeal(t, db, "sobeys-avalon-mall", "Sobeys Avalon Mall", "Salmon Fillets")

	repo := NewNewsletterRepository(db)
	newsletter := newsletterWithDeals([]*entity.Deal{dealB, dealA}, time.Now().UTC())

	require.NoError(t, repo.Create(ctx, newsletter))
	assert.NotZero(t, newsletter.Sequence)

	found, err := repo.FindByID(ctx, newsletter.ID)
	require.NoError(t, err)

	assert.Equal(t, newsletter.ID, found.ID)
	assert.Equal(t, entity.FrequencyDaily, found.Frequency)
	require.Len(t, found.Deals, 2)
	// Stored display order survives the roundtrip.
	assert.Equal(t, "Salmon Fillets", found.Deals[0].ProductName)
	assert.Equal(t, "Apples", found.Deals[1].ProductName)
	assert.Equal(t, "Sobeys Avalon Mall", found.Deals[0].StoreName)
}

func TestNewsletterRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	repo := NewNewsletterRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNewsletterNotFound)
}

func TestNewsletterRepository_FindLatest_TieBreaksByInsertion(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	repo := NewNewsletterRepository(db)

	generatedAt := time.Now().UTC().Truncate(time.Second)
	first := newsletterWithDeals(nil, generatedAt)
	second := newsletterWithDeals(nil, generatedAt)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	latest, err := repo.FindLatest(ctx)
	require.NoError(t, err)
	// Equal timestamps: the most recently inserted newsletter wins.
	assert.Equal(t, second.ID, latest.ID)
}

func TestNewsletterRepository_FindLatest_FallbackAfterDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	repo := NewNewsletterRepository(db)

	older := newsletterWithDeals(nil, time.Now().UTC().Add(-time.Hour))
	newer := newsletterWithDeals(nil, time.Now().UTC())

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	require.NoError(t, repo.DeleteByID(ctx, newer.ID))

	latest, err := repo.FindLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, latest.ID)

	require.NoError(t, repo.DeleteByID(ctx, older.ID))

	_, err = repo.FindLatest(ctx)
	assert.ErrorIs(t, err, repository.ErrNewsletterNotFound)
}

func TestNewsletterRepository_List(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	repo := NewNewsletterRepository(db)

	base := time.Now().UTC().Add(-time.Hour)
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		n := newsletterWithDeals(nil, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, n))
		ids = append(ids, n.ID)
	}

	newsletters, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, newsletters, 3)
	// Newest first.
	assert.Equal(t, ids[4], newsletters[0].ID)
	assert.Equal(t, ids[2], newsletters[2].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestNewsletterRepository_DeleteByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	repo := NewNewsletterRepository(db)

	err := repo.DeleteByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNewsletterNotFound)
}

func TestNewsletterRepository_DeleteAll(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	repo := NewNewsletterRepository(db)

	require.NoError(t, repo.Create(ctx, newsletterWithDeals(nil, time.Now().UTC())))
	require.NoError(t, repo.Create(ctx, newsletterWithDeals(nil, time.Now().UTC())))
	require.NoError(t, repo.DeleteAll(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNewsletterRepository_StoreCascadeDropsDeals(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedStore(t, db, "colemans", "Colemans")
	deal := seedDeal(t, db, "colemans", "Colemans", "Apples")

	repo := NewNewsletterRepository(db)
	newsletter := newsletterWithDeals([]*entity.Deal{deal}, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, newsletter))

	// Removing the store hard-deletes its deals; the newsletter record
	// itself survives with the missing deal dropped from hydration.
	require.NoError(t, NewStoreRepository(db).Delete(ctx, "colemans"))

	found, err := repo.FindByID(ctx, newsletter.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Deals)
	assert.Equal(t, 1, found.TotalDealsCount)
}
