package impl

import (
	"context"
	"testing"
	"time"

	"dealdigest/internal/domain/entity"
	"dealdigest/internal/domain/repository"
	mockrepo "dealdigest/internal/mocks/repository"
	"dealdigest/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validDealInput() usecase.CreateDealInput {
	now := time.Now()

	return usecase.CreateDealInput{
		StoreID:      "colemans-cbs",
		ProductName:  "Apples",
		Category:     "produce",
		RegularPrice: 4.99,
		SalePrice:    2.99,
		ValidFrom:    now,
		ValidUntil:   now.Add(48 * time.Hour),
	}
}

func TestDealService_Create(t *testing.T) {
	dealRepo := mockrepo.NewMockDealRepository(t)
	storeRepo := mockrepo.NewMockStoreRepository(t)

	storeRepo.On("FindByID", mock.Anything, "colemans-cbs").
		Return(&entity.Store{ID: "colemans-cbs", Name: "Colemans Conception Bay South"}, nil)
	dealRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *entity.Deal) bool {
		return d.IsActive && d.StoreName == "Colemans Conception Bay South"
	})).Return(nil)

	svc := &dealService{dealRepo: dealRepo, storeRepo: storeRepo}

	deal, err := svc.Create(context.Background(), validDealInput())
	require.NoError(t, err)
	assert.Equal(t, 40, deal.DiscountPercent())
}

func TestDealService_Create_Validation(t *testing.T) {
	svc := &dealService{
		dealRepo:  mockrepo.NewMockDealRepository(t),
		storeRepo: mockrepo.NewMockStoreRepository(t),
	}

	// Each case fails before any repository call.
	missingName := validDealInput()
	missingName.ProductName = ""
	_, err := svc.Create(context.Background(), missingName)
	assert.Error(t, err)

	badCategory := validDealInput()
	badCategory.Category = "electronics"
	_, err = svc.Create(context.Background(), badCategory)
	assert.Error(t, err)

	negativePrice := validDealInput()
	negativePrice.SalePrice = -1
	_, err = svc.Create(context.Background(), negativePrice)
	assert.Error(t, err)

	invertedWindow := validDealInput()
	invertedWindow.ValidFrom, invertedWindow.ValidUntil = invertedWindow.ValidUntil, invertedWindow.ValidFrom
	_, err = svc.Create(context.Background(), invertedWindow)
	assert.Error(t, err)
}

func TestDealService_Create_UnknownStore(t *testing.T) {
	dealRepo := mockrepo.NewMockDealRepository(t)
	storeRepo := mockrepo.NewMockStoreRepository(t)

	storeRepo.On("FindByID", mock.Anything, "colemans-cbs").
		Return(nil, repository.ErrStoreNotFound)

	svc := &dealService{dealRepo: dealRepo, storeRepo: storeRepo}

	_, err := svc.Create(context.Background(), validDealInput())
	assert.Error(t, err)
}

func TestDealService_List_UnknownCategory(t *testing.T) {
	svc := &dealService{
		dealRepo:  mockrepo.NewMockDealRepository(t),
		storeRepo: mockrepo.NewMockStoreRepository(t),
	}

	_, err := svc.List(context.Background(), usecase.DealListOptions{Category: "electronics"})
	assert.Error(t, err)
}

func TestDealService_Deactivate_UnparseableID(t *testing.T) {
	svc := &dealService{
		dealRepo:  mockrepo.NewMockDealRepository(t),
		storeRepo: mockrepo.NewMockStoreRepository(t),
	}

	assert.Error(t, svc.Deactivate(context.Background(), "not-a-uuid"))
}
