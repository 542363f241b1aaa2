package impl

import (
	"context"

	"dealdigest/internal/domain/entity"
	domainerrors "dealdigest/internal/domain/errors"
	"dealdigest/internal/domain/repository"
	"dealdigest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dealService struct {
	dealRepo  repository.DealRepository
	storeRepo repository.StoreRepository
}

// DealServiceParams holds dependencies for the deal service, injected by Fx.
type DealServiceParams struct {
	fx.In

	DealRepo  repository.DealRepository
	StoreRepo repository.StoreRepository
}

// NewDealService creates a new deal service instance.
func NewDealService(params DealServiceParams) usecase.DealUsecase {
	return &dealService{
		dealRepo:  params.DealRepo,
		storeRepo: params.StoreRepo,
	}
}

func (s *dealService) List(ctx context.Context, opts usecase.DealListOptions) ([]*entity.Deal, error) {
	filter := repository.DealFilter{
		StoreID:         opts.StoreID,
		FeaturedOnly:    opts.FeaturedOnly,
		IncludeInactive: opts.IncludeInactive,
	}
	if opts.Category != "" {
		category := entity.DealCategory(opts.Category)
		if !category.Valid() {
			return nil, domainerrors.ErrInvalidDeal.WithDetails("unknown category: " + opts.Category)
		}
		filter.Category = category
	}

	deals, err := s.dealRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	return deals, nil
}

func (s *dealService) Create(ctx context.Context, input usecase.CreateDealInput) (*entity.Deal, error) {
	if input.ProductName == "" {
		return nil, domainerrors.ErrInvalidDeal.WithDetails("productName is required")
	}
	category := entity.DealCategory(input.Category)
	if !category.Valid() {
		return nil, domainerrors.ErrInvalidDeal.WithDetails("unknown category: " + input.Category)
	}
	if input.SalePrice < 0 || input.RegularPrice < 0 {
		return nil, domainerrors.ErrInvalidDeal.WithDetails("prices must be non-negative")
	}
	if input.ValidUntil.Before(input.ValidFrom) {
		return nil, domainerrors.ErrInvalidDeal.WithDetails("validUntil precedes validFrom")
	}

	store, err := s.storeRepo.FindByID(ctx, input.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve store")
	}

	deal := &entity.Deal{
		ID:            uuid.New(),
		StoreID:       store.ID,
		StoreName:     store.Name,
		ProductName:   input.ProductName,
		Category:      category,
		RegularPrice:  input.RegularPrice,
		SalePrice:     input.SalePrice,
		Unit:          input.Unit,
		LoyaltyPoints: input.LoyaltyPoints,
		LoyaltyValue:  input.LoyaltyValue,
		Description:   input.Description,
		ValidFrom:     input.ValidFrom,
		ValidUntil:    input.ValidUntil,
		Featured:      input.Featured,
		Source:        input.Source,
		IsActive:      true,
	}

	if err := s.dealRepo.Create(ctx, deal); err != nil {
		if errors.Is(err, repository.ErrStoreReferenceInvalid) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to create deal")
	}

	return deal, nil
}

func (s *dealService) Deactivate(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrDealNotFound
	}

	if err := s.dealRepo.Deactivate(ctx, parsed); err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return domainerrors.ErrDealNotFound
		}

		return errors.Wrap(err, "failed to deactivate deal")
	}

	return nil
}
