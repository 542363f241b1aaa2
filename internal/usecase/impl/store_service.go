package impl

import (
	"context"

	"dealdigest/internal/domain/entity"
	domainerrors "dealdigest/internal/domain/errors"
	"dealdigest/internal/domain/repository"
	"dealdigest/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type storeService struct {
	storeRepo repository.StoreRepository
}

// StoreServiceParams holds dependencies for the store service, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
}

// NewStoreService creates a new store service instance.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{storeRepo: params.StoreRepo}
}

func (s *storeService) List(ctx context.Context, activeOnly bool) ([]*entity.Store, error) {
	stores, err := s.storeRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

func (s *storeService) Get(ctx context.Context, id string) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

func (s *storeService) Delete(ctx context.Context, id string) error {
	if err := s.storeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to delete store")
	}

	return nil
}
