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

type tipService struct {
	tipRepo repository.TipRepository
}

// TipServiceParams holds dependencies for the tip service, injected by Fx.
type TipServiceParams struct {
	fx.In

	TipRepo repository.TipRepository
}

// NewTipService creates a new tip service instance.
func NewTipService(params TipServiceParams) usecase.TipUsecase {
	return &tipService{tipRepo: params.TipRepo}
}

func (s *tipService) List(ctx context.Context, category string) ([]*entity.Tip, error) {
	var filter entity.DealCategory
	if category != "" {
		filter = entity.DealCategory(category)
		if !filter.Valid() {
			return nil, domainerrors.ErrInvalidDeal.WithDetails("unknown category: " + category)
		}
	}

	tips, err := s.tipRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tips")
	}

	return tips, nil
}
