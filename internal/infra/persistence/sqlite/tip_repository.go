package sqlite

import (
	"context"

	"dealdigest/internal/domain/entity"
	"dealdigest/internal/domain/repository"
	"dealdigest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tipRepository implements the repository.TipRepository interface.
type tipRepository struct {
	db *gorm.DB
}

// NewTipRepository is the constructor for tipRepository.
func NewTipRepository(db *gorm.DB) repository.TipRepository {
	return &tipRepository{
		db: db,
	}
}

// Create persists a tip.
func (repo *tipRepository) Create(ctx context.Context, tip *entity.Tip) error {
	if tip.ID == uuid.Nil {
		tip.ID = uuid.New()
	}

	tipM := &model.TipModel{
		ID:       tip.ID.String(),
		Title:    tip.Title,
		Body:     tip.Body,
		Category: string(tip.Category),
	}

	if err := repo.db.WithContext(ctx).Create(tipM).Error; err != nil {
		return errors.Wrap(err, "failed to create tip")
	}

	tip.CreatedAt = tipM.CreatedAt

	return nil
}

// FindAll retrieves tips, optionally restricted to one category.
func (repo *tipRepository) FindAll(ctx context.Context, category entity.DealCategory) ([]*entity.Tip, error) {
	query := repo.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if category != "" {
		query = query.Where("category = ?", string(category))
	}

	var tipModels []*model.TipModel
	if err := query.Find(&tipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tips")
	}

	tips := make([]*entity.Tip, 0, len(tipModels))
	for _, tipM := range tipModels {
		id, err := uuid.Parse(tipM.ID)
		if err != nil {
			id = uuid.Nil
		}
		tips = append(tips, &entity.Tip{
			ID:        id,
			Title:     tipM.Title,
			Body:      tipM.Body,
			Category:  entity.DealCategory(tipM.Category),
			CreatedAt: tipM.CreatedAt,
		})
	}

	return tips, nil
}
