package sqlite

import (
	"context"
	"encoding/json"

	"dealdigest/internal/domain/entity"
	domainerrors "dealdigest/internal/domain/errors"
	"dealdigest/internal/domain/repository"
	"dealdigest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// newsletterRepository implements the repository.NewsletterRepository interface.
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{
		db: db,
	}
}

// Create persists the newsletter and its ordered junction rows in a single
// transaction, so readers never observe a half-written record.
func (repo *newsletterRepository) Create(ctx context.Context, newsletter *entity.Newsletter) error {
	if newsletter.ID == uuid.Nil {
		newsletter.ID = uuid.New()
	}

	newsletterM, err := fromNewsletterDomain(newsletter)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newsletterM).Error; err != nil {
			return errors.Wrap(err, "failed to create newsletter")
		}

		junction := make([]model.NewsletterDealModel, 0, len(newsletter.Deals))
		for i, deal := range newsletter.Deals {
			junction = append(junction, model.NewsletterDealModel{
				NewsletterID: newsletterM.ID,
				DealID:       deal.ID.String(),
				Position:     i,
			})
		}
		if len(junction) == 0 {
			return nil
		}

		return errors.Wrap(tx.Create(&junction).Error, "failed to create newsletter deal rows")
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to persist newsletter")
	}

	newsletter.Sequence = newsletterM.ID

	return nil
}

// FindByID retrieves a newsletter with its deals in stored display order.
func (repo *newsletterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Newsletter, error) {
	var newsletterM model.NewsletterModel

	if err := repo.db.WithContext(ctx).
		Where("public_id = ?", id.String()).
		First(&newsletterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsletterNotFound
		}

		return nil, errors.Wrap(err, "failed to find newsletter by ID")
	}

	return repo.hydrate(ctx, &newsletterM)
}

// FindLatest retrieves the most recently generated newsletter; generation
// timestamp ties go to the most recently inserted row.
func (repo *newsletterRepository) FindLatest(ctx context.Context) (*entity.Newsletter, error) {
	var newsletterM model.NewsletterModel

	if err := repo.db.WithContext(ctx).
		Order("generated_at DESC, id DESC").
		First(&newsletterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsletterNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest newsletter")
	}

	return repo.hydrate(ctx, &newsletterM)
}

// List retrieves newsletters ordered newest-first.
func (repo *newsletterRepository) List(ctx context.Context, limit int) ([]*entity.Newsletter, error) {
	if limit <= 0 {
		return []*entity.Newsletter{}, nil
	}

	var newsletterModels []*model.NewsletterModel

	if err := repo.db.WithContext(ctx).
		Order("generated_at DESC, id DESC").
		Limit(limit).
		Find(&newsletterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list newsletters")
	}

	newsletters := make([]*entity.Newsletter, 0, len(newsletterModels))
	for _, newsletterM := range newsletterModels {
		newsletter, err := repo.hydrate(ctx, newsletterM)
		if err != nil {
			return nil, err
		}
		newsletters = append(newsletters, newsletter)
	}

	return newsletters, nil
}

// Count returns the total number of stored newsletters.
func (repo *newsletterRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NewsletterModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count newsletters")
	}

	return count, nil
}

// DeleteByID removes a newsletter; junction rows go with it by cascade.
func (repo *newsletterRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("public_id = ?", id.String()).
		Delete(&model.NewsletterModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete newsletter")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNewsletterNotFound
	}

	return nil
}

// DeleteAll removes every stored newsletter.
func (repo *newsletterRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.NewsletterModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete all newsletters")
	}

	return nil
}

// hydrate attaches the ordered deal list to a loaded newsletter row.
func (repo *newsletterRepository) hydrate(ctx context.Context, newsletterM *model.NewsletterModel) (*entity.Newsletter, error) {
	var junction []model.NewsletterDealModel

	if err := repo.db.WithContext(ctx).
		Where("newsletter_id = ?", newsletterM.ID).
		Order("position ASC").
		Find(&junction).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load newsletter deal rows")
	}

	newsletter, err := toNewsletterDomain(newsletterM)
	if err != nil {
		return nil, err
	}

	if len(junction) == 0 {
		return newsletter, nil
	}

	dealIDs := make([]string, 0, len(junction))
	for _, row := range junction {
		dealIDs = append(dealIDs, row.DealID)
	}

	var dealModels []*model.DealModel
	if err := repo.db.WithContext(ctx).
		Preload("Store").
		Where("id IN ?", dealIDs).
		Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load newsletter deals")
	}

	byID := make(map[string]*model.DealModel, len(dealModels))
	for _, dealM := range dealModels {
		byID[dealM.ID] = dealM
	}

	// Preserve display order; deals removed by store cascade drop out.
	newsletter.Deals = make([]*entity.Deal, 0, len(junction))
	for _, row := range junction {
		if dealM, ok := byID[row.DealID]; ok {
			newsletter.Deals = append(newsletter.Deals, toDealDomain(dealM))
		}
	}

	return newsletter, nil
}

// --- Mapper Functions ---

// toNewsletterDomain converts a GORM NewsletterModel to a domain Newsletter
// entity (without deals; see hydrate).
func toNewsletterDomain(data *model.NewsletterModel) (*entity.Newsletter, error) {
	if data == nil {
		return nil, nil
	}

	id, err := uuid.Parse(data.PublicID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid newsletter public ID")
	}

	var stores []string
	if data.StoresIncluded != "" {
		if err := json.Unmarshal([]byte(data.StoresIncluded), &stores); err != nil {
			return nil, errors.Wrap(err, "invalid stores_included payload")
		}
	}

	var recipes []entity.RecipeSuggestion
	if data.Recipes != "" {
		if err := json.Unmarshal([]byte(data.Recipes), &recipes); err != nil {
			return nil, errors.Wrap(err, "invalid recipes payload")
		}
	}

	return &entity.Newsletter{
		ID:                    id,
		Sequence:              data.ID,
		GeneratedAt:           data.GeneratedAt,
		Frequency:             entity.Frequency(data.Frequency),
		Greeting:              data.Greeting,
		Closing:               data.Closing,
		Commentary:            data.Commentary,
		StoresIncluded:        stores,
		Deals:                 []*entity.Deal{},
		TotalDealsCount:       data.TotalDealsCount,
		TotalPotentialSavings: data.TotalPotentialSavings,
		Recipes:               recipes,
	}, nil
}

// fromNewsletterDomain converts a domain Newsletter entity to a GORM
// NewsletterModel (junction rows are handled separately).
func fromNewsletterDomain(data *entity.Newsletter) (*model.NewsletterModel, error) {
	if data == nil {
		return nil, nil
	}

	stores, err := json.Marshal(data.StoresIncluded)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode stores_included")
	}

	var recipes []byte
	if len(data.Recipes) > 0 {
		recipes, err = json.Marshal(data.Recipes)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode recipes")
		}
	}

	return &model.NewsletterModel{
		PublicID:              data.ID.String(),
		GeneratedAt:           data.GeneratedAt,
		Frequency:             string(data.Frequency),
		Greeting:              data.Greeting,
		Closing:               data.Closing,
		Commentary:            data.Commentary,
		StoresIncluded:        string(stores),
		Recipes:               string(recipes),
		TotalDealsCount:       data.TotalDealsCount,
		TotalPotentialSavings: data.TotalPotentialSavings,
	}, nil
}
