package sqlite

import (
	"context"
	"time"

	"dealdigest/internal/domain/entity"
	"dealdigest/internal/domain/repository"
	"dealdigest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dealRepository implements the repository.DealRepository interface.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{
		db: db,
	}
}

// Create persists a new deal.
func (repo *dealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	if deal.ID == uuid.Nil {
		deal.ID = uuid.New()
	}

	dealM := fromDealDomain(deal)

	if err := repo.db.WithContext(ctx).Create(dealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreReferenceInvalid
		}

		return errors.Wrap(err, "failed to create deal")
	}

	deal.CreatedAt = dealM.CreatedAt
	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

// FindByID retrieves a deal by its unique ID.
func (repo *dealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var dealM model.DealModel

	if err := repo.db.WithContext(ctx).
		Preload("Store").
		Where("id = ?", id.String()).
		First(&dealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal by ID")
	}

	return toDealDomain(&dealM), nil
}

// FindCandidates retrieves active deals eligible for a digest: validity
// window containing now (or opening within the lookahead), restricted to the
// requested stores and categories when given. Only active stores contribute.
func (repo *dealRepository) FindCandidates(ctx context.Context, filter repository.CandidateFilter) ([]*entity.Deal, error) {
	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}

	query := repo.db.WithContext(ctx).
		Preload("Store").
		Joins("JOIN stores ON stores.id = deals.store_id AND stores.is_active = ?", true).
		Where("deals.is_active = ?", true).
		Where("deals.valid_until >= ?", now).
		Where("deals.valid_from <= ?", now.Add(filter.Lookahead))

	if len(filter.StoreIDs) > 0 {
		query = query.Where("deals.store_id IN ?", filter.StoreIDs)
	}
	if len(filter.Categories) > 0 {
		categories := make([]string, 0, len(filter.Categories))
		for _, category := range filter.Categories {
			categories = append(categories, string(category))
		}
		query = query.Where("deals.category IN ?", categories)
	}

	var dealModels []*model.DealModel
	if err := query.Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find candidate deals")
	}

	deals := make([]*entity.Deal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals, nil
}

// List retrieves deals for the reference API.
func (repo *dealRepository) List(ctx context.Context, filter repository.DealFilter) ([]*entity.Deal, error) {
	query := repo.db.WithContext(ctx).
		Preload("Store").
		Order("valid_until ASC, product_name ASC")

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.StoreID != "" {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}

	var dealModels []*model.DealModel
	if err := query.Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	deals := make([]*entity.Deal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals, nil
}

// Deactivate logically deactivates a deal instead of deleting it.
func (repo *dealRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ?", id.String()).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate deal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDealDomain converts a GORM DealModel to a domain Deal entity.
func toDealDomain(data *model.DealModel) *entity.Deal {
	if data == nil {
		return nil
	}

	id, err := uuid.Parse(data.ID)
	if err != nil {
		id = uuid.Nil
	}

	deal := &entity.Deal{
		ID:            id,
		StoreID:       data.StoreID,
		ProductName:   data.ProductName,
		Category:      entity.DealCategory(data.Category),
		RegularPrice:  data.RegularPrice,
		SalePrice:     data.SalePrice,
		Unit:          data.Unit,
		LoyaltyPoints: data.LoyaltyPoints,
		LoyaltyValue:  data.LoyaltyValue,
		Description:   data.Description,
		ValidFrom:     data.ValidFrom,
		ValidUntil:    data.ValidUntil,
		Featured:      data.Featured,
		Source:        data.Source,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Store != nil {
		deal.StoreName = data.Store.Name
	}

	return deal
}

// fromDealDomain converts a domain Deal entity to a GORM DealModel.
func fromDealDomain(data *entity.Deal) *model.DealModel {
	if data == nil {
		return nil
	}

	return &model.DealModel{
		ID:            data.ID.String(),
		StoreID:       data.StoreID,
		ProductName:   data.ProductName,
		Category:      string(data.Category),
		RegularPrice:  data.RegularPrice,
		SalePrice:     data.SalePrice,
		Unit:          data.Unit,
		LoyaltyPoints: data.LoyaltyPoints,
		LoyaltyValue:  data.LoyaltyValue,
		Description:   data.Description,
		ValidFrom:     data.ValidFrom,
		ValidUntil:    data.ValidUntil,
		Featured:      data.Featured,
		Source:        data.Source,
		IsActive:      data.IsActive,
	}
}
