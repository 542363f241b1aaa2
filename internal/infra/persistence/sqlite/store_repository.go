package sqlite

import (
	"context"

	"dealdigest/internal/domain/entity"
	"dealdigest/internal/domain/repository"
	"dealdigest/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// Create persists a store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		return errors.Wrap(err, "failed to create store")
	}

	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindByID retrieves a store by its slug identifier.
func (repo *storeRepository) FindByID(ctx context.Context, id string) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// FindAll retrieves stores ordered by name.
func (repo *storeRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Store, error) {
	query := repo.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var storeModels []*model.StoreModel
	if err := query.Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// Count returns the number of stored stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// Delete removes a store; its deals are removed by foreign-key cascade.
func (repo *storeRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoreModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:             data.ID,
		Name:           data.Name,
		Chain:          data.Chain,
		Address:        data.Address,
		City:           data.City,
		Region:         entity.Region(data.Region),
		Phone:          data.Phone,
		Website:        data.Website,
		LoyaltyProgram: data.LoyaltyProgram,
		Type:           entity.StoreType(data.Type),
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:             data.ID,
		Name:           data.Name,
		Chain:          data.Chain,
		Address:        data.Address,
		City:           data.City,
		Region:         string(data.Region),
		Phone:          data.Phone,
		Website:        data.Website,
		LoyaltyProgram: data.LoyaltyProgram,
		Type:           string(data.Type),
		IsActive:       data.IsActive,
	}
}
