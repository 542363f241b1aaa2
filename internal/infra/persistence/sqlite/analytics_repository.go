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

// analyticsRepository implements the repository.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// Record persists an append-only analytics event.
func (repo *analyticsRepository) Record(ctx context.Context, event *entity.AnalyticsEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	eventM := &model.AnalyticsModel{
		ID:        event.ID.String(),
		EventType: event.EventType,
		Payload:   event.Payload,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return errors.Wrap(err, "failed to record analytics event")
	}

	event.CreatedAt = eventM.CreatedAt

	return nil
}
