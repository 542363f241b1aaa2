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

// subscriberRepository implements the repository.SubscriberRepository interface.
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository is the constructor for subscriberRepository.
func NewSubscriberRepository(db *gorm.DB) repository.SubscriberRepository {
	return &subscriberRepository{
		db: db,
	}
}

// Create persists a new subscriber.
func (repo *subscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	if subscriber.ID == uuid.Nil {
		subscriber.ID = uuid.New()
	}

	subscriberM := fromSubscriberDomain(subscriber)

	if err := repo.db.WithContext(ctx).Create(subscriberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscriber
		}

		return errors.Wrap(err, "failed to create subscriber")
	}

	return nil
}

// FindByEmail retrieves a subscriber by email.
func (repo *subscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	var subscriberM model.SubscriberModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&subscriberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriberNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscriber by email")
	}

	return toSubscriberDomain(&subscriberM), nil
}

// FindByToken retrieves a subscriber by unsubscribe token.
func (repo *subscriberRepository) FindByToken(ctx context.Context, token string) (*entity.Subscriber, error) {
	var subscriberM model.SubscriberModel

	if err := repo.db.WithContext(ctx).
		Where("unsubscribe_token = ?", token).
		First(&subscriberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriberNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscriber by token")
	}

	return toSubscriberDomain(&subscriberM), nil
}

// Unsubscribe marks the subscriber as unsubscribed with a timestamp.
func (repo *subscriberRepository) Unsubscribe(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriberModel{}).
		Where("unsubscribe_token = ?", token).
		Updates(map[string]any{
			"is_subscribed":   false,
			"unsubscribed_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to unsubscribe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriberNotFound
	}

	return nil
}

// Reactivate re-subscribes a previously unsubscribed email.
func (repo *subscriberRepository) Reactivate(ctx context.Context, email string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriberModel{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"is_subscribed":   true,
			"unsubscribed_at": nil,
			"subscribed_at":   time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reactivate subscriber")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriberNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriberDomain converts a GORM SubscriberModel to a domain Subscriber entity.
func toSubscriberDomain(data *model.SubscriberModel) *entity.Subscriber {
	if data == nil {
		return nil
	}

	id, err := uuid.Parse(data.ID)
	if err != nil {
		id = uuid.Nil
	}

	return &entity.Subscriber{
		ID:               id,
		Email:            data.Email,
		Name:             data.Name,
		Region:           entity.Region(data.Region),
		IsVerified:       data.IsVerified,
		IsSubscribed:     data.IsSubscribed,
		VerifiedAt:       data.VerifiedAt,
		SubscribedAt:     data.SubscribedAt,
		UnsubscribedAt:   data.UnsubscribedAt,
		UnsubscribeToken: data.UnsubscribeToken,
	}
}

// fromSubscriberDomain converts a domain Subscriber entity to a GORM SubscriberModel.
func fromSubscriberDomain(data *entity.Subscriber) *model.SubscriberModel {
	if data == nil {
		return nil
	}

	return &model.SubscriberModel{
		ID:               data.ID.String(),
		Email:            data.Email,
		Name:             data.Name,
		Region:           string(data.Region),
		IsVerified:       data.IsVerified,
		IsSubscribed:     data.IsSubscribed,
		VerifiedAt:       data.VerifiedAt,
		SubscribedAt:     data.SubscribedAt,
		UnsubscribedAt:   data.UnsubscribedAt,
		UnsubscribeToken: data.UnsubscribeToken,
	}
}
