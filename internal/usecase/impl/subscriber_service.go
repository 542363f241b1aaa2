package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dealdigest/internal/domain/entity"
	domainerrors "dealdigest/internal/domain/errors"
	"dealdigest/internal/domain/repository"
	"dealdigest/internal/domain/service"
	"dealdigest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriberService struct {
	subscriberRepo repository.SubscriberRepository
	analyticsRepo  repository.AnalyticsRepository
	qrcodeService  service.QRCodeService
	logger         *slog.Logger
}

// SubscriberServiceParams holds dependencies for the subscriber service, injected by Fx.
type SubscriberServiceParams struct {
	fx.In

	SubscriberRepo repository.SubscriberRepository
	AnalyticsRepo  repository.AnalyticsRepository
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewSubscriberService creates a new subscriber service instance.
func NewSubscriberService(params SubscriberServiceParams) usecase.SubscriberUsecase {
	return &subscriberService{
		subscriberRepo: params.SubscriberRepo,
		analyticsRepo:  params.AnalyticsRepo,
		qrcodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

func (s *subscriberService) Subscribe(ctx context.Context, input usecase.SubscribeInput) (*entity.Subscriber, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}

	region := entity.RegionAvalon
	if input.Region != "" {
		region = entity.Region(input.Region)
		if !region.Valid() {
			return nil, domainerrors.ErrInvalidRegion
		}
	}

	existing, err := s.subscriberRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrSubscriberNotFound) {
		return nil, errors.Wrap(err, "failed to look up subscriber")
	}
	if existing != nil {
		if existing.IsSubscribed {
			return nil, domainerrors.ErrSubscriberExists
		}

		// A returning subscriber keeps the original row and token.
		if err := s.subscriberRepo.Reactivate(ctx, email); err != nil {
			return nil, errors.Wrap(err, "failed to reactivate subscriber")
		}
		existing.IsSubscribed = true
		existing.UnsubscribedAt = nil

		s.recordEvent(ctx, entity.EventSubscriberJoined, fmt.Sprintf(`{"id":%q,"rejoined":true}`, existing.ID))

		return existing, nil
	}

	subscriber := &entity.Subscriber{
		ID:               uuid.New(),
		Email:            email,
		Name:             strings.TrimSpace(input.Name),
		Region:           region,
		IsSubscribed:     true,
		SubscribedAt:     time.Now().UTC(),
		UnsubscribeToken: uuid.NewString(),
	}

	if err := s.subscriberRepo.Create(ctx, subscriber); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubscriber) {
			return nil, domainerrors.ErrSubscriberExists
		}

		return nil, errors.Wrap(err, "failed to create subscriber")
	}

	s.recordEvent(ctx, entity.EventSubscriberJoined, fmt.Sprintf(`{"id":%q}`, subscriber.ID))

	return subscriber, nil
}

func (s *subscriberService) Unsubscribe(ctx context.Context, token string) error {
	subscriber, err := s.subscriberRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return domainerrors.ErrSubscriberNotFound
		}

		return errors.Wrap(err, "failed to look up subscriber")
	}

	// Unsubscribing twice is a no-op.
	if !subscriber.IsSubscribed {
		return nil
	}

	if err := s.subscriberRepo.Unsubscribe(ctx, token); err != nil {
		return errors.Wrap(err, "failed to unsubscribe")
	}

	s.recordEvent(ctx, entity.EventSubscriberLeft, fmt.Sprintf(`{"id":%q}`, subscriber.ID))

	return nil
}

func (s *subscriberService) SubscribeQR(_ context.Context) ([]byte, error) {
	png, err := s.qrcodeService.GenerateSubscribeQR()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate subscribe QR code")
	}

	return png, nil
}

func (s *subscriberService) recordEvent(ctx context.Context, eventType, payload string) {
	event := &entity.AnalyticsEvent{EventType: eventType, Payload: payload}
	if err := s.analyticsRepo.Record(ctx, event); err != nil {
		s.logger.Warn("Failed to record analytics event",
			slog.String("event", eventType),
			slog.String("error", err.Error()),
		)
	}
}
