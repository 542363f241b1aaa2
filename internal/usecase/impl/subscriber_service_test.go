package impl

import (
	"context"
	"testing"
	"time"

	"dealdigest/internal/domain/entity"
	domainerrors "dealdigest/internal/domain/errors"
	"dealdigest/internal/domain/repository"
	mockrepo "dealdigest/internal/mocks/repository"
	mockservice "dealdigest/internal/mocks/service"
	"dealdigest/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSubscriberService(
	subscriberRepo *mockrepo.MockSubscriberRepository,
	analyticsRepo *mockrepo.MockAnalyticsRepository,
	qrcodeService *mockservice.MockQRCodeService,
) usecase.SubscriberUsecase {
	return &subscriberService{
		subscriberRepo: subscriberRepo,
		analyticsRepo:  analyticsRepo,
		qrcodeService:  qrcodeService,
		logger:         testLogger(),
	}
}

func TestSubscriberService_Subscribe(t *testing.T) {
	subscriberRepo := mockrepo.NewMockSubscriberRepository(t)
	analyticsRepo := mockrepo.NewMockAnalyticsRepository(t)
	qrcodeService := mockservice.NewMockQRCodeService(t)

	subscriberRepo.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(nil, repository.ErrSubscriberNotFound)
	subscriberRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Subscriber) bool {
		return s.Email == "jane@example.com" && s.IsSubscribed && s.UnsubscribeToken != ""
	})).Return(nil)
	analyticsRepo.On("Record", mock.Anything, mock.Anything).Return(nil)

	svc := newTestSubscriberService(subscriberRepo, analyticsRepo, qrcodeService)

	subscriber, err := svc.Subscribe(context.Background(), usecase.SubscribeInput{
		Email:  "  Jane@Example.com ", // normalized before lookup
		Name:   "Jane",
		Region: "avalon",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", subscriber.Email)
	assert.Equal(t, entity.RegionAvalon, subscriber.Region)
	assert.True(t, subscriber.IsSubscribed)
}

func TestSubscriberService_Subscribe_InvalidInput(t *testing.T) {
	subscriberRepo := mockrepo.NewMockSubscriberRepository(t)
	analyticsRepo := mockrepo.NewMockAnalyticsRepository(t)
	qrcodeService := mockservice.NewMockQRCodeService(t)

	svc := newTestSubscriberService(subscriberRepo, analyticsRepo, qrcodeService)

	_, err := svc.Subscribe(context.Background(), usecase.SubscribeInput{Email: "not-an-email"})
	assert.Error(t, err)

	_, err = svc.Subscribe(context.Background(), usecase.SubscribeInput{
		Email:  "jane@example.com",
		Region: "mars",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRegion)
}

func TestSubscriberService_Subscribe_AlreadySubscribed(t *testing.T) {
	subscriberRepo := mockrepo.NewMockSubscriberRepository(t)
	analyticsRepo := mockrepo.NewMockAnalyticsRepository(t)
	qrcodeService := mockservice.NewMockQRCodeService(t)

	subscriberRepo.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(&entity.Subscriber{Email: "jane@example.com", IsSubscribed: true}, nil)

	svc := newTestSubscriberService(subscriberRepo, analyticsRepo, qrcodeService)

	_, err := svc.Subscribe(context.Background(), usecase.SubscribeInput{Email: "jane@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrSubscriberExists)
}

func TestSubscriberService_Subscribe_ReactivatesReturningEmail(t *testing.T) {
	subscriberRepo := mockrepo.NewMockSubscriberRepository(t)
	analyticsRepo := mockrepo.NewMockAnalyticsRepository(t)
	qrcodeService := mockservice.NewMockQRCodeService(t)

	left := time.Now().Add(-time.Hour)
	subscriberRepo.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(&entity.Subscriber{
			ID:             uuid.New(),
			Email:          "jane@example.com",
			IsSubscribed:   false,
			UnsubscribedAt: &left,
		}, nil)
	subscriberRepo.On("Reactivate", mock.Anything, "jane@example.com").Return(nil)
	analyticsRepo.On("Record", mock.Anything, mock.Anything).Return(nil)

	svc := newTestSubscriberService(subscriberRepo, analyticsRepo, qrcodeService)

	subscriber, err := svc.Subscribe(context.Background(), usecase.SubscribeInput{Email: "jane@example.com"})
	require.NoError(t, err)

	assert.True(t, subscriber.IsSubscribed)
	assert.Nil(t, subscriber.UnsubscribedAt)
}

func TestSubscriberService_Unsubscribe_Idempotent(t *testing.T) {
	subscriberRepo := mockrepo.NewMockSubscriberRepository(t)
	analyticsRepo := mockrepo.NewMockAnalyticsRepository(t)
	qrcodeService := mockservice.NewMockQRCodeService(t)

	subscriberRepo.On("FindByToken", mock.Anything, "tok").
		Return(&entity.Subscriber{ID: uuid.New(), IsSubscribed: false}, nil)

	svc := newTestSubscriberService(subscriberRepo, analyticsRepo, qrcodeService)

	// Already unsubscribed: succeeds without an Unsubscribe write.
	assert.NoError(t, svc.Unsubscribe(context.Background(), "tok"))
}

func TestSubscriberService_Unsubscribe_UnknownToken(t *testing.T) {
	subscriberRepo := mockrepo.NewMockSubscriberRepository(t)
	analyticsRepo := mockrepo.NewMockAnalyticsRepository(t)
	qrcodeService := mockservice.NewMockQRCodeService(t)

	subscriberRepo.On("FindByToken", mock.Anything, "nope").
		Return(nil, repository.ErrSubscriberNotFound)

	svc := newTestSubscriberService(subscriberRepo, analyticsRepo, qrcodeService)

	err := svc.Unsubscribe(context.Background(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrSubscriberNotFound)
}

func TestSubscriberService_SubscribeQR(t *testing.T) {
	subscriberRepo := mockrepo.NewMockSubscriberRepository(t)
	analyticsRepo := mockrepo.NewMockAnalyticsRepository(t)
	qrcodeService := mockservice.NewMockQRCodeService(t)

	qrcodeService.On("GenerateSubscribeQR").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	svc := newTestSubscriberService(subscriberRepo, analyticsRepo, qrcodeService)

	png, err := svc.SubscribeQR(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
