package usecase

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"
	appusecase "dealdigest/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockSubscriberUsecase is a mock implementation of usecase.SubscriberUsecase.
type MockSubscriberUsecase struct {
	mock.Mock
}

// NewMockSubscriberUsecase creates a mock whose expectations are asserted
// when the test finishes.
func NewMockSubscriberUsecase(t *testing.T) *MockSubscriberUsecase {
	m := &MockSubscriberUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSubscriberUsecase) Subscribe(ctx context.Context, input appusecase.SubscribeInput) (*entity.Subscriber, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Subscriber), args.Error(1)
}

func (m *MockSubscriberUsecase) Unsubscribe(ctx context.Context, token string) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *MockSubscriberUsecase) SubscribeQR(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
