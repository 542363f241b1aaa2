package repository

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSubscriberRepository is a mock implementation of repository.SubscriberRepository.
type MockSubscriberRepository struct {
	mock.Mock
}

// NewMockSubscriberRepository creates a mock whose expectations are asserted
// when the test finishes.
func NewMockSubscriberRepository(t *testing.T) *MockSubscriberRepository {
	m := &MockSubscriberRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSubscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	args := m.Called(ctx, subscriber)

	return args.Error(0)
}

func (m *MockSubscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) FindByToken(ctx context.Context, token string) (*entity.Subscriber, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) Unsubscribe(ctx context.Context, token string) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *MockSubscriberRepository) Reactivate(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}
