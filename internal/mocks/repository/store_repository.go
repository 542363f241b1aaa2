package repository

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockStoreRepository is a mock implementation of repository.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

// NewMockStoreRepository creates a mock whose expectations are asserted when
// the test finishes.
func NewMockStoreRepository(t *testing.T) *MockStoreRepository {
	m := &MockStoreRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	args := m.Called(ctx, store)

	return args.Error(0)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id string) (*entity.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Store, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
