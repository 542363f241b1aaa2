package usecase

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockStoreUsecase is a mock implementation of usecase.StoreUsecase.
type MockStoreUsecase struct {
	mock.Mock
}

// NewMockStoreUsecase creates a mock whose expectations are asserted when the
// test finishes.
func NewMockStoreUsecase(t *testing.T) *MockStoreUsecase {
	m := &MockStoreUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStoreUsecase) List(ctx context.Context, activeOnly bool) ([]*entity.Store, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Store), args.Error(1)
}

func (m *MockStoreUsecase) Get(ctx context.Context, id string) (*entity.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreUsecase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
