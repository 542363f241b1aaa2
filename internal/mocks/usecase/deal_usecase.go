package usecase

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"
	appusecase "dealdigest/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockDealUsecase is a mock implementation of usecase.DealUsecase.
type MockDealUsecase struct {
	mock.Mock
}

// NewMockDealUsecase creates a mock whose expectations are asserted when the
// test finishes.
func NewMockDealUsecase(t *testing.T) *MockDealUsecase {
	m := &MockDealUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDealUsecase) List(ctx context.Context, opts appusecase.DealListOptions) ([]*entity.Deal, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Deal), args.Error(1)
}

func (m *MockDealUsecase) Create(ctx context.Context, input appusecase.CreateDealInput) (*entity.Deal, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Deal), args.Error(1)
}

func (m *MockDealUsecase) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
