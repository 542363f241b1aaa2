// Package usecase provides testify mocks for the use case interfaces.
package usecase

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"
	appusecase "dealdigest/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockNewsletterUsecase is a mock implementation of usecase.NewsletterUsecase.
type MockNewsletterUsecase struct {
	mock.Mock
}

// NewMockNewsletterUsecase creates a mock whose expectations are asserted
// when the test finishes.
func NewMockNewsletterUsecase(t *testing.T) *MockNewsletterUsecase {
	m := &MockNewsletterUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNewsletterUsecase) Generate(ctx context.Context, opts appusecase.GenerateOptions) (*entity.Newsletter, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterUsecase) GetByID(ctx context.Context, id string) (*entity.Newsletter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterUsecase) Latest(ctx context.Context) (*entity.Newsletter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterUsecase) List(ctx context.Context, limit int) ([]*entity.Newsletter, int64, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Newsletter), args.Get(1).(int64), args.Error(2)
}

func (m *MockNewsletterUsecase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockNewsletterUsecase) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
