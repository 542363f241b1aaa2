// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNewsletterRepository is a mock implementation of repository.NewsletterRepository.
type MockNewsletterRepository struct {
	mock.Mock
}

// NewMockNewsletterRepository creates a mock whose expectations are asserted
// when the test finishes.
func NewMockNewsletterRepository(t *testing.T) *MockNewsletterRepository {
	m := &MockNewsletterRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNewsletterRepository) Create(ctx context.Context, newsletter *entity.Newsletter) error {
	args := m.Called(ctx, newsletter)

	return args.Error(0)
}

func (m *MockNewsletterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Newsletter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepository) FindLatest(ctx context.Context) (*entity.Newsletter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepository) List(ctx context.Context, limit int) ([]*entity.Newsletter, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNewsletterRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockNewsletterRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
