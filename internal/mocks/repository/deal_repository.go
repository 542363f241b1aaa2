package repository

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"
	domainrepo "dealdigest/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDealRepository is a mock implementation of repository.DealRepository.
type MockDealRepository struct {
	mock.Mock
}

// NewMockDealRepository creates a mock whose expectations are asserted when
// the test finishes.
func NewMockDealRepository(t *testing.T) *MockDealRepository {
	m := &MockDealRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	args := m.Called(ctx, deal)

	return args.Error(0)
}

func (m *MockDealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Deal), args.Error(1)
}

func (m *MockDealRepository) FindCandidates(ctx context.Context, filter domainrepo.CandidateFilter) ([]*entity.Deal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Deal), args.Error(1)
}

func (m *MockDealRepository) List(ctx context.Context, filter domainrepo.DealFilter) ([]*entity.Deal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Deal), args.Error(1)
}

func (m *MockDealRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
