package repository

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTipRepository is a mock implementation of repository.TipRepository.
type MockTipRepository struct {
	mock.Mock
}

// NewMockTipRepository creates a mock whose expectations are asserted when
// the test finishes.
func NewMockTipRepository(t *testing.T) *MockTipRepository {
	m := &MockTipRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTipRepository) Create(ctx context.Context, tip *entity.Tip) error {
	args := m.Called(ctx, tip)

	return args.Error(0)
}

func (m *MockTipRepository) FindAll(ctx context.Context, category entity.DealCategory) ([]*entity.Tip, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Tip), args.Error(1)
}
