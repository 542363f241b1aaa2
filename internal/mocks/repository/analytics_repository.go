package repository

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAnalyticsRepository is a mock implementation of repository.AnalyticsRepository.
type MockAnalyticsRepository struct {
	mock.Mock
}

// NewMockAnalyticsRepository creates a mock whose expectations are asserted
// when the test finishes.
func NewMockAnalyticsRepository(t *testing.T) *MockAnalyticsRepository {
	m := &MockAnalyticsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAnalyticsRepository) Record(ctx context.Context, event *entity.AnalyticsEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}
