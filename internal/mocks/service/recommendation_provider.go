// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockRecommendationProvider is a mock implementation of service.RecommendationProvider.
type MockRecommendationProvider struct {
	mock.Mock
}

// NewMockRecommendationProvider creates a mock whose expectations are
// asserted when the test finishes.
func NewMockRecommendationProvider(t *testing.T) *MockRecommendationProvider {
	m := &MockRecommendationProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRecommendationProvider) RecipeSuggestions(ctx context.Context, deals []*entity.Deal, max int) ([]entity.RecipeSuggestion, error) {
	args := m.Called(ctx, deals, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.RecipeSuggestion), args.Error(1)
}

func (m *MockRecommendationProvider) Commentary(ctx context.Context, frequency entity.Frequency, deals []*entity.Deal) (string, error) {
	args := m.Called(ctx, frequency, deals)

	return args.String(0), args.Error(1)
}
