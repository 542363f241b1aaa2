package usecase

import (
	"context"
	"testing"

	"dealdigest/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTipUsecase is a mock implementation of usecase.TipUsecase.
type MockTipUsecase struct {
	mock.Mock
}

// NewMockTipUsecase creates a mock whose expectations are asserted when the
// test finishes.
func NewMockTipUsecase(t *testing.T) *MockTipUsecase {
	m := &MockTipUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTipUsecase) List(ctx context.Context, category string) ([]*entity.Tip, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Tip), args.Error(1)
}
