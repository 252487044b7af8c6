package seeder

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// MockMetalRepository is a mock implementation of MetalRepository for testing
type MockMetalRepository struct {
	mock.Mock
}

func (m *MockMetalRepository) GetBalance(ctx context.Context, metalType int) (*domain.MetalBalance, error) {
	args := m.Called(ctx, metalType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalBalance), args.Error(1)
}

func (m *MockMetalRepository) CreateBalance(ctx context.Context, balance *domain.MetalBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockMetalRepository) ApplyDelta(ctx context.Context, tx *domain.MetalTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMetalRepository) DeleteTransaction(ctx context.Context, id uuid.UUID, metalType int) error {
	args := m.Called(ctx, id, metalType)
	return args.Error(0)
}

func (m *MockMetalRepository) ListRecent(ctx context.Context, metalType int, from, to *time.Time, limit int) ([]*domain.MetalTransaction, error) {
	args := m.Called(ctx, metalType, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MetalTransaction), args.Error(1)
}

func TestSeed_CreatesMissingBalances(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMetalRepository)
	seeder := NewBalanceSeeder(mockRepo)

	mockRepo.On("GetBalance", ctx, domain.MetalTypeGold).Return(nil, domain.ErrNotFound)
	mockRepo.On("GetBalance", ctx, domain.MetalTypeSilver).Return(nil, domain.ErrNotFound)
	mockRepo.On("CreateBalance", ctx, mock.MatchedBy(func(b *domain.MetalBalance) bool {
		return b.MetalType == domain.MetalTypeGold && b.TotalGrams.IsZero() && b.ID == BalanceGoldID
	})).Return(nil)
	mockRepo.On("CreateBalance", ctx, mock.MatchedBy(func(b *domain.MetalBalance) bool {
		return b.MetalType == domain.MetalTypeSilver && b.TotalGrams.IsZero() && b.ID == BalanceSilverID
	})).Return(nil)

	assert.NoError(t, seeder.Seed(ctx))
	mockRepo.AssertExpectations(t)
}

func TestSeed_LeavesExistingBalancesAlone(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMetalRepository)
	seeder := NewBalanceSeeder(mockRepo)

	mockRepo.On("GetBalance", ctx, mock.Anything).Return(&domain.MetalBalance{}, nil)

	assert.NoError(t, seeder.Seed(ctx))
	mockRepo.AssertNotCalled(t, "CreateBalance", mock.Anything, mock.Anything)
}
