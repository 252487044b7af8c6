package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

func goldBalance(total string) *domain.MetalBalance {
	return &domain.MetalBalance{
		ID:         uuid.New(),
		MetalType:  domain.MetalTypeGold,
		TotalGrams: decimal.RequireFromString(total),
	}
}

func TestAddGrams_InsertsPositiveDelta(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMetalRepository)
	service := NewLedgerService(mockRepo)

	mockRepo.On("ApplyDelta", ctx, mock.MatchedBy(func(tx *domain.MetalTransaction) bool {
		return tx.MetalType == domain.MetalTypeGold &&
			tx.DeltaGrams.Equal(decimal.RequireFromString("5.5")) &&
			!tx.At.IsZero()
	})).Return(nil)

	err := service.AddGrams(ctx, MutateInput{
		Metal: domain.MetalGold,
		Grams: decimal.RequireFromString("5.5"),
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAddGrams_RejectsInvalidQuantities(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		grams string
	}{
		{name: "zero", grams: "0"},
		{name: "negative", grams: "-1"},
		{name: "four decimals", grams: "1.1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMetalRepository)
			service := NewLedgerService(mockRepo)

			err := service.AddGrams(ctx, MutateInput{
				Metal: domain.MetalGold,
				Grams: decimal.RequireFromString(tt.grams),
			})

			assert.ErrorIs(t, err, domain.ErrValidation)
			mockRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything)
		})
	}
}

func TestSellGrams_InsertsNegativeDelta(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMetalRepository)
	service := NewLedgerService(mockRepo)

	mockRepo.On("GetBalance", ctx, domain.MetalTypeGold).Return(goldBalance("10"), nil)
	mockRepo.On("ApplyDelta", ctx, mock.MatchedBy(func(tx *domain.MetalTransaction) bool {
		return tx.DeltaGrams.Equal(decimal.RequireFromString("-3"))
	})).Return(nil)

	err := service.SellGrams(ctx, MutateInput{
		Metal: domain.MetalGold,
		Grams: decimal.RequireFromString("3"),
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSellGrams_RejectsInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMetalRepository)
	service := NewLedgerService(mockRepo)

	mockRepo.On("GetBalance", ctx, domain.MetalTypeGold).Return(goldBalance("2"), nil)

	err := service.SellGrams(ctx, MutateInput{
		Metal: domain.MetalGold,
		Grams: decimal.RequireFromString("2.001"),
	})

	assert.ErrorIs(t, err, domain.ErrStateConflict)
	mockRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything)
}

func TestSellGrams_AllowsSellingExactBalance(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMetalRepository)
	service := NewLedgerService(mockRepo)

	mockRepo.On("GetBalance", ctx, domain.MetalTypeGold).Return(goldBalance("2"), nil)
	mockRepo.On("ApplyDelta", ctx, mock.Anything).Return(nil)

	err := service.SellGrams(ctx, MutateInput{
		Metal: domain.MetalGold,
		Grams: decimal.RequireFromString("2"),
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestGetDashboard_AssemblesBalanceAndRecent(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMetalRepository)
	service := NewLedgerService(mockRepo)

	recent := []*domain.MetalTransaction{
		{ID: uuid.New(), MetalType: domain.MetalTypeGold, DeltaGrams: decimal.RequireFromString("5.5")},
	}
	mockRepo.On("GetBalance", ctx, domain.MetalTypeGold).Return(goldBalance("5.5"), nil)
	mockRepo.On("ListRecent", ctx, domain.MetalTypeGold, (*time.Time)(nil), (*time.Time)(nil), 200).Return(recent, nil)

	dashboard, err := service.GetDashboard(ctx, domain.MetalGold, nil, nil)
	assert.NoError(t, err)
	assert.True(t, dashboard.TotalGrams.Equal(decimal.RequireFromString("5.5")))
	assert.Len(t, dashboard.Recent, 1)

	// A read has no side effects: a second call returns the same result.
	again, err := service.GetDashboard(ctx, domain.MetalGold, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, dashboard, again)

	mockRepo.AssertExpectations(t)
}

func TestDeleteTransaction_DelegatesWithMetalCode(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMetalRepository)
	service := NewLedgerService(mockRepo)

	id := uuid.New()
	mockRepo.On("DeleteTransaction", ctx, id, domain.MetalTypeSilver).Return(nil)

	err := service.DeleteTransaction(ctx, id, domain.MetalSilver)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
