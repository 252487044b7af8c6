package checks

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

// MockCheckRepository is a mock implementation of CheckRepository for testing
type MockCheckRepository struct {
	mock.Mock
}

func (m *MockCheckRepository) Insert(ctx context.Context, check *domain.CheckItem) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockCheckRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CheckItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckItem), args.Error(1)
}

func (m *MockCheckRepository) List(ctx context.Context, query domain.ListChecksQuery) ([]*domain.CheckItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CheckItem), args.Error(1)
}

func (m *MockCheckRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CheckStatus, depositedAt *time.Time) error {
	args := m.Called(ctx, id, status, depositedAt)
	return args.Error(0)
}

func (m *MockCheckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validInput() AddCheckInput {
	return AddCheckInput{
		Bank:      "Leumi",
		Number:    "100234",
		Payee:     "Gold Supplier Ltd",
		Amount:    decimal.NewFromInt(1500),
		IssueDate: "2025-01-02",
		DueDate:   "2025-03-01",
	}
}

func TestAddCheck_ForcesIssuedAndTrims(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCheckRepository)
	service := NewCheckService(mockRepo)

	input := validInput()
	input.Bank = "  Leumi  "
	input.Payee = " Gold Supplier Ltd "

	var inserted *domain.CheckItem
	mockRepo.On("Insert", ctx, mock.MatchedBy(func(c *domain.CheckItem) bool {
		inserted = c
		return c.Status == domain.CheckStatusIssued &&
			c.Bank == "Leumi" &&
			c.Payee == "Gold Supplier Ltd"
	})).Return(nil)
	mockRepo.On("GetByID", ctx, mock.Anything).Return(
		&domain.CheckItem{Status: domain.CheckStatusIssued, Bank: "Leumi"}, nil)

	item, err := service.AddCheck(ctx, input)
	assert.NoError(t, err)
	assert.NotNil(t, item)
	assert.NotNil(t, inserted)
	assert.Equal(t, domain.CheckStatusIssued, item.Status)
	mockRepo.AssertExpectations(t)
}

func TestAddCheck_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(in *AddCheckInput)
	}{
		{name: "blank bank", mutate: func(in *AddCheckInput) { in.Bank = "  " }},
		{name: "blank number", mutate: func(in *AddCheckInput) { in.Number = "" }},
		{name: "blank payee", mutate: func(in *AddCheckInput) { in.Payee = " " }},
		{name: "zero amount", mutate: func(in *AddCheckInput) { in.Amount = decimal.Zero }},
		{name: "negative amount", mutate: func(in *AddCheckInput) { in.Amount = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCheckRepository)
			service := NewCheckService(mockRepo)

			input := validInput()
			tt.mutate(&input)

			_, err := service.AddCheck(ctx, input)
			assert.ErrorIs(t, err, domain.ErrValidation)
			mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestListChecks_SwapsInvertedDueRange(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCheckRepository)
	service := NewCheckService(mockRepo)

	mockRepo.On("List", ctx, domain.ListChecksQuery{
		FromDue: "2025-01-01",
		ToDue:   "2025-06-30",
	}).Return([]*domain.CheckItem{}, nil)

	_, err := service.ListChecks(ctx, domain.ListChecksQuery{
		FromDue: "2025-06-30",
		ToDue:   "2025-01-01",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateStatus_DepositStampsTimestamp(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCheckRepository)
	service := NewCheckService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(
		&domain.CheckItem{ID: id, Status: domain.CheckStatusIssued}, nil)
	mockRepo.On("UpdateStatus", ctx, id, domain.CheckStatusDeposited,
		mock.MatchedBy(func(at *time.Time) bool { return at != nil && !at.IsZero() })).Return(nil)

	err := service.UpdateStatus(ctx, id, domain.CheckStatusDeposited)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateStatus_ReturnedStampsNothing(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCheckRepository)
	service := NewCheckService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(
		&domain.CheckItem{ID: id, Status: domain.CheckStatusDeposited}, nil)
	mockRepo.On("UpdateStatus", ctx, id, domain.CheckStatusReturned, (*time.Time)(nil)).Return(nil)

	err := service.UpdateStatus(ctx, id, domain.CheckStatusReturned)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateStatus_RejectsIllegalTransitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		from domain.CheckStatus
		to   domain.CheckStatus
	}{
		{name: "cancelled cannot be deposited", from: domain.CheckStatusCancelled, to: domain.CheckStatusDeposited},
		{name: "issued cannot jump to returned", from: domain.CheckStatusIssued, to: domain.CheckStatusReturned},
		{name: "deposited cannot be re-deposited", from: domain.CheckStatusDeposited, to: domain.CheckStatusDeposited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCheckRepository)
			service := NewCheckService(mockRepo)

			id := uuid.New()
			mockRepo.On("GetByID", ctx, id).Return(&domain.CheckItem{ID: id, Status: tt.from}, nil)

			err := service.UpdateStatus(ctx, id, tt.to)
			assert.ErrorIs(t, err, domain.ErrStateConflict)
			mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateStatus_MissingCheck(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCheckRepository)
	service := NewCheckService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound)

	err := service.UpdateStatus(ctx, id, domain.CheckStatusDeposited)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCheck_Delegates(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCheckRepository)
	service := NewCheckService(mockRepo)

	id := uuid.New()
	mockRepo.On("Delete", ctx, id).Return(nil)

	assert.NoError(t, service.DeleteCheck(ctx, id))
	mockRepo.AssertExpectations(t)
}
