// Package expense implements the fixed-expense catalog: plain CRUD with
// light validation and no cross-entity invariant.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// ExpenseService handles fixed-expense operations
type ExpenseService struct {
	ExpenseRepo domain.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService instance
func NewExpenseService(expenseRepo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{ExpenseRepo: expenseRepo}
}

// AddFixedExpense validates and inserts a new expense, returning its id.
func (s *ExpenseService) AddFixedExpense(ctx context.Context, name string, price decimal.Decimal) (uuid.UUID, error) {
	expense := &domain.FixedExpense{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Price:     price,
		CreatedAt: time.Now().UTC(),
	}

	if err := expense.Validate(); err != nil {
		return uuid.Nil, err
	}

	if err := s.ExpenseRepo.Insert(ctx, expense); err != nil {
		return uuid.Nil, err
	}

	return expense.ID, nil
}

// UpdateFixedExpense rewrites an expense's name and price. Targeting a
// missing id fails with ErrNotFound.
func (s *ExpenseService) UpdateFixedExpense(ctx context.Context, id uuid.UUID, name string, price decimal.Decimal) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price must be >= 0", domain.ErrValidation)
	}

	return s.ExpenseRepo.Update(ctx, id, trimmed, price)
}

// DeleteFixedExpense removes an expense. Targeting a missing id fails with
// ErrNotFound.
func (s *ExpenseService) DeleteFixedExpense(ctx context.Context, id uuid.UUID) error {
	return s.ExpenseRepo.Delete(ctx, id)
}

// ListFixedExpenses returns all expenses ordered by name case-insensitively.
func (s *ExpenseService) ListFixedExpenses(ctx context.Context) ([]*domain.FixedExpense, error) {
	return s.ExpenseRepo.List(ctx)
}
