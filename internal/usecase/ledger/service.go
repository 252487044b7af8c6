// Package ledger implements the metal ledger engine: every mutation keeps the
// running balance and the transaction log consistent, and sales can never
// drive a balance negative.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// dashboardLimit bounds the recent-transaction window of a dashboard.
const dashboardLimit = 200

// MutateInput carries the payload of an add or sell operation.
type MutateInput struct {
	Metal domain.Metal
	Grams decimal.Decimal
	Price *decimal.Decimal
	Note  *string
}

// LedgerService handles metal balance and transaction operations
type LedgerService struct {
	MetalRepo domain.MetalRepository

	// One mutex per metal serializes the check-then-write sequence of
	// SellGrams and DeleteTransaction; the HTTP server admits concurrent
	// callers, and two overlapping sells against the same balance could
	// otherwise both pass the pre-check.
	mu map[int]*sync.Mutex
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(metalRepo domain.MetalRepository) *LedgerService {
	return &LedgerService{
		MetalRepo: metalRepo,
		mu: map[int]*sync.Mutex{
			domain.MetalTypeGold:   {},
			domain.MetalTypeSilver: {},
		},
	}
}

func (s *LedgerService) lock(metal domain.Metal) func() {
	m := s.mu[metal.TypeCode()]
	m.Lock()
	return m.Unlock
}

// GetDashboard returns the current total for a metal plus up to 200 recent
// transactions ordered newest first, optionally restricted to [from, to).
// No side effects.
func (s *LedgerService) GetDashboard(ctx context.Context, metal domain.Metal, from, to *time.Time) (*domain.MetalDashboard, error) {
	balance, err := s.MetalRepo.GetBalance(ctx, metal.TypeCode())
	if err != nil {
		return nil, err
	}

	recent, err := s.MetalRepo.ListRecent(ctx, metal.TypeCode(), from, to, dashboardLimit)
	if err != nil {
		return nil, err
	}

	return &domain.MetalDashboard{
		TotalGrams: balance.TotalGrams,
		Recent:     recent,
	}, nil
}

// AddGrams validates the quantity and atomically increments the balance while
// inserting a positive-delta transaction.
func (s *LedgerService) AddGrams(ctx context.Context, input MutateInput) error {
	if err := domain.EnsurePositiveGrams(input.Grams); err != nil {
		return err
	}

	defer s.lock(input.Metal)()

	tx := &domain.MetalTransaction{
		ID:         uuid.New(),
		MetalType:  input.Metal.TypeCode(),
		DeltaGrams: input.Grams,
		Price:      input.Price,
		Note:       input.Note,
		At:         time.Now().UTC(),
	}

	return s.MetalRepo.ApplyDelta(ctx, tx)
}

// SellGrams validates the quantity, rejects sales that would drive the
// balance negative, and atomically decrements the balance while inserting a
// negative-delta transaction.
func (s *LedgerService) SellGrams(ctx context.Context, input MutateInput) error {
	if err := domain.EnsurePositiveGrams(input.Grams); err != nil {
		return err
	}

	defer s.lock(input.Metal)()

	balance, err := s.MetalRepo.GetBalance(ctx, input.Metal.TypeCode())
	if err != nil {
		return err
	}
	if balance.TotalGrams.Sub(input.Grams).IsNegative() {
		return fmt.Errorf("%w: insufficient balance (have %s, selling %s)",
			domain.ErrStateConflict, balance.TotalGrams.String(), input.Grams.String())
	}

	tx := &domain.MetalTransaction{
		ID:         uuid.New(),
		MetalType:  input.Metal.TypeCode(),
		DeltaGrams: input.Grams.Neg(),
		Price:      input.Price,
		Note:       input.Note,
		At:         time.Now().UTC(),
	}

	return s.MetalRepo.ApplyDelta(ctx, tx)
}

// DeleteTransaction reverses a transaction's effect on the balance and
// removes it from the ledger. The repository refuses the delete when the
// reversal would leave the balance negative.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id uuid.UUID, metal domain.Metal) error {
	defer s.lock(metal)()

	return s.MetalRepo.DeleteTransaction(ctx, id, metal.TypeCode())
}
