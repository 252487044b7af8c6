// Package seeder ensures the fixed metal balance rows exist before the
// engines start serving requests.
package seeder

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// Fixed UUIDs for the two balance rows so repeated startups are idempotent.
var (
	BalanceGoldID   = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	BalanceSilverID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)

// BalanceSeeder handles seeding of the per-metal balance rows
type BalanceSeeder struct {
	repo domain.MetalRepository
}

// NewBalanceSeeder creates a new BalanceSeeder instance
func NewBalanceSeeder(repo domain.MetalRepository) *BalanceSeeder {
	return &BalanceSeeder{repo: repo}
}

// Seed ensures one zero balance row exists per metal type. Existing rows are
// left untouched; they are never deleted for the lifetime of the store.
func (s *BalanceSeeder) Seed(ctx context.Context) error {
	balances := []domain.MetalBalance{
		{ID: BalanceGoldID, MetalType: domain.MetalTypeGold, TotalGrams: decimal.Zero},
		{ID: BalanceSilverID, MetalType: domain.MetalTypeSilver, TotalGrams: decimal.Zero},
	}

	for i := range balances {
		_, err := s.repo.GetBalance(ctx, balances[i].MetalType)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if err := s.repo.CreateBalance(ctx, &balances[i]); err != nil {
			return err
		}
	}

	return nil
}
