// Package checks implements the postdated-check lifecycle engine. Checks are
// created as issued and move through an enforced state machine:
// issued -> deposited -> returned, or issued -> cancelled.
package checks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// AddCheckInput carries the payload for registering a new check.
type AddCheckInput struct {
	Bank      string
	Number    string
	Payee     string
	Amount    decimal.Decimal
	IssueDate string
	DueDate   string
	Notes     *string
}

// CheckService handles check lifecycle operations
type CheckService struct {
	CheckRepo domain.CheckRepository
}

// NewCheckService creates a new CheckService instance
func NewCheckService(checkRepo domain.CheckRepository) *CheckService {
	return &CheckService{CheckRepo: checkRepo}
}

// AddCheck validates the payload and inserts a new check with status forced
// to issued. Returns the persisted item; a zero-row insert surfaces as an
// error rather than a silent success.
func (s *CheckService) AddCheck(ctx context.Context, input AddCheckInput) (*domain.CheckItem, error) {
	check := &domain.CheckItem{
		ID:        uuid.New(),
		Bank:      strings.TrimSpace(input.Bank),
		Number:    strings.TrimSpace(input.Number),
		Payee:     strings.TrimSpace(input.Payee),
		Amount:    input.Amount,
		IssueDate: input.IssueDate,
		DueDate:   input.DueDate,
		Status:    domain.CheckStatusIssued,
		Notes:     input.Notes,
	}

	if err := check.Validate(); err != nil {
		return nil, err
	}

	if err := s.CheckRepo.Insert(ctx, check); err != nil {
		return nil, err
	}

	// Read-after-write: hand back the row as the store persisted it.
	return s.CheckRepo.GetByID(ctx, check.ID)
}

// ListChecks returns checks matching the filters, ordered by due date then
// number. An inverted due-date range is silently swapped.
func (s *CheckService) ListChecks(ctx context.Context, query domain.ListChecksQuery) ([]*domain.CheckItem, error) {
	if query.FromDue != "" && query.ToDue != "" && query.FromDue > query.ToDue {
		query.FromDue, query.ToDue = query.ToDue, query.FromDue
	}
	return s.CheckRepo.List(ctx, query)
}

// UpdateStatus moves a check to a new status. Transitions outside the state
// machine fail with ErrStateConflict. Moving to deposited stamps
// DepositedAt; returned and cancelled stamp nothing further.
func (s *CheckService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CheckStatus) error {
	check, err := s.CheckRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanTransition(check.Status, status) {
		return fmt.Errorf("%w: cannot move check from %s to %s",
			domain.ErrStateConflict, check.Status, status)
	}

	var depositedAt *time.Time
	if status == domain.CheckStatusDeposited {
		now := time.Now().UTC()
		depositedAt = &now
	}

	return s.CheckRepo.UpdateStatus(ctx, id, status, depositedAt)
}

// DeleteCheck removes a check by id. Deleting an absent check succeeds
// silently, so the operation is idempotent.
func (s *CheckService) DeleteCheck(ctx context.Context, id uuid.UUID) error {
	return s.CheckRepo.Delete(ctx, id)
}
