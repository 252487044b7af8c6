package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckStatus is the lifecycle state of a postdated check.
type CheckStatus string

const (
	CheckStatusIssued    CheckStatus = "issued"
	CheckStatusDeposited CheckStatus = "deposited"
	CheckStatusReturned  CheckStatus = "returned"
	CheckStatusCancelled CheckStatus = "cancelled"
)

// ParseCheckStatus converts a caller-supplied status name into a CheckStatus.
func ParseCheckStatus(s string) (CheckStatus, error) {
	switch CheckStatus(s) {
	case CheckStatusIssued, CheckStatusDeposited, CheckStatusReturned, CheckStatusCancelled:
		return CheckStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown check status %q", ErrValidation, s)
	}
}

// checkTransitions is the allowed status state machine:
// issued -> deposited | cancelled, deposited -> returned.
// returned and cancelled are terminal.
var checkTransitions = map[CheckStatus][]CheckStatus{
	CheckStatusIssued:    {CheckStatusDeposited, CheckStatusCancelled},
	CheckStatusDeposited: {CheckStatusReturned},
}

// CanTransition reports whether moving from one status to another is legal.
// Same-status re-stamps are not in the diagram and are rejected.
func CanTransition(from, to CheckStatus) bool {
	for _, next := range checkTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckItem is a postdated check received or issued by the business.
// IssueDate and DueDate are calendar dates (YYYY-MM-DD). ClearedAt is
// reserved: no transition writes it.
type CheckItem struct {
	ID          uuid.UUID
	Bank        string
	Number      string
	Payee       string
	Amount      decimal.Decimal
	IssueDate   string
	DueDate     string
	Status      CheckStatus
	Notes       *string
	DepositedAt *time.Time
	ClearedAt   *time.Time
}

// Validate ensures a new check is well-formed before insertion.
// Bank, number and payee must be non-empty after trimming; amount must be
// strictly positive.
func (c *CheckItem) Validate() error {
	if strings.TrimSpace(c.Bank) == "" {
		return fmt.Errorf("%w: bank is required", ErrValidation)
	}
	if strings.TrimSpace(c.Number) == "" {
		return fmt.Errorf("%w: number is required", ErrValidation)
	}
	if strings.TrimSpace(c.Payee) == "" {
		return fmt.Errorf("%w: payee is required", ErrValidation)
	}
	if c.Amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be > 0", ErrValidation)
	}
	return nil
}
