package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MetalRepository defines persistence for metal balances and their ledger.
// ApplyDelta and DeleteTransaction must execute their balance update and the
// ledger insert/delete as one atomic unit so the two tables never diverge.
type MetalRepository interface {
	// GetBalance retrieves the balance row for a metal type code.
	// Returns ErrNotFound if the row has not been seeded yet.
	GetBalance(ctx context.Context, metalType int) (*MetalBalance, error)

	// CreateBalance inserts a zero balance row for a metal type.
	CreateBalance(ctx context.Context, balance *MetalBalance) error

	// ApplyDelta atomically adds tx.DeltaGrams to the balance and inserts the
	// transaction row. Returns ErrStateConflict if the resulting total would
	// be negative; in that case nothing is written.
	ApplyDelta(ctx context.Context, tx *MetalTransaction) error

	// DeleteTransaction atomically reverses a transaction's effect on the
	// balance and removes the row. Returns ErrNotFound if the transaction is
	// absent, ErrMismatch if its metal type differs from metalType, and
	// ErrStateConflict if the reversal would drive the balance negative.
	DeleteTransaction(ctx context.Context, id uuid.UUID, metalType int) error

	// ListRecent returns up to limit transactions for a metal type ordered by
	// timestamp descending, optionally restricted to [from, to).
	ListRecent(ctx context.Context, metalType int, from, to *time.Time, limit int) ([]*MetalTransaction, error)
}

// ListChecksQuery carries the optional filters of a check list operation.
// FromDue and ToDue are calendar dates (YYYY-MM-DD); Search matches as a
// case-sensitive substring of the check number or payee.
type ListChecksQuery struct {
	Status  *CheckStatus
	FromDue string
	ToDue   string
	Search  string
}

// CheckRepository defines persistence for postdated checks.
type CheckRepository interface {
	// Insert persists a new check. Reports an error if zero rows were written.
	Insert(ctx context.Context, check *CheckItem) error

	// GetByID retrieves a check. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*CheckItem, error)

	// List returns checks matching the query ordered by due date ascending,
	// then number ascending.
	List(ctx context.Context, query ListChecksQuery) ([]*CheckItem, error)

	// UpdateStatus sets a check's status and, when depositedAt is non-nil,
	// its deposited timestamp. Returns ErrNotFound if zero rows matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status CheckStatus, depositedAt *time.Time) error

	// Delete removes a check by id. Deleting an absent check is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccessoryRepository defines persistence for catalog items.
type AccessoryRepository interface {
	// Insert persists a new accessory.
	Insert(ctx context.Context, item *AccessoryItem) error

	// GetByID retrieves an accessory. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*AccessoryItem, error)

	// List returns accessories matching the filter ordered by
	// COALESCE(sold_at, added_at) descending.
	List(ctx context.Context, filter AccessoryFilter) ([]*AccessoryItem, error)

	// MarkSold stamps an unsold accessory as sold. Returns ErrStateConflict
	// if the item was already sold when the update ran.
	MarkSold(ctx context.Context, id uuid.UUID, soldAt time.Time, soldPrice decimal.Decimal) error
}

// ExpenseRepository defines persistence for fixed expenses.
type ExpenseRepository interface {
	// Insert persists a new expense.
	Insert(ctx context.Context, expense *FixedExpense) error

	// Update rewrites an expense's name and price.
	// Returns ErrNotFound if zero rows matched.
	Update(ctx context.Context, id uuid.UUID, name string, price decimal.Decimal) error

	// Delete removes an expense. Returns ErrNotFound if zero rows matched.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all expenses ordered by name case-insensitively.
	List(ctx context.Context) ([]*FixedExpense, error)
}
