package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Metal identifies one of the two precious-metal ledgers.
type Metal string

const (
	MetalGold   Metal = "gold"
	MetalSilver Metal = "silver"
)

// Metal type codes as stored in the database.
const (
	MetalTypeGold   = 1
	MetalTypeSilver = 2
)

// ParseMetal converts a caller-supplied metal name into a Metal.
func ParseMetal(s string) (Metal, error) {
	switch Metal(s) {
	case MetalGold:
		return MetalGold, nil
	case MetalSilver:
		return MetalSilver, nil
	default:
		return "", fmt.Errorf("%w: unknown metal %q", ErrValidation, s)
	}
}

// TypeCode returns the integer code under which this metal's rows are stored.
func (m Metal) TypeCode() int {
	if m == MetalSilver {
		return MetalTypeSilver
	}
	return MetalTypeGold
}

// MetalBalance is the running total for one metal type.
// Exactly two rows exist (gold and silver), created once at first startup and
// never deleted. TotalGrams must always equal the sum of the remaining
// transaction deltas for the same metal type and must never be negative.
type MetalBalance struct {
	ID         uuid.UUID
	MetalType  int
	TotalGrams decimal.Decimal
}

// MetalTransaction is one ledger entry. DeltaGrams is positive for an
// addition and negative for a sale.
type MetalTransaction struct {
	ID         uuid.UUID
	MetalType  int
	DeltaGrams decimal.Decimal
	Price      *decimal.Decimal
	Note       *string
	At         time.Time
}

// MetalDashboard is the read model served to the presentation layer:
// the current total plus a bounded window of recent transactions.
type MetalDashboard struct {
	TotalGrams decimal.Decimal
	Recent     []*MetalTransaction
}

// EnsurePositiveGrams validates a gram quantity for add/sell operations.
// The quantity must be strictly positive and representable in whole
// milligrams (at most 3 decimal digits).
func EnsurePositiveGrams(grams decimal.Decimal) error {
	if grams.Sign() <= 0 {
		return fmt.Errorf("%w: grams must be > 0", ErrValidation)
	}
	if !grams.Equal(grams.Round(3)) {
		return fmt.Errorf("%w: grams must have at most 3 decimals", ErrValidation)
	}
	return nil
}
