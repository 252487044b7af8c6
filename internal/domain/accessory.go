package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccessoryFilter selects which accessories a list query returns.
type AccessoryFilter string

const (
	AccessoryFilterAvailable AccessoryFilter = "available"
	AccessoryFilterSold      AccessoryFilter = "sold"
	AccessoryFilterAll       AccessoryFilter = "all"
)

// ParseAccessoryFilter converts a caller-supplied filter name.
// An empty string defaults to "all".
func ParseAccessoryFilter(s string) (AccessoryFilter, error) {
	if s == "" {
		return AccessoryFilterAll, nil
	}
	switch AccessoryFilter(s) {
	case AccessoryFilterAvailable, AccessoryFilterSold, AccessoryFilterAll:
		return AccessoryFilter(s), nil
	default:
		return "", fmt.Errorf("%w: unknown accessory filter %q", ErrValidation, s)
	}
}

// AccessoryItem is a sellable catalog item. SoldAt and SoldPrice are both
// nil until the item is sold, then both set exactly once.
type AccessoryItem struct {
	ID          uuid.UUID
	Type        string
	Description string
	Price       decimal.Decimal
	AddedAt     time.Time
	SoldAt      *time.Time
	SoldPrice   *decimal.Decimal
	SKU         *string
}

// Sold reports whether the item has already been sold.
func (a *AccessoryItem) Sold() bool {
	return a.SoldAt != nil
}

// Validate ensures a new accessory is well-formed before insertion.
func (a *AccessoryItem) Validate() error {
	if strings.TrimSpace(a.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrValidation)
	}
	if strings.TrimSpace(a.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if a.Price.IsNegative() {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	return nil
}
