// Package catalog implements the accessory catalog: items are added once and
// sold at most once; there is no delete operation.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// AddAccessoryInput carries the payload for adding a catalog item.
type AddAccessoryInput struct {
	Type        string
	Description string
	Price       decimal.Decimal
	SKU         *string
}

// CatalogService handles accessory catalog operations
type CatalogService struct {
	AccessoryRepo domain.AccessoryRepository
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(accessoryRepo domain.AccessoryRepository) *CatalogService {
	return &CatalogService{AccessoryRepo: accessoryRepo}
}

// AddAccessory validates and inserts a new item, returning its id.
// Type and description are trimmed before storage.
func (s *CatalogService) AddAccessory(ctx context.Context, input AddAccessoryInput) (uuid.UUID, error) {
	item := &domain.AccessoryItem{
		ID:          uuid.New(),
		Type:        strings.TrimSpace(input.Type),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		AddedAt:     time.Now().UTC(),
		SKU:         input.SKU,
	}

	if err := item.Validate(); err != nil {
		return uuid.Nil, err
	}

	if err := s.AccessoryRepo.Insert(ctx, item); err != nil {
		return uuid.Nil, err
	}

	return item.ID, nil
}

// ListAccessories returns items matching the filter, most recently touched
// first.
func (s *CatalogService) ListAccessories(ctx context.Context, filter domain.AccessoryFilter) ([]*domain.AccessoryItem, error) {
	return s.AccessoryRepo.List(ctx, filter)
}

// SellAccessory stamps an item as sold exactly once. The sale price defaults
// to the item's list price when none is given and must not be negative.
func (s *CatalogService) SellAccessory(ctx context.Context, id uuid.UUID, soldPrice *decimal.Decimal) error {
	item, err := s.AccessoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if item.Sold() {
		return fmt.Errorf("%w: accessory %s already sold", domain.ErrStateConflict, id)
	}

	resolved := item.Price
	if soldPrice != nil {
		resolved = *soldPrice
	}
	if resolved.IsNegative() {
		return fmt.Errorf("%w: sold price must be >= 0", domain.ErrValidation)
	}

	return s.AccessoryRepo.MarkSold(ctx, id, time.Now().UTC(), resolved)
}
