package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// accessoryRepository implements domain.AccessoryRepository
type accessoryRepository struct {
	db *DB
}

// NewAccessoryRepository creates a new accessory repository
func NewAccessoryRepository(db *DB) domain.AccessoryRepository {
	return &accessoryRepository{db: db}
}

const accessoryColumns = `id, type, description, price, added_at, sold_at, sold_price, sku`

// Insert persists a new accessory.
func (r *accessoryRepository) Insert(ctx context.Context, item *domain.AccessoryItem) error {
	query := `
		INSERT INTO accessory_items (` + accessoryColumns + `)
		VALUES (?, ?, ?, ?, ?, NULL, NULL, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID.String(),
		item.Type,
		item.Description,
		item.Price.String(),
		formatTime(item.AddedAt),
		nullString(item.SKU),
	)
	if err != nil {
		return fmt.Errorf("failed to insert accessory: %w", err)
	}

	return nil
}

// GetByID retrieves an accessory by its ID.
func (r *accessoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AccessoryItem, error) {
	query := `SELECT ` + accessoryColumns + ` FROM accessory_items WHERE id = ?`

	item, err := scanAccessory(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("accessory %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

// List returns accessories matching the filter, most recently touched first
// (sale time when sold, otherwise the time the item was added).
func (r *accessoryRepository) List(ctx context.Context, filter domain.AccessoryFilter) ([]*domain.AccessoryItem, error) {
	query := `SELECT ` + accessoryColumns + ` FROM accessory_items`
	switch filter {
	case domain.AccessoryFilterAvailable:
		query += " WHERE sold_at IS NULL"
	case domain.AccessoryFilterSold:
		query += " WHERE sold_at IS NOT NULL"
	}
	query += " ORDER BY COALESCE(sold_at, added_at) DESC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accessories: %w", err)
	}
	defer rows.Close()

	var result []*domain.AccessoryItem
	for rows.Next() {
		item, err := scanAccessory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accessories: %w", err)
	}

	return result, nil
}

// MarkSold stamps an unsold accessory as sold. The sold_at IS NULL guard
// makes the sold-once rule hold even if a concurrent caller slipped past the
// service-level check.
func (r *accessoryRepository) MarkSold(ctx context.Context, id uuid.UUID, soldAt time.Time, soldPrice decimal.Decimal) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accessory_items SET sold_at = ?, sold_price = ? WHERE id = ? AND sold_at IS NULL`,
		formatTime(soldAt), soldPrice.String(), id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to mark accessory sold: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: accessory %s already sold", domain.ErrStateConflict, id)
	}

	return nil
}

func scanAccessory(row rowScanner) (*domain.AccessoryItem, error) {
	var item domain.AccessoryItem
	var priceStr, addedAtStr string
	var soldAt, soldPrice, sku sql.NullString

	err := row.Scan(
		&item.ID,
		&item.Type,
		&item.Description,
		&priceStr,
		&addedAtStr,
		&soldAt,
		&soldPrice,
		&sku,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan accessory: %w", err)
	}

	if item.Price, err = parseDecimal(priceStr); err != nil {
		return nil, err
	}
	if item.AddedAt, err = parseTime(addedAtStr); err != nil {
		return nil, err
	}
	if item.SoldAt, err = parseNullTime(soldAt); err != nil {
		return nil, err
	}
	if item.SoldPrice, err = parseNullDecimal(soldPrice); err != nil {
		return nil, err
	}
	item.SKU = stringPtr(sku)

	return &item, nil
}
