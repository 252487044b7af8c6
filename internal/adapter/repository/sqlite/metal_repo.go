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

// metalRepository implements domain.MetalRepository
type metalRepository struct {
	db *DB
}

// NewMetalRepository creates a new metal repository
func NewMetalRepository(db *DB) domain.MetalRepository {
	return &metalRepository{db: db}
}

// GetBalance retrieves the balance row for a metal type code.
func (r *metalRepository) GetBalance(ctx context.Context, metalType int) (*domain.MetalBalance, error) {
	query := `
		SELECT id, metal_type, total_grams
		FROM metal_balances
		WHERE metal_type = ?
	`

	var balance domain.MetalBalance
	var totalStr string

	err := r.db.QueryRowContext(ctx, query, metalType).Scan(
		&balance.ID,
		&balance.MetalType,
		&totalStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("balance for metal type %d: %w", metalType, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get metal balance: %w", err)
	}

	balance.TotalGrams, err = parseDecimal(totalStr)
	if err != nil {
		return nil, err
	}

	return &balance, nil
}

// CreateBalance inserts a zero balance row for a metal type.
func (r *metalRepository) CreateBalance(ctx context.Context, balance *domain.MetalBalance) error {
	query := `
		INSERT INTO metal_balances (id, metal_type, total_grams)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		balance.ID.String(),
		balance.MetalType,
		balance.TotalGrams.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to create metal balance: %w", err)
	}

	return nil
}

// ApplyDelta adds tx.DeltaGrams to the balance and inserts the transaction
// row inside one database transaction, so a failure between the two writes
// can never leave the balance and the ledger inconsistent.
func (r *metalRepository) ApplyDelta(ctx context.Context, tx *domain.MetalTransaction) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	current, err := balanceForUpdate(ctx, dbTx, tx.MetalType)
	if err != nil {
		return err
	}

	newTotal := current.Add(tx.DeltaGrams)
	if newTotal.IsNegative() {
		return fmt.Errorf("%w: insufficient balance (have %s, selling %s)",
			domain.ErrStateConflict, current.String(), tx.DeltaGrams.Neg().String())
	}

	if err := setBalance(ctx, dbTx, tx.MetalType, newTotal); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO metal_transactions (id, metal_type, delta_grams, price, note, at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = dbTx.ExecContext(ctx, insertQuery,
		tx.ID.String(),
		tx.MetalType,
		tx.DeltaGrams.String(),
		nullDecimal(tx.Price),
		nullString(tx.Note),
		formatTime(tx.At),
	)
	if err != nil {
		return fmt.Errorf("failed to insert metal transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteTransaction reverses a transaction's effect on the balance and
// removes the row, again as one atomic unit. The delete is refused when the
// reversal would drive the balance negative.
func (r *metalRepository) DeleteTransaction(ctx context.Context, id uuid.UUID, metalType int) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	var txMetalType int
	var deltaStr string
	err = dbTx.QueryRowContext(ctx,
		`SELECT metal_type, delta_grams FROM metal_transactions WHERE id = ?`, id.String(),
	).Scan(&txMetalType, &deltaStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to get metal transaction: %w", err)
	}

	if txMetalType != metalType {
		return fmt.Errorf("%w: transaction belongs to metal type %d, not %d",
			domain.ErrMismatch, txMetalType, metalType)
	}

	delta, err := parseDecimal(deltaStr)
	if err != nil {
		return err
	}

	current, err := balanceForUpdate(ctx, dbTx, metalType)
	if err != nil {
		return err
	}

	newTotal := current.Sub(delta)
	if newTotal.IsNegative() {
		return fmt.Errorf("%w: deleting this transaction would leave balance at %s",
			domain.ErrStateConflict, newTotal.String())
	}

	if err := setBalance(ctx, dbTx, metalType, newTotal); err != nil {
		return err
	}

	if _, err := dbTx.ExecContext(ctx,
		`DELETE FROM metal_transactions WHERE id = ?`, id.String(),
	); err != nil {
		return fmt.Errorf("failed to delete metal transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListRecent returns up to limit transactions for a metal type ordered by
// timestamp descending, optionally restricted to [from, to).
func (r *metalRepository) ListRecent(ctx context.Context, metalType int, from, to *time.Time, limit int) ([]*domain.MetalTransaction, error) {
	query := `
		SELECT id, metal_type, delta_grams, price, note, at
		FROM metal_transactions
		WHERE metal_type = ?
	`
	args := []interface{}{metalType}

	if from != nil {
		query += " AND at >= ?"
		args = append(args, formatTime(*from))
	}
	if to != nil {
		query += " AND at < ?"
		args = append(args, formatTime(*to))
	}

	query += " ORDER BY at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list metal transactions: %w", err)
	}
	defer rows.Close()

	var result []*domain.MetalTransaction
	for rows.Next() {
		var tx domain.MetalTransaction
		var deltaStr, atStr string
		var priceStr, noteStr sql.NullString

		if err := rows.Scan(&tx.ID, &tx.MetalType, &deltaStr, &priceStr, &noteStr, &atStr); err != nil {
			return nil, fmt.Errorf("failed to scan metal transaction: %w", err)
		}

		if tx.DeltaGrams, err = parseDecimal(deltaStr); err != nil {
			return nil, err
		}
		if tx.Price, err = parseNullDecimal(priceStr); err != nil {
			return nil, err
		}
		tx.Note = stringPtr(noteStr)
		if tx.At, err = parseTime(atStr); err != nil {
			return nil, err
		}

		result = append(result, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate metal transactions: %w", err)
	}

	return result, nil
}

func balanceForUpdate(ctx context.Context, dbTx *sql.Tx, metalType int) (decimal.Decimal, error) {
	var totalStr string
	err := dbTx.QueryRowContext(ctx,
		`SELECT total_grams FROM metal_balances WHERE metal_type = ?`, metalType,
	).Scan(&totalStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Decimal{}, fmt.Errorf("balance for metal type %d: %w", metalType, domain.ErrNotFound)
		}
		return decimal.Decimal{}, fmt.Errorf("failed to get metal balance: %w", err)
	}
	return parseDecimal(totalStr)
}

func setBalance(ctx context.Context, dbTx *sql.Tx, metalType int, total decimal.Decimal) error {
	_, err := dbTx.ExecContext(ctx,
		`UPDATE metal_balances SET total_grams = ? WHERE metal_type = ?`,
		total.String(), metalType,
	)
	if err != nil {
		return fmt.Errorf("failed to update metal balance: %w", err)
	}
	return nil
}
