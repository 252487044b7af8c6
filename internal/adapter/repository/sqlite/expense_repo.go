package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// expenseRepository implements domain.ExpenseRepository
type expenseRepository struct {
	db *DB
}

// NewExpenseRepository creates a new fixed-expense repository
func NewExpenseRepository(db *DB) domain.ExpenseRepository {
	return &expenseRepository{db: db}
}

// Insert persists a new fixed expense.
func (r *expenseRepository) Insert(ctx context.Context, expense *domain.FixedExpense) error {
	query := `
		INSERT INTO fixed_expenses (id, name, price, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		expense.ID.String(),
		expense.Name,
		expense.Price.String(),
		formatTime(expense.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert fixed expense: %w", err)
	}

	return nil
}

// Update rewrites an expense's name and price.
func (r *expenseRepository) Update(ctx context.Context, id uuid.UUID, name string, price decimal.Decimal) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE fixed_expenses SET name = ?, price = ? WHERE id = ?`,
		name, price.String(), id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update fixed expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("fixed expense %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an expense by id.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM fixed_expenses WHERE id = ?`, id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to delete fixed expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("fixed expense %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns all expenses ordered by name case-insensitively.
func (r *expenseRepository) List(ctx context.Context) ([]*domain.FixedExpense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price, created_at FROM fixed_expenses ORDER BY name COLLATE NOCASE ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}
	defer rows.Close()

	var result []*domain.FixedExpense
	for rows.Next() {
		var expense domain.FixedExpense
		var priceStr, createdAtStr string

		if err := rows.Scan(&expense.ID, &expense.Name, &priceStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan fixed expense: %w", err)
		}

		if expense.Price, err = parseDecimal(priceStr); err != nil {
			return nil, err
		}
		if expense.CreatedAt, err = parseTime(createdAtStr); err != nil {
			return nil, err
		}

		result = append(result, &expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fixed expenses: %w", err)
	}

	return result, nil
}
