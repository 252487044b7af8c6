package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goldbook-app/goldbook-backend/internal/domain"
)

// checkRepository implements domain.CheckRepository
type checkRepository struct {
	db *DB
}

// NewCheckRepository creates a new check repository
func NewCheckRepository(db *DB) domain.CheckRepository {
	return &checkRepository{db: db}
}

const checkColumns = `id, bank, number, payee, amount, issue_date, due_date, status, notes, deposited_at, cleared_at`

// Insert persists a new check and verifies a row was actually written.
func (r *checkRepository) Insert(ctx context.Context, check *domain.CheckItem) error {
	query := `
		INSERT INTO check_items (` + checkColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, NULL)
	`

	res, err := r.db.ExecContext(ctx, query,
		check.ID.String(),
		check.Bank,
		check.Number,
		check.Payee,
		check.Amount.String(),
		check.IssueDate,
		check.DueDate,
		string(check.Status),
		nullString(check.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to insert check: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("insert check %s affected zero rows", check.ID)
	}

	return nil
}

// GetByID retrieves a check by its ID.
func (r *checkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CheckItem, error) {
	query := `SELECT ` + checkColumns + ` FROM check_items WHERE id = ?`

	check, err := scanCheck(r.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("check %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return check, nil
}

// List returns checks matching the query ordered by due date ascending,
// then number ascending. Substring matching on number/payee uses instr so it
// stays case-sensitive (LIKE folds ASCII case in SQLite).
func (r *checkRepository) List(ctx context.Context, query domain.ListChecksQuery) ([]*domain.CheckItem, error) {
	sqlQuery := `SELECT ` + checkColumns + ` FROM check_items WHERE 1=1`
	var args []interface{}

	if query.Status != nil {
		sqlQuery += " AND status = ?"
		args = append(args, string(*query.Status))
	}
	if query.FromDue != "" {
		sqlQuery += " AND due_date >= ?"
		args = append(args, query.FromDue)
	}
	if query.ToDue != "" {
		sqlQuery += " AND due_date <= ?"
		args = append(args, query.ToDue)
	}
	if query.Search != "" {
		sqlQuery += " AND (instr(number, ?) > 0 OR instr(payee, ?) > 0)"
		args = append(args, query.Search, query.Search)
	}

	sqlQuery += " ORDER BY due_date ASC, number ASC"

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	defer rows.Close()

	var result []*domain.CheckItem
	for rows.Next() {
		check, err := scanCheck(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate checks: %w", err)
	}

	return result, nil
}

// UpdateStatus sets a check's status and optionally its deposited timestamp.
func (r *checkRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CheckStatus, depositedAt *time.Time) error {
	var res sql.Result
	var err error

	if depositedAt != nil {
		res, err = r.db.ExecContext(ctx,
			`UPDATE check_items SET status = ?, deposited_at = ? WHERE id = ?`,
			string(status), formatTime(*depositedAt), id.String(),
		)
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE check_items SET status = ? WHERE id = ?`,
			string(status), id.String(),
		)
	}
	if err != nil {
		return fmt.Errorf("failed to update check status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("check %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a check by id. Absent rows are ignored.
func (r *checkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM check_items WHERE id = ?`, id.String(),
	); err != nil {
		return fmt.Errorf("failed to delete check: %w", err)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCheck(row rowScanner) (*domain.CheckItem, error) {
	var check domain.CheckItem
	var amountStr, statusStr string
	var notes, depositedAt, clearedAt sql.NullString

	err := row.Scan(
		&check.ID,
		&check.Bank,
		&check.Number,
		&check.Payee,
		&amountStr,
		&check.IssueDate,
		&check.DueDate,
		&statusStr,
		&notes,
		&depositedAt,
		&clearedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan check: %w", err)
	}

	if check.Amount, err = parseDecimal(amountStr); err != nil {
		return nil, err
	}
	check.Status = domain.CheckStatus(statusStr)
	check.Notes = stringPtr(notes)
	if check.DepositedAt, err = parseNullTime(depositedAt); err != nil {
		return nil, err
	}
	if check.ClearedAt, err = parseNullTime(clearedAt); err != nil {
		return nil, err
	}

	return &check, nil
}
