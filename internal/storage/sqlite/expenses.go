package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitzee/splitzee/internal/currency"
	"github.com/splitzee/splitzee/internal/date"
	"github.com/splitzee/splitzee/internal/models"
	"github.com/splitzee/splitzee/internal/storage"
)

const expenseColumns = `id, user_id, title, amount, date, category, notes, currency,
	due_date, is_recurring, recurring_day, created_at, updated_at`

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateExpense inserts a new expense, generating its ID and timestamps when unset.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if err := insertExpense(ctx, s.db, expense); err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// CreateExpenses inserts all expenses in one transaction.
// IDs and timestamps are filled in on the caller's slice.
func (s *SQLiteStore) CreateExpenses(ctx context.Context, expenses []models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range expenses {
		if err := insertExpense(ctx, tx, &expenses[i]); err != nil {
			return fmt.Errorf("failed to insert expense %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertExpense(ctx context.Context, db execer, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now
	}
	expense.UpdatedAt = now
	expense.RecurringDay = expense.DueDate.Day()

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.ExecContext(ctx, query,
		expense.ID,
		expense.UserID,
		expense.Title,
		expense.Amount,
		expense.Date.String(),
		string(expense.Category),
		expense.Notes,
		string(expense.Currency),
		nullDate(expense.DueDate),
		expense.IsRecurring,
		expense.RecurringDay,
		expense.CreatedAt,
		expense.UpdatedAt,
	)
	return err
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = ?`
	expense, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// UpdateExpense overwrites the editable fields of an existing expense.
// The recurring day moves only when the due date changes.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	expense.UpdatedAt = time.Now().Unix()
	due := nullDate(expense.DueDate)

	query := `
		UPDATE expenses
		SET title = ?, amount = ?, date = ?, category = ?, notes = ?, currency = ?,
			recurring_day = CASE WHEN due_date IS ? THEN recurring_day ELSE ? END,
			due_date = ?, is_recurring = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		expense.Title,
		expense.Amount,
		expense.Date.String(),
		string(expense.Category),
		expense.Notes,
		string(expense.Currency),
		due,
		expense.DueDate.Day(),
		due,
		expense.IsRecurring,
		expense.UpdatedAt,
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return expectOneRow(result, expense.ID)
}

// AdvanceDueDate moves a recurring expense to its next due date.
// Only due_date is written, so concurrent edits to other fields survive,
// and recurring_day keeps the day the series is anchored to.
func (s *SQLiteStore) AdvanceDueDate(ctx context.Context, id string, due date.Date) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE expenses SET due_date = ?, updated_at = ? WHERE id = ?`,
		nullDate(due), time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to advance due date: %w", err)
	}
	return expectOneRow(result, id)
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return expectOneRow(result, id)
}

// ListExpenses returns all expenses owned by userID, newest date first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = ?
		ORDER BY date DESC, created_at DESC
	`
	return s.queryExpenses(ctx, query, userID)
}

// ListRecurringDue returns recurring expenses of all users due on or before the given day.
// Dates are stored as YYYY-MM-DD so string comparison orders them correctly.
func (s *SQLiteStore) ListRecurringDue(ctx context.Context, onOrBefore date.Date) ([]models.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE is_recurring = 1 AND due_date IS NOT NULL AND due_date <= ?
		ORDER BY due_date ASC
	`
	return s.queryExpenses(ctx, query, onOrBefore.String())
}

func (s *SQLiteStore) queryExpenses(ctx context.Context, query string, args ...any) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*models.Expense, error) {
	var (
		e        models.Expense
		day      string
		category string
		code     string
		due      sql.NullString
	)
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Title,
		&e.Amount,
		&day,
		&category,
		&e.Notes,
		&code,
		&due,
		&e.IsRecurring,
		&e.RecurringDay,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if e.Date, err = date.Parse(day); err != nil {
		return nil, fmt.Errorf("expense %s has bad date: %w", e.ID, err)
	}
	if due.Valid && due.String != "" {
		if e.DueDate, err = date.Parse(due.String); err != nil {
			return nil, fmt.Errorf("expense %s has bad due date: %w", e.ID, err)
		}
	}
	e.Category = models.Category(category)
	e.Currency = currency.Code(code)
	return &e, nil
}

func nullDate(d date.Date) sql.NullString {
	if d.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func expectOneRow(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
