// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/splitzee/splitzee/internal/date"
	"github.com/splitzee/splitzee/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert collides with a unique value,
	// such as a second user with the same email.
	ErrDuplicate = errors.New("already exists")
)

// Store defines the interface for expense and user storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	ExpenseStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}

// ExpenseStore persists expenses.
type ExpenseStore interface {
	// CreateExpense persists a new expense.
	// The ID, CreatedAt and UpdatedAt fields are populated by the store when empty.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// CreateExpenses persists several expenses atomically: either all are stored or none.
	CreateExpenses(ctx context.Context, expenses []models.Expense) error

	// GetExpense retrieves an expense by ID.
	// Returns an error wrapping ErrNotFound if it does not exist.
	GetExpense(ctx context.Context, id string) (*models.Expense, error)

	// UpdateExpense replaces an existing expense, keeping its ID, owner and CreatedAt.
	// Returns an error wrapping ErrNotFound if it does not exist.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// AdvanceDueDate sets only the due date of an expense, leaving every
	// other field as stored. Returns an error wrapping ErrNotFound if it does not exist.
	AdvanceDueDate(ctx context.Context, id string, due date.Date) error

	// DeleteExpense removes an expense by ID.
	// Returns an error wrapping ErrNotFound if it does not exist.
	DeleteExpense(ctx context.Context, id string) error

	// ListExpenses returns a user's expenses, newest date first.
	ListExpenses(ctx context.Context, userID string) ([]models.Expense, error)

	// ListRecurringDue returns recurring expenses of all users whose
	// due date is on or before the given day.
	ListRecurringDue(ctx context.Context, onOrBefore date.Date) ([]models.Expense, error)
}

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser returns an error wrapping ErrDuplicate when the email is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil and no error when no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil and no error when no user has that ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
