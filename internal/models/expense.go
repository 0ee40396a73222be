package models

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/splitzee/splitzee/internal/currency"
	"github.com/splitzee/splitzee/internal/date"
)

// Category is one of the fixed expense categories.
type Category string

const (
	CategoryFood           Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBills          Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryOther          Category = "Other"
)

// Categories lists the valid categories in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTravel,
	CategoryOther,
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

const (
	maxTitleLength = 200
	maxNotesLength = 1000
)

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrTitleTooLong    = fmt.Errorf("title too long (max %d characters)", maxTitleLength)
	ErrNotesTooLong    = fmt.Errorf("notes too long (max %d characters)", maxNotesLength)
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrMissingDate     = errors.New("date is required")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidCurrency = errors.New("unsupported currency")
)

// Expense represents a single tracked expense.
// JSON names match the web client's stored expense list.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	// Imported snapshots are assigned fresh IDs.
	ID string `json:"id"`

	// UserID is the owner of the expense.
	UserID string `json:"-"`

	// Title is a short description, e.g. "Groceries".
	Title string `json:"title"`

	// Amount is the expense amount in Currency. Always positive.
	Amount float64 `json:"amount"`

	// Date is the calendar day the expense happened.
	Date date.Date `json:"date"`

	// Category is one of Categories.
	Category Category `json:"category"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	// Currency is the ISO code of Amount. Empty means currency.Base.
	Currency currency.Code `json:"currency,omitempty"`

	// DueDate is the optional date a bill is due.
	DueDate date.Date `json:"dueDate,omitzero"`

	// IsRecurring marks expenses that repeat monthly from DueDate.
	IsRecurring bool `json:"isRecurring,omitempty"`

	// RecurringDay is the day of month a recurring expense falls due.
	// The store sets it from DueDate whenever the expense is saved, so
	// a bill due on the 31st stays on the last day of shorter months.
	RecurringDay int `json:"-"`

	// CreatedAt is the Unix timestamp when the expense was stored.
	CreatedAt int64 `json:"-"`

	// UpdatedAt is the Unix timestamp of the last edit.
	UpdatedAt int64 `json:"-"`
}

// CurrencyOrBase returns the expense currency, defaulting to the base currency.
func (e Expense) CurrencyOrBase() currency.Code {
	if e.Currency == "" {
		return currency.Base
	}
	return e.Currency
}

// Validate checks the expense fields a user can enter.
func (e Expense) Validate() error {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) || e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return ErrMissingDate
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, e.Category)
	}
	if e.Currency != "" && !currency.IsSupported(e.Currency) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, e.Currency)
	}
	if len(e.Notes) > maxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}
