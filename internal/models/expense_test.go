package models

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/splitzee/splitzee/internal/date"
)

func TestExpenseValidate(t *testing.T) {
	valid := Expense{
		Title:    "Groceries",
		Amount:   42.5,
		Date:     date.MustParse("2025-03-01"),
		Category: CategoryFood,
	}

	tests := []struct {
		name    string
		modify  func(e *Expense)
		wantErr error
	}{
		{"valid", func(e *Expense) {}, nil},
		{"blank title", func(e *Expense) { e.Title = "   " }, ErrEmptyTitle},
		{"long title", func(e *Expense) { e.Title = strings.Repeat("x", maxTitleLength+1) }, ErrTitleTooLong},
		{"zero amount", func(e *Expense) { e.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(e *Expense) { e.Amount = -1 }, ErrInvalidAmount},
		{"NaN amount", func(e *Expense) { e.Amount = math.NaN() }, ErrInvalidAmount},
		{"infinite amount", func(e *Expense) { e.Amount = math.Inf(1) }, ErrInvalidAmount},
		{"missing date", func(e *Expense) { e.Date = date.Date{} }, ErrMissingDate},
		{"unknown category", func(e *Expense) { e.Category = "Pets" }, ErrInvalidCategory},
		{"unsupported currency", func(e *Expense) { e.Currency = "XYZ" }, ErrInvalidCurrency},
		{"supported currency", func(e *Expense) { e.Currency = "EUR" }, nil},
		{"long notes", func(e *Expense) { e.Notes = strings.Repeat("n", maxNotesLength+1) }, ErrNotesTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.modify(&e)
			err := e.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
