// Package export writes splits and expense lists as CSV and share text.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/splitzee/splitzee/internal/models"
)

// SplitFilename and ExpensesFilename are the suggested download names.
const (
	SplitFilename    = "expense-split.csv"
	ExpensesFilename = "expenses.csv"
)

// WriteSplitCSV writes "Name,Amount" followed by one row per participant.
func WriteSplitCSV(w io.Writer, participants []models.Participant) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Amount"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range participants {
		if err := cw.Write([]string{p.Name, formatAmount(p.Amount)}); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", p.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteExpensesCSV writes "Name,Amount,Currency" followed by one row per expense.
// Expenses without a currency are written in the base currency.
func WriteExpensesCSV(w io.Writer, expenses []models.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Amount", "Currency"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range expenses {
		row := []string{e.Title, formatAmount(e.Amount), string(e.CurrencyOrBase())}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SplitCSV is WriteSplitCSV into a string.
func SplitCSV(participants []models.Participant) (string, error) {
	var sb strings.Builder
	if err := WriteSplitCSV(&sb, participants); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ExpensesCSV is WriteExpensesCSV into a string.
func ExpensesCSV(expenses []models.Expense) (string, error) {
	var sb strings.Builder
	if err := WriteExpensesCSV(&sb, expenses); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
