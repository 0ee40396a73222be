package export

import (
	"strings"
	"testing"

	"github.com/splitzee/splitzee/internal/date"
	"github.com/splitzee/splitzee/internal/models"
)

func TestSplitCSV(t *testing.T) {
	got, err := SplitCSV([]models.Participant{
		{Name: "Alice", Amount: 33.333},
		{Name: "Bob", Amount: 25},
		{Name: "Smith, Jr.", Amount: 0.5},
	})
	if err != nil {
		t.Fatalf("SplitCSV failed: %v", err)
	}
	want := "Name,Amount\nAlice,33.33\nBob,25.00\n\"Smith, Jr.\",0.50\n"
	if got != want {
		t.Errorf("SplitCSV =\n%s\nwant\n%s", got, want)
	}
}

func TestExpensesCSV(t *testing.T) {
	got, err := ExpensesCSV([]models.Expense{
		{ID: "1", Title: "Rent", Amount: 1200, Date: date.MustParse("2025-03-01"), Category: models.CategoryBills},
		{ID: "2", Title: "Ramen", Amount: 1500, Currency: "JPY", Date: date.MustParse("2025-03-02"), Category: models.CategoryFood},
	})
	if err != nil {
		t.Fatalf("ExpensesCSV failed: %v", err)
	}
	want := "Name,Amount,Currency\nRent,1200.00,USD\nRamen,1500.00,JPY\n"
	if got != want {
		t.Errorf("ExpensesCSV =\n%s\nwant\n%s", got, want)
	}
}

func TestExpensesCSVEmpty(t *testing.T) {
	got, err := ExpensesCSV(nil)
	if err != nil {
		t.Fatalf("ExpensesCSV failed: %v", err)
	}
	if got != "Name,Amount,Currency\n" {
		t.Errorf("ExpensesCSV(nil) = %q", got)
	}
}

func TestShareText(t *testing.T) {
	r := models.SplitResult{
		Total:    90,
		Strategy: models.SplitEqual,
		Participants: []models.Participant{
			{Name: "Alice", Amount: 30},
			{Name: "Bob", Amount: 60},
		},
		Notes: "Pizza night",
	}
	got := ShareText(r)
	for _, want := range []string{
		"Expense Split Results:\n",
		"Total: $90.00\n",
		"Alice: $30.00\nBob: $60.00\n",
		"\nNotes: Pizza night\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ShareText missing %q in:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, tagline) {
		t.Errorf("ShareText should end with the tagline:\n%s", got)
	}

	r.Notes = ""
	if strings.Contains(ShareText(r), "Notes:") {
		t.Error("ShareText without notes should not print a Notes line")
	}
}
