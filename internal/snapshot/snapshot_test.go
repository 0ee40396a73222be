package snapshot

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/splitzee/splitzee/internal/date"
	"github.com/splitzee/splitzee/internal/models"
)

// browserSnapshot is what the web client writes under ExpensesKey.
const browserSnapshot = `[
  {"id":"1718000000000","title":"Groceries","amount":42.5,"date":"2025-03-01","category":"Food & Dining","notes":""},
  {"id":"1718000000001","title":"Internet","amount":60,"date":"2025-03-02","category":"Bills & Utilities","notes":"fiber","currency":"EUR","dueDate":"2025-03-15","isRecurring":true}
]`

func TestDecodeBrowserSnapshot(t *testing.T) {
	got, err := DecodeExpenses(strings.NewReader(browserSnapshot))
	if err != nil {
		t.Fatalf("DecodeExpenses failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d expenses, want 2", len(got))
	}

	first := got[0]
	if first.ID != "1718000000000" || first.Title != "Groceries" || first.Amount != 42.5 {
		t.Errorf("first = %+v", first)
	}
	if first.Date != date.MustParse("2025-03-01") || first.Category != models.CategoryFood {
		t.Errorf("first date/category = %v / %v", first.Date, first.Category)
	}
	if first.CurrencyOrBase() != "USD" || !first.DueDate.IsZero() || first.IsRecurring {
		t.Errorf("first optional fields = %+v", first)
	}

	second := got[1]
	if second.Currency != "EUR" || second.DueDate != date.MustParse("2025-03-15") || !second.IsRecurring {
		t.Errorf("second optional fields = %+v", second)
	}
	if err := second.Validate(); err != nil {
		t.Errorf("second should be valid: %v", err)
	}
}

func TestDecodeNull(t *testing.T) {
	got, err := DecodeExpenses(strings.NewReader("null"))
	if err != nil {
		t.Fatalf("DecodeExpenses(null) failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("DecodeExpenses(null) = %#v, want empty list", got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeExpenses(strings.NewReader(`{"not":"a list"}`)); err == nil {
		t.Error("expected error for non-array snapshot")
	}
	if _, err := DecodeExpenses(strings.NewReader(`[{"date":"yesterday"}]`)); err == nil {
		t.Error("expected error for bad date")
	}
}

func TestEncodeOmitsServerFields(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeExpenses(&buf, []models.Expense{{
		ID: "abc", UserID: "u1", Title: "Taxi", Amount: 12, Date: date.MustParse("2025-03-01"),
		Category: models.CategoryTransportation, CreatedAt: 1,
	}})
	if err != nil {
		t.Fatalf("EncodeExpenses failed: %v", err)
	}
	out := buf.String()
	for _, unwanted := range []string{"UserID", "u1", "createdAt", "dueDate", "isRecurring", "currency"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("encoded snapshot should not contain %q:\n%s", unwanted, out)
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	in := []models.Expense{{ID: "x", Title: "Book", Amount: 9.99, Date: date.MustParse("2025-01-05"), Category: models.CategoryEducation}}
	if err := SaveExpensesFile(path, in); err != nil {
		t.Fatalf("SaveExpensesFile failed: %v", err)
	}
	out, err := LoadExpensesFile(path)
	if err != nil {
		t.Fatalf("LoadExpensesFile failed: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestDecodeUser(t *testing.T) {
	u, err := DecodeUser(strings.NewReader(`{"email":"ana@example.com","name":"ana"}`))
	if err != nil {
		t.Fatalf("DecodeUser failed: %v", err)
	}
	if u.Email != "ana@example.com" || u.Name != "ana" {
		t.Errorf("DecodeUser = %+v", u)
	}
}
