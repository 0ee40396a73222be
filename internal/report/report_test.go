package report

import (
	"math"
	"testing"

	"github.com/splitzee/splitzee/internal/date"
	"github.com/splitzee/splitzee/internal/models"
)

func expense(title string, amount float64, on string, category models.Category) models.Expense {
	return models.Expense{Title: title, Amount: amount, Date: date.MustParse(on), Category: category}
}

func TestByCategoryKeepsFirstSeenOrder(t *testing.T) {
	expenses := []models.Expense{
		expense("Lunch", 10, "2025-03-01", "Food"),
		expense("Snack", 5, "2025-03-02", "Food"),
		expense("Train", 20, "2025-03-02", "Travel"),
	}

	got := ByCategory(expenses)
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}
	if got[0].Category != "Food" || got[0].Amount != 15 {
		t.Errorf("first = %+v, want Food 15", got[0])
	}
	if got[1].Category != "Travel" || got[1].Amount != 20 {
		t.Errorf("second = %+v, want Travel 20", got[1])
	}
	if math.Abs(got[0].Percent-42.86) > 1e-9 || math.Abs(got[1].Percent-57.14) > 1e-9 {
		t.Errorf("percents = %v, %v", got[0].Percent, got[1].Percent)
	}
}

func TestByCategoryNotSorted(t *testing.T) {
	expenses := []models.Expense{
		expense("Taxi", 1, "2025-03-01", models.CategoryTransportation),
		expense("Cinema", 100, "2025-03-01", models.CategoryEntertainment),
		expense("Bus", 1, "2025-03-01", models.CategoryTransportation),
	}
	got := ByCategory(expenses)
	if got[0].Category != models.CategoryTransportation || got[1].Category != models.CategoryEntertainment {
		t.Errorf("order = %v, %v", got[0].Category, got[1].Category)
	}
}

func TestByCategoryEmpty(t *testing.T) {
	if got := ByCategory(nil); len(got) != 0 {
		t.Errorf("ByCategory(nil) = %v, want empty", got)
	}
}

func TestDaily(t *testing.T) {
	today := date.MustParse("2025-03-10")
	expenses := []models.Expense{
		expense("Old", 99, "2025-03-03", "Food"),    // just outside the window
		expense("First", 1.1, "2025-03-04", "Food"), // oldest bucket
		expense("Mid", 2.2, "2025-03-07", "Food"),
		expense("Mid again", 3.3, "2025-03-07", "Food"),
		expense("Today", 4, "2025-03-10", "Food"),
		expense("Future", 50, "2025-03-11", "Food"),
	}

	got := Daily(expenses, today)
	if len(got) != DailyWindow {
		t.Fatalf("got %d buckets, want %d", len(got), DailyWindow)
	}

	want := []struct {
		day    string
		amount float64
	}{
		{"2025-03-04", 1.1},
		{"2025-03-05", 0},
		{"2025-03-06", 0},
		{"2025-03-07", 5.5},
		{"2025-03-08", 0},
		{"2025-03-09", 0},
		{"2025-03-10", 4},
	}
	for i, w := range want {
		if got[i].Date.String() != w.day {
			t.Errorf("bucket %d date = %s, want %s", i, got[i].Date, w.day)
		}
		if math.Abs(got[i].Amount-w.amount) > 1e-9 {
			t.Errorf("bucket %d amount = %v, want %v", i, got[i].Amount, w.amount)
		}
	}
	if got[6].Label != "Mon, Mar 10" {
		t.Errorf("label = %q, want %q", got[6].Label, "Mon, Mar 10")
	}
}

func TestDailyAcrossMonthBoundary(t *testing.T) {
	got := Daily([]models.Expense{expense("NYE", 7, "2024-12-31", "Food")}, date.MustParse("2025-01-02"))
	if got[0].Date.String() != "2024-12-27" {
		t.Errorf("first bucket = %s, want 2024-12-27", got[0].Date)
	}
	if got[4].Amount != 7 {
		t.Errorf("2024-12-31 bucket = %v, want 7", got[4].Amount)
	}
}

func TestTotals(t *testing.T) {
	today := date.MustParse("2025-03-15")
	expenses := []models.Expense{
		expense("a", 0.1, "2025-03-01", "Food"),
		expense("b", 0.2, "2025-03-31", "Food"),
		expense("c", 10, "2025-02-28", "Food"),
		expense("d", 1, "2024-03-10", "Food"),
	}
	if got := Total(expenses); got != 11.3 {
		t.Errorf("Total = %v, want 11.3", got)
	}
	if got := MonthTotal(expenses, today); got != 0.3 {
		t.Errorf("MonthTotal = %v, want 0.3", got)
	}
}

func TestFilter(t *testing.T) {
	expenses := []models.Expense{
		expense("Groceries", 30, "2025-03-01", models.CategoryFood),
		expense("Flight to Rome", 300, "2025-03-01", models.CategoryTravel),
		expense("Dinner out", 45, "2025-03-02", models.CategoryFood),
	}

	tests := []struct {
		name     string
		search   string
		category string
		want     int
	}{
		{"no filters", "", "all", 3},
		{"empty category means all", "", "", 3},
		{"title match is case-insensitive", "ROME", "all", 1},
		{"category name matches search", "dining", "", 2},
		{"category filter", "", string(models.CategoryFood), 2},
		{"search and category", "dinner", string(models.CategoryFood), 1},
		{"no match", "rent", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filter(expenses, tt.search, tt.category); len(got) != tt.want {
				t.Errorf("Filter(%q, %q) returned %d, want %d", tt.search, tt.category, len(got), tt.want)
			}
		})
	}
}

func TestDueSoon(t *testing.T) {
	today := date.MustParse("2025-03-10")
	withDue := func(title, due string) models.Expense {
		e := expense(title, 1, "2025-03-01", models.CategoryBills)
		if due != "" {
			e.DueDate = date.MustParse(due)
		}
		return e
	}
	expenses := []models.Expense{
		withDue("no due date", ""),
		withDue("overdue", "2025-03-01"),
		withDue("in a week", "2025-03-17"),
		withDue("in eight days", "2025-03-18"),
	}
	got := DueSoon(expenses, today)
	if len(got) != 2 || got[0].Title != "overdue" || got[1].Title != "in a week" {
		t.Errorf("DueSoon = %+v", got)
	}
}

func TestBuild(t *testing.T) {
	today := date.MustParse("2025-03-10")
	d := Build([]models.Expense{
		expense("Lunch", 12, "2025-03-10", models.CategoryFood),
		expense("Bus", 3, "2025-03-09", models.CategoryTransportation),
	}, today)

	if d.Count != 2 || d.Total != 15 || d.MonthTotal != 15 {
		t.Errorf("dashboard totals = %+v", d)
	}
	if len(d.ByCategory) != 2 || len(d.Daily) != DailyWindow {
		t.Errorf("dashboard series sizes = %d, %d", len(d.ByCategory), len(d.Daily))
	}
}
