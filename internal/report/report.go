// Package report aggregates expense lists into the series the dashboard draws.
package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splitzee/splitzee/internal/date"
	"github.com/splitzee/splitzee/internal/models"
)

// DailyWindow is the number of days in the daily spending series.
const DailyWindow = 7

// DueSoonWindow is how many days ahead a due date counts as "due soon".
const DueSoonWindow = 7

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Amount   float64         `json:"amount"`
	// Percent is Amount as a share of all categories, 0-100.
	Percent float64 `json:"percent"`
}

// DailyTotal is the summed amount of one calendar day.
type DailyTotal struct {
	Date date.Date `json:"date"`
	// Label is a short display label such as "Mon, Jan 2".
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Dashboard is everything the tracker page renders, computed in one pass.
type Dashboard struct {
	Total      float64          `json:"total"`
	MonthTotal float64          `json:"monthTotal"`
	Count      int              `json:"count"`
	ByCategory []CategoryTotal  `json:"byCategory"`
	Daily      []DailyTotal     `json:"daily"`
	DueSoon    []models.Expense `json:"dueSoon"`
}

// Build computes the dashboard for expenses as seen on today.
func Build(expenses []models.Expense, today date.Date) Dashboard {
	return Dashboard{
		Total:      Total(expenses),
		MonthTotal: MonthTotal(expenses, today),
		Count:      len(expenses),
		ByCategory: ByCategory(expenses),
		Daily:      Daily(expenses, today),
		DueSoon:    DueSoon(expenses, today),
	}
}

// ByCategory sums amounts per category.
// Categories appear in the order they are first met in expenses.
func ByCategory(expenses []models.Expense) []CategoryTotal {
	var out []CategoryTotal
	index := make(map[models.Category]int)
	sums := make([]decimal.Decimal, 0)
	grand := decimal.Zero

	for _, e := range expenses {
		amount := decimal.NewFromFloat(e.Amount)
		grand = grand.Add(amount)
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			out = append(out, CategoryTotal{Category: e.Category})
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(amount)
	}

	for i := range out {
		out[i].Amount = sums[i].InexactFloat64()
		if grand.IsPositive() {
			out[i].Percent = sums[i].Mul(decimal.NewFromInt(100)).Div(grand).Round(2).InexactFloat64()
		}
	}
	return out
}

// Daily sums amounts per day over the DailyWindow days ending on today,
// oldest first. Days without expenses are present with a zero amount.
func Daily(expenses []models.Expense, today date.Date) []DailyTotal {
	first := today.AddDays(-(DailyWindow - 1))
	sums := make([]decimal.Decimal, DailyWindow)
	for i := range sums {
		sums[i] = decimal.Zero
	}

	for _, e := range expenses {
		if e.Date.Before(first) || e.Date.After(today) {
			continue
		}
		i := int(e.Date.Time().Sub(first.Time()).Hours() / 24)
		sums[i] = sums[i].Add(decimal.NewFromFloat(e.Amount))
	}

	out := make([]DailyTotal, DailyWindow)
	for i := range out {
		d := first.AddDays(i)
		out[i] = DailyTotal{
			Date:   d,
			Label:  d.Time().Format("Mon, Jan 2"),
			Amount: sums[i].InexactFloat64(),
		}
	}
	return out
}

// Total sums all amounts.
func Total(expenses []models.Expense) float64 {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(decimal.NewFromFloat(e.Amount))
	}
	return sum.InexactFloat64()
}

// MonthTotal sums the amounts dated in today's calendar month.
func MonthTotal(expenses []models.Expense, today date.Date) float64 {
	sum := decimal.Zero
	for _, e := range expenses {
		if e.Date.SameMonth(today) {
			sum = sum.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	return sum.InexactFloat64()
}

// Filter keeps expenses whose title or category contains search
// (case-insensitive) and whose category equals category.
// An empty search matches everything; category "" or "all" matches every category.
func Filter(expenses []models.Expense, search string, category string) []models.Expense {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if category != "" && category != "all" && string(e.Category) != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.Title), needle) &&
			!strings.Contains(strings.ToLower(string(e.Category)), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// DueSoon returns expenses with a due date on or before today+DueSoonWindow.
// Overdue expenses are included.
func DueSoon(expenses []models.Expense, today date.Date) []models.Expense {
	limit := today.AddDays(DueSoonWindow)
	var out []models.Expense
	for _, e := range expenses {
		if !e.DueDate.IsZero() && !e.DueDate.After(limit) {
			out = append(out, e)
		}
	}
	return out
}
