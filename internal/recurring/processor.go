// Package recurring turns recurring expense templates into dated occurrences.
package recurring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/splitzee/splitzee/internal/date"
	"github.com/splitzee/splitzee/internal/metrics"
	"github.com/splitzee/splitzee/internal/models"
)

// MaxCatchUp bounds the occurrences created for one template in one run.
// A template further behind is finished on later runs.
const MaxCatchUp = 36

// Store is the storage the processor needs.
type Store interface {
	ListRecurringDue(ctx context.Context, onOrBefore date.Date) ([]models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	AdvanceDueDate(ctx context.Context, id string, due date.Date) error
}

// Processor creates expenses from recurring templates whose due date has come.
type Processor struct {
	store   Store
	metrics *metrics.Metrics
}

// NewProcessor creates a processor. m may be nil.
func NewProcessor(store Store, m *metrics.Metrics) *Processor {
	return &Processor{store: store, metrics: m}
}

// ProcessDue handles every template due on or before today and returns how many
// occurrences were created. A failing template is logged and skipped.
func (p *Processor) ProcessDue(ctx context.Context, today date.Date) (int, error) {
	templates, err := p.store.ListRecurringDue(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to list due recurring expenses: %w", err)
	}

	slog.InfoContext(ctx, "Processing recurring expenses",
		"due_templates", len(templates),
		"processing_date", today.String())

	created := 0
	for i := range templates {
		n, err := p.processTemplate(ctx, &templates[i], today)
		created += n
		if err != nil {
			slog.ErrorContext(ctx, "Failed to process recurring expense",
				"expense_id", templates[i].ID,
				"title", templates[i].Title,
				"error", err)
		}
	}
	p.metrics.RecurringCreated(created)

	slog.InfoContext(ctx, "Recurring expense processing complete",
		"created", created,
		"templates", len(templates))
	return created, nil
}

// processTemplate records one occurrence per missed month and moves the
// template's due date past today. Each step lands on the template's recurring
// day, clamped to the end of shorter months.
func (p *Processor) processTemplate(ctx context.Context, tmpl *models.Expense, today date.Date) (int, error) {
	day := tmpl.RecurringDay
	if day == 0 {
		day = tmpl.DueDate.Day()
	}

	created := 0
	due := tmpl.DueDate
	for !due.After(today) && created < MaxCatchUp {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		occurrence := Occurrence(*tmpl, due)
		if err := p.store.CreateExpense(ctx, &occurrence); err != nil {
			return created, fmt.Errorf("failed to create occurrence for %s: %w", due, err)
		}
		created++
		due = due.MonthDay(1, day)
	}

	if created == 0 {
		return 0, nil
	}

	// Advance even on partial progress so the same months are not recorded twice.
	if err := p.store.AdvanceDueDate(ctx, tmpl.ID, due); err != nil {
		return created, fmt.Errorf("failed to advance due date: %w", err)
	}

	slog.InfoContext(ctx, "Created expenses from recurring template",
		"expense_id", tmpl.ID,
		"created", created,
		"next_due", due.String())
	return created, nil
}

// Occurrence returns the one-off expense recorded for tmpl on day.
func Occurrence(tmpl models.Expense, day date.Date) models.Expense {
	return models.Expense{
		UserID:   tmpl.UserID,
		Title:    tmpl.Title,
		Amount:   tmpl.Amount,
		Date:     day,
		Category: tmpl.Category,
		Notes:    tmpl.Notes,
		Currency: tmpl.Currency,
	}
}
