package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/splitzee/splitzee/internal/currency"
	"github.com/splitzee/splitzee/internal/date"
	"github.com/splitzee/splitzee/internal/models"
	"github.com/splitzee/splitzee/internal/report"
	"github.com/splitzee/splitzee/internal/storage"
	"github.com/splitzee/splitzee/pkg/api"
)

func participantsFromAPI(in []api.Participant) []models.Participant {
	out := make([]models.Participant, len(in))
	for i, p := range in {
		out[i] = models.Participant{ID: p.ID, Name: p.Name, Amount: p.Amount, Percentage: p.Percentage}
	}
	return out
}

func participantsToAPI(in []models.Participant) []api.Participant {
	out := make([]api.Participant, len(in))
	for i, p := range in {
		out[i] = api.Participant{ID: p.ID, Name: p.Name, Amount: p.Amount, Percentage: p.Percentage}
	}
	return out
}

// expenseFromAPI parses the wire expense. Only date parsing fails here;
// field rules are checked by models.Expense.Validate.
func expenseFromAPI(in api.Expense) (models.Expense, error) {
	out := models.Expense{
		ID:          in.ID,
		Title:       in.Title,
		Amount:      in.Amount,
		Category:    models.Category(in.Category),
		Notes:       in.Notes,
		Currency:    currency.Normalize(in.Currency),
		IsRecurring: in.IsRecurring,
	}
	var err error
	if in.Date != "" {
		if out.Date, err = date.Parse(in.Date); err != nil {
			return models.Expense{}, err
		}
	}
	if in.DueDate != "" {
		if out.DueDate, err = date.Parse(in.DueDate); err != nil {
			return models.Expense{}, fmt.Errorf("due date: %w", err)
		}
	}
	return out, nil
}

func expenseToAPI(e models.Expense) api.Expense {
	return api.Expense{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount,
		Date:        e.Date.String(),
		Category:    string(e.Category),
		Notes:       e.Notes,
		Currency:    string(e.Currency),
		DueDate:     e.DueDate.String(),
		IsRecurring: e.IsRecurring,
	}
}

func expensesToAPI(in []models.Expense) []api.Expense {
	out := make([]api.Expense, len(in))
	for i, e := range in {
		out[i] = expenseToAPI(e)
	}
	return out
}

func dashboardToAPI(d report.Dashboard) *api.GetDashboardResponse {
	resp := &api.GetDashboardResponse{
		Total:      d.Total,
		MonthTotal: d.MonthTotal,
		Count:      d.Count,
		ByCategory: make([]api.CategoryTotal, len(d.ByCategory)),
		Daily:      make([]api.DailyTotal, len(d.Daily)),
		DueSoon:    expensesToAPI(d.DueSoon),
	}
	for i, c := range d.ByCategory {
		resp.ByCategory[i] = api.CategoryTotal{Category: string(c.Category), Amount: c.Amount, Percent: c.Percent}
	}
	for i, day := range d.Daily {
		resp.Daily[i] = api.DailyTotal{Date: day.Date.String(), Label: day.Label, Amount: day.Amount}
	}
	return resp
}

func userToAPI(u *models.User) api.User {
	return api.User{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}

// storeError maps a storage failure to a Connect error.
func storeError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
