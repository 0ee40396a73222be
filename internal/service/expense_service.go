package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/splitzee/splitzee/internal/auth"
	"github.com/splitzee/splitzee/internal/date"
	"github.com/splitzee/splitzee/internal/export"
	"github.com/splitzee/splitzee/internal/middleware"
	"github.com/splitzee/splitzee/internal/models"
	"github.com/splitzee/splitzee/internal/report"
	"github.com/splitzee/splitzee/internal/snapshot"
	"github.com/splitzee/splitzee/internal/storage"
	"github.com/splitzee/splitzee/pkg/api"
)

var _ api.ExpenseServiceHandler = (*ExpenseService)(nil)

var ErrMissingExpenseID = errors.New("expense id is required")

// ExpenseService implements the Connect ExpenseService.
// Every call acts on the expenses of the authenticated user only.
type ExpenseService struct {
	store storage.ExpenseStore
	today func() date.Date
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.ExpenseStore) *ExpenseService {
	return &ExpenseService{store: store, today: date.Today}
}

func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// ownedExpense loads an expense and hides it when it belongs to someone else.
func (s *ExpenseService) ownedExpense(ctx context.Context, userID, id string) (*models.Expense, error) {
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingExpenseID)
	}
	expense, err := s.store.GetExpense(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	if expense.UserID != userID {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound))
	}
	return expense, nil
}

// validExpense parses and validates a submitted expense.
func validExpense(in api.Expense) (models.Expense, error) {
	expense, err := expenseFromAPI(in)
	if err != nil {
		return models.Expense{}, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err := expense.Validate(); err != nil {
		return models.Expense{}, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return expense, nil
}

// CreateExpense stores a new expense for the caller.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateExpense request received", "user_id", userID, "title", req.Msg.Expense.Title)

	expense, err := validExpense(req.Msg.Expense)
	if err != nil {
		return nil, err
	}
	expense.ID = "" // always server-assigned
	expense.UserID = userID

	if err := s.store.CreateExpense(ctx, &expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expense created", "expense_id", expense.ID)
	return connect.NewResponse(&api.CreateExpenseResponse{Expense: expenseToAPI(expense)}), nil
}

// UpdateExpense replaces the editable fields of one of the caller's expenses.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateExpense request received", "user_id", userID, "expense_id", req.Msg.Expense.ID)

	existing, err := s.ownedExpense(ctx, userID, req.Msg.Expense.ID)
	if err != nil {
		return nil, err
	}
	updated, err := validExpense(req.Msg.Expense)
	if err != nil {
		return nil, err
	}
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt

	if err := s.store.UpdateExpense(ctx, &updated); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", updated.ID, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.UpdateExpenseResponse{Expense: expenseToAPI(updated)}), nil
}

// DeleteExpense removes one of the caller's expenses.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteExpense request received", "user_id", userID, "expense_id", req.Msg.ID)

	if _, err := s.ownedExpense(ctx, userID, req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteExpense(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ID, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// listFiltered returns the caller's expenses after search and category filtering.
func (s *ExpenseService) listFiltered(ctx context.Context, userID, search, category string) ([]models.Expense, error) {
	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	return report.Filter(expenses, search, category), nil
}

// ListExpenses returns the caller's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListExpenses request received", "user_id", userID, "search", req.Msg.Search, "category", req.Msg.Category)

	expenses, err := s.listFiltered(ctx, userID, req.Msg.Search, req.Msg.Category)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, err
	}

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: expensesToAPI(expenses)}), nil
}

// GetDashboard returns totals, the category breakdown and the daily series.
func (s *ExpenseService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetDashboard request received", "user_id", userID)

	today := s.today()
	if req.Msg.Today != "" {
		if today, err = date.Parse(req.Msg.Today); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		slog.Error("GetDashboard failed", "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(dashboardToAPI(report.Build(expenses, today))), nil
}

// ExportExpenses renders the caller's (filtered) expenses as CSV.
func (s *ExpenseService) ExportExpenses(ctx context.Context, req *connect.Request[api.ExportExpensesRequest]) (*connect.Response[api.ExportExpensesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ExportExpenses request received", "user_id", userID)

	expenses, err := s.listFiltered(ctx, userID, req.Msg.Search, req.Msg.Category)
	if err != nil {
		slog.Error("ExportExpenses failed", "error", err)
		return nil, err
	}

	csv, err := export.ExpensesCSV(expenses)
	if err != nil {
		slog.Error("ExportExpenses CSV failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ExportExpensesResponse{
		Filename: export.ExpensesFilename,
		CSV:      csv,
	}), nil
}

// ImportExpenses stores every expense of a browser snapshot for the caller.
// The snapshot is validated as a whole; nothing is stored if any entry is invalid.
func (s *ExpenseService) ImportExpenses(ctx context.Context, req *connect.Request[api.ImportExpensesRequest]) (*connect.Response[api.ImportExpensesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ImportExpenses request received", "user_id", userID, "bytes", len(req.Msg.Expenses))

	if len(req.Msg.Expenses) == 0 {
		return connect.NewResponse(&api.ImportExpensesResponse{}), nil
	}

	expenses, err := snapshot.DecodeExpenses(bytes.NewReader(req.Msg.Expenses))
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	for i := range expenses {
		e := &expenses[i]
		if err := e.Validate(); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("expense %d (%q): %w", i+1, e.Title, err))
		}
		e.ID = ""
		e.UserID = userID
		e.CreatedAt, e.UpdatedAt = 0, 0
	}

	if err := s.store.CreateExpenses(ctx, expenses); err != nil {
		slog.Error("ImportExpenses failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expenses imported", "user_id", userID, "count", len(expenses))
	return connect.NewResponse(&api.ImportExpensesResponse{Imported: len(expenses)}), nil
}
