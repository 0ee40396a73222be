// Package api defines the splitzee.v1 RPC messages and the Connect
// handlers and clients that carry them.
package api

import "encoding/json"

// Participant is one person in a split.
type Participant struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage,omitempty"`
}

type CalculateSplitRequest struct {
	Total        float64       `json:"total"`
	Strategy     string        `json:"strategy"`
	Participants []Participant `json:"participants"`
	Notes        string        `json:"notes,omitempty"`
}

type CalculateSplitResponse struct {
	Total        float64       `json:"total"`
	Strategy     string        `json:"strategy"`
	Participants []Participant `json:"participants"`
	Notes        string        `json:"notes,omitempty"`
}

// ExportSplitRequest computes a split and renders it for sharing.
type ExportSplitRequest struct {
	CalculateSplitRequest
}

type ExportSplitResponse struct {
	Filename  string `json:"filename"`
	CSV       string `json:"csv"`
	ShareText string `json:"shareText"`
}

type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type ListCurrenciesRequest struct{}

type ListCurrenciesResponse struct {
	Base       string     `json:"base"`
	Currencies []Currency `json:"currencies"`
}

type ConvertRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	Rate      float64 `json:"rate"`
	Formatted string  `json:"formatted"`
}

// Expense is the wire form of a tracked expense. Dates are YYYY-MM-DD.
type Expense struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	DueDate     string  `json:"dueDate,omitempty"`
	IsRecurring bool    `json:"isRecurring,omitempty"`
}

type CreateExpenseRequest struct {
	Expense Expense `json:"expense"`
}

type CreateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type UpdateExpenseRequest struct {
	Expense Expense `json:"expense"`
}

type UpdateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

// ListExpensesRequest filters the caller's expenses.
// Category "" or "all" matches every category.
type ListExpensesRequest struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

// GetDashboardRequest optionally pins "today" (YYYY-MM-DD); empty means the server's date.
type GetDashboardRequest struct {
	Today string `json:"today,omitempty"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

type DailyTotal struct {
	Date   string  `json:"date"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type GetDashboardResponse struct {
	Total      float64         `json:"total"`
	MonthTotal float64         `json:"monthTotal"`
	Count      int             `json:"count"`
	ByCategory []CategoryTotal `json:"byCategory"`
	Daily      []DailyTotal    `json:"daily"`
	DueSoon    []Expense       `json:"dueSoon"`
}

type ExportExpensesRequest struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
}

type ExportExpensesResponse struct {
	Filename string `json:"filename"`
	CSV      string `json:"csv"`
}

// ImportExpensesRequest carries a browser snapshot: the JSON array stored
// under the splitzee-expenses key.
type ImportExpensesRequest struct {
	Expenses json.RawMessage `json:"expenses"`
}

type ImportExpensesResponse struct {
	Imported int `json:"imported"`
}

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type SignUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type SignUpResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User User `json:"user"`
}
