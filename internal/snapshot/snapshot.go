// Package snapshot reads and writes the JSON state the web client keeps in
// browser storage, so it can be imported into the server or inspected offline.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/splitzee/splitzee/internal/models"
)

// Keys under which the web client stores its state.
const (
	ExpensesKey = "splitzee-expenses"
	UserKey     = "splitzee-user"
)

// User is the signed-in user record kept by the web client.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DecodeExpenses decodes a JSON array of expenses. A JSON null decodes to an empty list.
func DecodeExpenses(r io.Reader) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := json.NewDecoder(r).Decode(&expenses); err != nil {
		return nil, fmt.Errorf("failed to decode expenses snapshot: %w", err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

// EncodeExpenses writes expenses as a JSON array.
func EncodeExpenses(w io.Writer, expenses []models.Expense) error {
	if expenses == nil {
		expenses = []models.Expense{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(expenses); err != nil {
		return fmt.Errorf("failed to encode expenses snapshot: %w", err)
	}
	return nil
}

// DecodeUser decodes the web client's user record.
func DecodeUser(r io.Reader) (*User, error) {
	var u User
	if err := json.NewDecoder(r).Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user snapshot: %w", err)
	}
	return &u, nil
}

// LoadExpensesFile reads an expenses snapshot from path.
func LoadExpensesFile(path string) ([]models.Expense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeExpenses(f)
}

// SaveExpensesFile overwrites path with an expenses snapshot.
func SaveExpensesFile(path string, expenses []models.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeExpenses(f, expenses); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
