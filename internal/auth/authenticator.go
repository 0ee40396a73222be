// Package auth implements account sign-up, sign-in and session tokens.
package auth

import (
	"context"

	"github.com/splitzee/splitzee/internal/models"
)

// Authenticator registers and verifies user accounts.
// The service layer depends on this interface so the credential scheme can change
// without touching the RPC handlers.
type Authenticator interface {
	// Register validates the sign-up form and creates the account.
	Register(ctx context.Context, form SignUp) (*models.User, error)

	// Authenticate verifies an email and password and returns the matching user.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// UserStorage is the subset of storage the authenticator needs.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
