package auth

import (
	"errors"
	"regexp"
	"strings"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var (
	ErrMissingFields    = errors.New("please fill in all fields")
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrWeakPassword     = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SignUp is the registration form.
type SignUp struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate checks the form in the order the fields are shown and
// returns the first problem found.
func (f SignUp) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" ||
		f.Password == "" || f.ConfirmPassword == "" {
		return ErrMissingFields
	}
	if !ValidEmail(f.Email) {
		return ErrInvalidEmail
	}
	if len(f.Password) < MinPasswordLength {
		return ErrWeakPassword
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// ValidateSignIn checks a sign-in form before any lookup happens.
func ValidateSignIn(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingFields
	}
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}
