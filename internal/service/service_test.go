package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/splitzee/splitzee/internal/auth"
	"github.com/splitzee/splitzee/internal/middleware"
	"github.com/splitzee/splitzee/internal/models"
	"github.com/splitzee/splitzee/internal/storage/sqlite"
	"github.com/splitzee/splitzee/pkg/api"
)

const testSecret = "test-secret-0123456789"

// testAuthInterceptor returns a Connect interceptor that sets a fixed user ID in the context.
func testAuthInterceptor(userID string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			return next(middleware.WithUser(ctx, userID, ""), req)
		}
	}
}

type testEnv struct {
	store    *sqlite.SQLiteStore
	server   *httptest.Server
	split    *api.SplitServiceClient
	currency *api.CurrencyServiceClient
	auth     *api.AuthServiceClient
}

// setupTestServer starts all services on an httptest server backed by a fresh SQLite database.
// Expense clients are created per user with expenseClientFor.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	tokens := auth.NewTokenManager(testSecret, time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	mux := http.NewServeMux()
	mux.Handle(api.NewSplitServiceHandler(NewSplitService(nil)))
	mux.Handle(api.NewCurrencyServiceHandler(NewCurrencyService()))
	mux.Handle(api.NewAuthServiceHandler(
		NewAuthService(authenticator, tokens, store, nil),
		connect.WithInterceptors(middleware.OptionalAuth(tokens)),
	))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		store:    store,
		server:   server,
		split:    api.NewSplitServiceClient(http.DefaultClient, server.URL),
		currency: api.NewCurrencyServiceClient(http.DefaultClient, server.URL),
		auth:     api.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

// expenseClientFor creates a user and an ExpenseService client acting as that user.
func (env *testEnv) expenseClientFor(t *testing.T, email string) (*api.ExpenseServiceClient, *ExpenseService, *models.User) {
	t.Helper()

	user := models.NewUser(email, email, "hash")
	if err := env.store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	svc := NewExpenseService(env.store)
	path, handler := api.NewExpenseServiceHandler(svc, connect.WithInterceptors(testAuthInterceptor(user.ID)))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return api.NewExpenseServiceClient(http.DefaultClient, server.URL), svc, user
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("error code = %v, want %v (error: %v)", got, want, err)
	}
}
