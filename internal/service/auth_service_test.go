package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/splitzee/splitzee/pkg/api"
)

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestSignUpSignInAndGetCurrentUser(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	signUp, err := env.auth.SignUp(ctx, connect.NewRequest(&api.SignUpRequest{
		Name:            "Alice",
		Email:           "Alice@Example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}))
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if signUp.Msg.Token == "" || signUp.Msg.User.Email != "alice@example.com" || signUp.Msg.User.DisplayName != "Alice" {
		t.Errorf("sign up response = %+v", signUp.Msg)
	}

	signIn, err := env.auth.SignIn(ctx, connect.NewRequest(&api.SignInRequest{Email: "alice@example.com", Password: "secret1"}))
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if signIn.Msg.User.ID != signUp.Msg.User.ID {
		t.Errorf("sign in user = %+v", signIn.Msg.User)
	}

	me, err := env.auth.GetCurrentUser(ctx, withToken(&api.GetCurrentUserRequest{}, signIn.Msg.Token))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if me.Msg.User.DisplayName != "Alice" || me.Msg.User.ID != signUp.Msg.User.ID {
		t.Errorf("current user = %+v", me.Msg.User)
	}
}

func TestSignUp_Errors(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	if _, err := env.auth.SignUp(ctx, connect.NewRequest(&api.SignUpRequest{
		Name: "Bob", Email: "bob@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	tests := []struct {
		name string
		req  *api.SignUpRequest
		code connect.Code
	}{
		{"missing fields", &api.SignUpRequest{Email: "c@example.com", Password: "secret1", ConfirmPassword: "secret1"}, connect.CodeInvalidArgument},
		{"invalid email", &api.SignUpRequest{Name: "C", Email: "c@example", Password: "secret1", ConfirmPassword: "secret1"}, connect.CodeInvalidArgument},
		{"weak password", &api.SignUpRequest{Name: "C", Email: "c@example.com", Password: "12345", ConfirmPassword: "12345"}, connect.CodeInvalidArgument},
		{"mismatch", &api.SignUpRequest{Name: "C", Email: "c@example.com", Password: "secret1", ConfirmPassword: "secret2"}, connect.CodeInvalidArgument},
		{"duplicate email", &api.SignUpRequest{Name: "B", Email: "BOB@example.com", Password: "secret1", ConfirmPassword: "secret1"}, connect.CodeAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.SignUp(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, tt.code)
		})
	}
}

func TestSignIn_Errors(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	if _, err := env.auth.SignUp(ctx, connect.NewRequest(&api.SignUpRequest{
		Name: "Dana", Email: "dana@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	tests := []struct {
		name string
		req  *api.SignInRequest
		code connect.Code
	}{
		{"missing password", &api.SignInRequest{Email: "dana@example.com"}, connect.CodeInvalidArgument},
		{"invalid email", &api.SignInRequest{Email: "dana", Password: "secret1"}, connect.CodeInvalidArgument},
		{"wrong password", &api.SignInRequest{Email: "dana@example.com", Password: "nope123"}, connect.CodeUnauthenticated},
		{"unknown user", &api.SignInRequest{Email: "eve@example.com", Password: "secret1"}, connect.CodeUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.SignIn(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, tt.code)
		})
	}
}

func TestGetCurrentUser_Unauthenticated(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	_, err := env.auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = env.auth.GetCurrentUser(ctx, withToken(&api.GetCurrentUserRequest{}, "not-a-jwt"))
	assertCode(t, err, connect.CodeUnauthenticated)
}
