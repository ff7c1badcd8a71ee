package service

import (
	"context"
	"testing"

	"lifeos-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignupDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := env.authService.Signup(ctx, SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "SecurePass123",
		Purpose:  "Healing",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.NotEmpty(t, result.UserID)

	user, err := env.users.GetByID(ctx, result.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0, user.TanaMind)
	assert.Equal(t, 0, user.TanaMoney)
	assert.Equal(t, 0, user.TanaMeaning)
	assert.Equal(t, 3, user.TotalSessions)
	assert.Equal(t, 0, user.SessionsUsed)

	cred, err := env.credentials.GetByUserID(ctx, result.UserID)
	require.NoError(t, err)
	assert.NotEmpty(t, cred.PasswordHash)
	assert.NotEqual(t, "SecurePass123", cred.PasswordHash)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signup(t, "alice@example.com")

	_, err := env.authService.Signup(ctx, SignupRequest{
		Name:     "Impostor",
		Email:    "alice@example.com",
		Password: "other",
		Purpose:  "Direction",
	})
	assert.Equal(t, ErrEmailTaken, err)

	// The failed signup must leave no records behind
	assert.Equal(t, 1, env.countDocs(t, repository.CollectionUser))
	assert.Equal(t, 1, env.countDocs(t, repository.CollectionCredential))
	assert.Equal(t, 1, env.countDocs(t, repository.CollectionAuthToken))
}

func TestAuthService_LoginIssuesFreshToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	signupResult, err := env.authService.Signup(ctx, SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "SecurePass123",
		Purpose:  "Growth",
	})
	require.NoError(t, err)

	loginResult, err := env.authService.Login(ctx, LoginRequest{
		Email:    "alice@example.com",
		Password: "SecurePass123",
	})
	require.NoError(t, err)
	assert.Equal(t, signupResult.UserID, loginResult.UserID)
	assert.NotEqual(t, signupResult.Token, loginResult.Token)

	// The signup token stays valid after login
	identity, err := env.tokenService.Resolve(ctx, signupResult.Token)
	require.NoError(t, err)
	assert.Equal(t, signupResult.UserID, identity.ID)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signup(t, "alice@example.com")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "SecurePass123"},
		{"wrong password", "alice@example.com", "WrongPass"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := env.authService.Login(ctx, LoginRequest{
				Email:    test.email,
				Password: test.password,
			})
			assert.Equal(t, ErrInvalidCredentials, err,
				"both failure modes report the same generic error")
		})
	}
}
