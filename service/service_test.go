package service

import (
	"context"
	"testing"

	"lifeos-backend/crypto"
	"lifeos-backend/models"
	"lifeos-backend/repository"
	"lifeos-backend/store"

	"github.com/stretchr/testify/require"
)

// testEnv wires every service over an in-memory store, mirroring the
// production wiring in cmd/server
type testEnv struct {
	store       *store.MemoryStore
	users       *repository.UserRepository
	credentials *repository.CredentialRepository
	tokens      *repository.TokenRepository
	sessions    *repository.SessionRepository
	reflections *repository.ReflectionRepository
	emailLogs   *repository.EmailLogRepository

	tokenService      *TokenService
	authService       *AuthService
	userService       *UserService
	sessionService    *SessionService
	reflectionService *ReflectionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := store.NewMemoryStore()
	env := &testEnv{
		store:       db,
		users:       repository.NewUserRepository(db),
		credentials: repository.NewCredentialRepository(db),
		tokens:      repository.NewTokenRepository(db),
		sessions:    repository.NewSessionRepository(db),
		reflections: repository.NewReflectionRepository(db),
		emailLogs:   repository.NewEmailLogRepository(db),
	}

	env.tokenService = NewTokenService(
		TokenWithTokenRepository(env.tokens),
		TokenWithUserRepository(env.users),
	)
	env.authService = NewAuthService(
		AuthWithUserRepository(env.users),
		AuthWithCredentialRepository(env.credentials),
		AuthWithTokenService(env.tokenService),
		AuthWithPasswordHasher(crypto.NewPasswordHasher("test_salt")),
	)
	env.userService = NewUserService(
		UserWithUserRepository(env.users),
	)
	env.sessionService = NewSessionService(
		SessionWithSessionRepository(env.sessions),
		SessionWithUserRepository(env.users),
		SessionWithEmailLogRepository(env.emailLogs),
	)
	env.reflectionService = NewReflectionService(
		ReflectionWithReflectionRepository(env.reflections),
		ReflectionWithUserRepository(env.users),
	)
	return env
}

// signup registers a user and returns its id
func (env *testEnv) signup(t *testing.T, email string) string {
	t.Helper()

	result, err := env.authService.Signup(context.Background(), SignupRequest{
		Name:     "Alice",
		Email:    email,
		Password: "SecurePass123",
		Purpose:  models.PurposeGrowth,
	})
	require.NoError(t, err)
	return result.UserID
}

// countDocs counts documents in a collection
func (env *testEnv) countDocs(t *testing.T, collection string) int {
	t.Helper()

	docs, err := env.store.Find(context.Background(), collection, store.Filter{}, 0)
	require.NoError(t, err)
	return len(docs)
}
