package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeos-backend/crypto"
	"lifeos-backend/repository"
	"lifeos-backend/service"
	"lifeos-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full HTTP surface over an in-memory store,
// mirroring cmd/server
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := store.NewMemoryStore()

	userRepo := repository.NewUserRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	reflectionRepo := repository.NewReflectionRepository(db)
	emailLogRepo := repository.NewEmailLogRepository(db)

	tokenService := service.NewTokenService(
		service.TokenWithTokenRepository(tokenRepo),
		service.TokenWithUserRepository(userRepo),
	)
	authService := service.NewAuthService(
		service.AuthWithUserRepository(userRepo),
		service.AuthWithCredentialRepository(credentialRepo),
		service.AuthWithTokenService(tokenService),
		service.AuthWithPasswordHasher(crypto.NewPasswordHasher("test_salt")),
	)
	userService := service.NewUserService(
		service.UserWithUserRepository(userRepo),
	)
	sessionService := service.NewSessionService(
		service.SessionWithSessionRepository(sessionRepo),
		service.SessionWithUserRepository(userRepo),
		service.SessionWithEmailLogRepository(emailLogRepo),
	)
	reflectionService := service.NewReflectionService(
		service.ReflectionWithReflectionRepository(reflectionRepo),
		service.ReflectionWithUserRepository(userRepo),
	)

	systemHandler := NewSystemHandler(db)
	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	sessionHandler := NewSessionHandler(sessionService)
	reflectionHandler := NewReflectionHandler(reflectionService)

	r := gin.New()
	r.Use(CORS())

	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/test", systemHandler.Test)
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)

	authed := r.Group("/", RequireAuth(tokenService))
	{
		authed.GET("/me", userHandler.Me)
		authed.GET("/dashboard", userHandler.Dashboard)
		authed.POST("/profile", userHandler.UpdateProfile)
		authed.POST("/sessions", sessionHandler.Create)
		authed.GET("/sessions", sessionHandler.List)
		authed.POST("/reflections", reflectionHandler.Create)
		authed.GET("/reflections", reflectionHandler.List)
	}

	return r
}

// doJSON performs a request with an optional bearer token and JSON body
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded),
			"response body should be JSON: %s", w.Body.String())
	}
	return w, decoded
}

// signupUser registers a user and returns (token, userID)
func signupUser(t *testing.T, r *gin.Engine, email string) (string, string) {
	t.Helper()

	w, body := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"name":     "Alice",
		"email":    email,
		"password": "SecurePass123",
		"purpose":  "Growth",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := body["token"].(string)
	userID, _ := body["user_id"].(string)
	require.NotEmpty(t, token)
	require.NotEmpty(t, userID)
	return token, userID
}
