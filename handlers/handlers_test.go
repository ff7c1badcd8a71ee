package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootAndHealth(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "LifeOS × TANA backend running", body["message"])

	w, body = doJSON(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestTestEndpointReportsConnectivity(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/test", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "Connected", body["connection_status"])
}

func TestSignupValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing name", gin.H{"email": "a@b.com", "password": "x", "purpose": "Growth"}},
		{"bad email", gin.H{"name": "A", "email": "not-an-email", "password": "x", "purpose": "Growth"}},
		{"bad purpose", gin.H{"name": "A", "email": "a@b.com", "password": "x", "purpose": "Wealth"}},
		{"age out of range", gin.H{"name": "A", "email": "a@b.com", "password": "x", "purpose": "Growth", "age": 200}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w, _ := doJSON(t, r, http.MethodPost, "/auth/signup", "", test.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)
	signupUser(t, r, "alice@example.com")

	w, body := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"name":     "Impostor",
		"email":    "alice@example.com",
		"password": "other",
		"purpose":  "Healing",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestLoginFlow(t *testing.T) {
	r := newTestRouter(t)
	signupToken, userID := signupUser(t, r, "alice@example.com")

	w, body := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "SecurePass123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, body["user_id"])
	assert.NotEqual(t, signupToken, body["token"], "login issues a fresh token")

	w, _ = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardShape(t *testing.T) {
	r := newTestRouter(t)
	token, _ := signupUser(t, r, "alice@example.com")

	w, body := doJSON(t, r, http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	tana, ok := body["tana"].(map[string]interface{})
	require.True(t, ok, "dashboard carries a tana object")
	assert.Equal(t, float64(0), tana["mind"])

	percentages, ok := tana["percentages"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), percentages["mind"])
	assert.Equal(t, float64(0), percentages["money"])
	assert.Equal(t, float64(0), percentages["meaning"])

	sessions, ok := body["sessions"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), sessions["used"])
	assert.Equal(t, float64(3), sessions["total"])
}

func TestProfileUpdate(t *testing.T) {
	r := newTestRouter(t)
	token, _ := signupUser(t, r, "alice@example.com")

	w, body := doJSON(t, r, http.MethodPost, "/profile", token, gin.H{"name": "Alice Renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["updated"])

	w, body = doJSON(t, r, http.MethodPost, "/profile", token, gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["updated"])

	w, body = doJSON(t, r, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice Renamed", body["name"])
}

func TestSessionBookingAndListing(t *testing.T) {
	r := newTestRouter(t)
	aliceToken, _ := signupUser(t, r, "alice@example.com")
	bobToken, _ := signupUser(t, r, "bob@example.com")

	// Alice books; the spoofed user_id is ignored
	w, body := doJSON(t, r, http.MethodPost, "/sessions", aliceToken, gin.H{
		"user_id": "spoofed-id",
		"topic":   "Mind reset",
		"date":    "2026-09-15",
		"time":    "10:00",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["created"])
	assert.NotEmpty(t, body["id"])

	// Bob sees none of Alice's sessions
	w, body = doJSON(t, r, http.MethodGet, "/sessions", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, items)

	// Alice sees her own, with the id projected to a string
	w, body = doJSON(t, r, http.MethodGet, "/sessions", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items, ok = body["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.NotEmpty(t, item["id"])
	assert.Nil(t, item["_id"])
}

func TestSessionQuotaSoftLimit(t *testing.T) {
	r := newTestRouter(t)
	token, _ := signupUser(t, r, "alice@example.com")

	booking := gin.H{"topic": "general chat", "date": "2026-09-15", "time": "10:00"}
	for i := 0; i < 3; i++ {
		w, body := doJSON(t, r, http.MethodPost, "/sessions", token, booking)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, true, body["created"], "booking %d should succeed", i+1)
	}

	w, body := doJSON(t, r, http.MethodPost, "/sessions", token, booking)
	require.Equal(t, http.StatusOK, w.Code, "quota exhaustion is not an HTTP error")
	assert.Equal(t, true, body["limited"])
	assert.Nil(t, body["created"])
}

func TestReflectionOwnership(t *testing.T) {
	r := newTestRouter(t)
	aliceToken, aliceID := signupUser(t, r, "alice@example.com")
	_, bobID := signupUser(t, r, "bob@example.com")

	w, _ := doJSON(t, r, http.MethodPost, "/reflections", aliceToken, gin.H{
		"user_id":    bobID,
		"pillar":     "Mind",
		"entry_text": "not mine",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/reflections", aliceToken, gin.H{
		"user_id":    aliceID,
		"pillar":     "Mind",
		"entry_text": "mine",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["created"])

	w, body = doJSON(t, r, http.MethodGet, "/reflections", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
}
