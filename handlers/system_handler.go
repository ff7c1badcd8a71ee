package handlers

import (
	"net/http"
	"os"

	"lifeos-backend/store"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the unauthenticated status and diagnostics endpoints
type SystemHandler struct {
	store store.Store
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db store.Store) *SystemHandler {
	return &SystemHandler{store: db}
}

// Root handles GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "LifeOS × TANA backend running"})
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Test handles GET /test. Store failures are summarized as text in the
// response body rather than propagated, since the endpoint exists to
// introspect connectivity.
func (h *SystemHandler) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envFlag("DATABASE_URL"),
		"database_name":     envFlag("DATABASE_NAME"),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store == nil {
		response["database"] = "⚠️ Available but not initialized"
		c.JSON(http.StatusOK, response)
		return
	}

	ctx := c.Request.Context()
	if err := h.store.Ping(ctx); err != nil {
		response["database"] = "❌ Error: " + truncate(err.Error(), 80)
		c.JSON(http.StatusOK, response)
		return
	}

	names, err := h.store.Collections(ctx)
	if err != nil {
		response["database"] = "⚠️ Connected but error: " + truncate(err.Error(), 80)
		c.JSON(http.StatusOK, response)
		return
	}

	if len(names) > 10 {
		names = names[:10]
	}
	response["collections"] = names
	response["database"] = "✅ Connected & Working"
	response["connection_status"] = "Connected"
	c.JSON(http.StatusOK, response)
}

func envFlag(name string) string {
	if os.Getenv(name) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
