package handlers

import (
	"net/http"

	"lifeos-backend/models"
	"lifeos-backend/service"
	"lifeos-backend/store"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles HTTP requests for session bookings
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateSessionRequest represents the request body for booking a session.
// Any client-supplied user_id is ignored; the server uses the caller's id.
type CreateSessionRequest struct {
	UserID     string  `json:"user_id"`
	Topic      string  `json:"topic" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Time       string  `json:"time" binding:"required"`
	Feedback   *string `json:"feedback"`
	SpatialURL *string `json:"spatial_url"`
	Status     string  `json:"status" binding:"omitempty,oneof=requested scheduled completed cancelled"`
}

// Create handles POST /sessions
func (h *SessionHandler) Create(c *gin.Context) {
	current := CurrentUser(c)

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	session := &models.Session{
		Topic:      req.Topic,
		Date:       req.Date,
		Time:       req.Time,
		Feedback:   req.Feedback,
		SpatialURL: req.SpatialURL,
		Status:     models.SessionStatus(req.Status),
	}

	result, err := h.sessionService.Book(c.Request.Context(), service.BookSessionRequest{
		CallerID: current.ID,
		Session:  session,
	})
	if err != nil {
		if err == service.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	if result.Limited {
		c.JSON(http.StatusOK, gin.H{
			"limited": true,
			"message": "Session limit reached",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"created": true,
		"id":      result.ID,
	})
}

// List handles GET /sessions
func (h *SessionHandler) List(c *gin.Context) {
	current := CurrentUser(c)

	items, err := h.sessionService.List(c.Request.Context(), current.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": projectIDs(items)})
}

// projectIDs rewrites each document's "_id" key to a plain "id" string
func projectIDs(items []store.Document) []store.Document {
	for _, item := range items {
		if id, ok := item["_id"]; ok {
			delete(item, "_id")
			item["id"] = id
		}
	}
	return items
}
