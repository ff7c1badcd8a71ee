package handlers

import (
	"net/http"

	"lifeos-backend/models"
	"lifeos-backend/service"

	"github.com/gin-gonic/gin"
)

// ReflectionHandler handles HTTP requests for reflections
type ReflectionHandler struct {
	reflectionService *service.ReflectionService
}

// NewReflectionHandler creates a new reflection handler
func NewReflectionHandler(reflectionService *service.ReflectionService) *ReflectionHandler {
	return &ReflectionHandler{reflectionService: reflectionService}
}

// CreateReflectionRequest represents the request body for adding a reflection
type CreateReflectionRequest struct {
	UserID    string  `json:"user_id" binding:"required"`
	Pillar    string  `json:"pillar" binding:"required,oneof=Mind Money Meaning"`
	EntryText string  `json:"entry_text" binding:"required"`
	Mood      *string `json:"mood"`
}

// Create handles POST /reflections
func (h *ReflectionHandler) Create(c *gin.Context) {
	current := CurrentUser(c)

	var req CreateReflectionRequest
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

	reflection := &models.Reflection{
		UserID:    req.UserID,
		Pillar:    models.Pillar(req.Pillar),
		EntryText: req.EntryText,
		Mood:      req.Mood,
	}

	result, err := h.reflectionService.Add(c.Request.Context(), service.AddReflectionRequest{
		CallerID:   current.ID,
		Reflection: reflection,
	})
	if err != nil {
		if err == service.ErrForbidden {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
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

	c.JSON(http.StatusOK, gin.H{
		"created": true,
		"id":      result.ID,
	})
}

// List handles GET /reflections
func (h *ReflectionHandler) List(c *gin.Context) {
	current := CurrentUser(c)

	items, err := h.reflectionService.List(c.Request.Context(), current.ID)
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
