package handlers

import (
	"net/http"

	"lifeos-backend/models"
	"lifeos-backend/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for profile and dashboard
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me handles GET /me
func (h *UserHandler) Me(c *gin.Context) {
	current := CurrentUser(c)

	user, err := h.userService.Me(c.Request.Context(), current.ID)
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
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Dashboard handles GET /dashboard
func (h *UserHandler) Dashboard(c *gin.Context) {
	current := CurrentUser(c)

	result, err := h.userService.Dashboard(c.Request.Context(), current.ID)
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
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":    result.Name,
		"purpose": result.Purpose,
		"tana": gin.H{
			"mind":        result.Tana.Mind,
			"money":       result.Tana.Money,
			"meaning":     result.Tana.Meaning,
			"percentages": result.Percentages,
		},
		"sessions": gin.H{
			"used":  result.SessionsUsed,
			"total": result.TotalSessions,
		},
	})
}

// UpdateProfileRequest represents the request body for a partial profile
// update; absent fields stay untouched
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Purpose *string `json:"purpose" binding:"omitempty,oneof=Healing Growth Direction"`
	Age     *int    `json:"age" binding:"omitempty,gte=0,lte=120"`
}

// UpdateProfile handles POST /profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	current := CurrentUser(c)

	var req UpdateProfileRequest
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

	serviceReq := service.UpdateProfileRequest{
		UserID: current.ID,
		Name:   req.Name,
		Age:    req.Age,
	}
	if req.Purpose != nil {
		purpose := models.Purpose(*req.Purpose)
		serviceReq.Purpose = &purpose
	}

	result, err := h.userService.UpdateProfile(c.Request.Context(), serviceReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPDATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": result.Updated})
}
