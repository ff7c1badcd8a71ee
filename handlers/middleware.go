package handlers

import (
	"net/http"
	"strings"

	"lifeos-backend/models"
	"lifeos-backend/service"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key holding the authenticated identity
const ContextUserKey = "currentUser"

// RequireAuth validates the bearer token of every protected request and
// injects the resolved identity into the gin context. It runs before any
// domain logic and short-circuits the request on failure.
func RequireAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHENTICATED",
					"message": service.ErrMissingAuthHeader.Error(),
				},
			})
			return
		}

		token := strings.SplitN(header, " ", 2)[1]
		user, err := tokens.Resolve(c.Request.Context(), token)
		if err != nil {
			if err == service.ErrInvalidToken || err == service.ErrTokenExpired {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "UNAUTHENTICATED",
						"message": err.Error(),
					},
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "AUTH_FAILED",
					"message": err.Error(),
				},
			})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity injected by RequireAuth
func CurrentUser(c *gin.Context) *models.AuthUser {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.AuthUser)
	return user
}

// CORS allows browser clients from any origin, matching the deployed frontend
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
