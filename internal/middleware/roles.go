package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := c.Get(ContextUserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
			return
		}

		if current != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "insufficient_role",
				"message": "This action requires " + role + " privileges.",
			})
			return
		}

		c.Next()
	}
}
