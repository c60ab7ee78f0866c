package middleware

import (
	"net/http"
	"strings"

	"villabook/models"
	"villabook/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxViewerID   = "viewerID"
	CtxViewerRole = "viewerRole"
)

// JWTAuthMiddleware validates the bearer token and places the viewer's
// user ID and role in the gin context. The engine layers never read
// session state themselves; identity flows through explicit arguments
// from here down.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		viewerID, role, err := utils.ExtractViewerFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(CtxViewerID, viewerID)
		c.Set(CtxViewerRole, role)
		c.Next()
	}
}

// RequireRole aborts unless the authenticated viewer carries the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerRole := c.GetString(CtxViewerRole)
		if viewerRole != role && viewerRole != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
