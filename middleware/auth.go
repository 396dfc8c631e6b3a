package middleware

import (
	"log"
	"net/http"
	"strings"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by RequireAuth.
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// RequireAuth parses the bearer token and stashes the caller's identity and
// role in the gin context for RequirePermission to check.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearerToken := c.GetHeader("Authorization")
		if !strings.HasPrefix(bearerToken, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing_token"})
			return
		}
		raw := strings.TrimPrefix(bearerToken, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return utils.JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			log.Printf("token error: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid_token"})
			return
		}

		username, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if username == "" || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid_token"})
			return
		}

		c.Set(ContextUsername, username)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// HasPermission is the role check: manager satisfies everything, every other
// role only its own tag.
func HasPermission(callerRole, requiredRole string) bool {
	if callerRole == models.RoleManager {
		return true
	}
	return callerRole == requiredRole
}

// RequirePermission gates a route group on a role tag. Must run after
// RequireAuth.
func RequirePermission(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if !HasPermission(role, requiredRole) {
			log.Printf("access denied: %s requires %s, caller is %s",
				c.Request.URL.Path, requiredRole, role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "permission_denied"})
			return
		}
		c.Next()
	}
}
