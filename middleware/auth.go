package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/luksiny/UrbanHarvestHub/utils"
)

// ValidateToken guards admin routes with a Bearer JWT. The expired
// case gets its own message so the dashboard can prompt a quiet
// re-login instead of a generic failure.
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Error(c, http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseAdminToken(tokenString, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				utils.Error(c, http.StatusUnauthorized, "Token expired. Please log in again.")
			} else {
				utils.Error(c, http.StatusUnauthorized, "Invalid token.")
			}
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Next()
	}
}
