package middlewares

import (
	"net/http"
	"strings"

	"eduhub/internal/apis/dtos"
	"eduhub/internal/repositories"
	"eduhub/internal/utils"

	"github.com/gin-gonic/gin"
)

// OperatorKey holds the authenticated operator name in the Gin context.
const OperatorKey = "operator"

func abortUnauthorized(c *gin.Context, errorMsg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dtos.Response{
		Success: false,
		Error:   &errorMsg,
	})
}

func AuthMiddleware(jwtService utils.JWTService, tokenRepo repositories.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		token := parts[1]

		// Check if token is blacklisted
		if tokenRepo.IsTokenBlacklisted(c.Request.Context(), token) {
			abortUnauthorized(c, "Token has been revoked")
			return
		}

		operator, err := jwtService.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(OperatorKey, *operator)
		c.Next()
	}
}
