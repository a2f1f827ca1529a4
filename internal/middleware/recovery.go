package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"eduhub/internal/apis/dtos"
	"eduhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CustomRecoveryMiddleware handles panics and returns a proper response DTO
func CustomRecoveryMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Recovery -> panic",
					"error", fmt.Sprint(err),
					"path", c.Request.URL.Path,
					RequestIDKey, c.GetString(RequestIDKey),
					"stack", string(debug.Stack()),
				)

				errorMsg := "Internal Server Error"
				if gin.IsDebugging() {
					errorMsg = fmt.Sprintf("Internal Server Error: %v", err)
				}

				c.AbortWithStatusJSON(http.StatusInternalServerError, dtos.Response{
					Success: false,
					Error:   &errorMsg,
				})
			}
		}()
		c.Next()
	}
}
