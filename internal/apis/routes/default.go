package routes

import (
	"fmt"
	"net/http"

	"eduhub/internal/apis/dtos"
	"eduhub/internal/apis/handlers"
	"eduhub/internal/apis/middlewares"
	"eduhub/internal/di"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything the route table needs.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Setup  *handlers.SetupHandler
	EduHub *handlers.EduHubHandler
	// RequireAuth guards operator-only routes.
	RequireAuth gin.HandlerFunc
}

// SetupDefaultRoutes resolves the handlers from the DI container and registers
// every route group.
func SetupDefaultRoutes(router *gin.Engine) error {
	h, err := resolveHandlers()
	if err != nil {
		return fmt.Errorf("failed to resolve handlers: %w", err)
	}
	RegisterRoutes(router, h)
	return nil
}

func resolveHandlers() (Handlers, error) {
	var h Handlers
	err := di.DiContainer.Invoke(func(p di.HandlerParams) {
		h = Handlers{
			Auth:        p.Auth,
			Setup:       p.Setup,
			EduHub:      p.EduHub,
			RequireAuth: middlewares.AuthMiddleware(p.JWT, p.Tokens),
		}
	})
	return h, err
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dtos.Response{
			Success: true,
			Data:    "Server is healthy!",
		})
	})

	SetupAuthRoutes(router, h)
	SetupAdminRoutes(router, h)
	SetupEduHubRoutes(router, h)
}
