package routes

import (
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.Engine, h Handlers) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.GET("/refresh-token", h.Auth.RefreshToken)
	}

	protected := router.Group("/api/auth")
	protected.Use(h.RequireAuth)
	{
		protected.POST("/logout", h.Auth.Logout)
	}
}
