package routes

import (
	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(router *gin.Engine, h Handlers) {
	admin := router.Group("/api/admin")
	admin.Use(h.RequireAuth)
	{
		admin.POST("/setup", h.Setup.Run)
		admin.POST("/setup/reset", h.Setup.Reset)
		admin.POST("/setup/provision", h.Setup.Provision)
		admin.POST("/setup/seed", h.Setup.Seed)
	}
}
