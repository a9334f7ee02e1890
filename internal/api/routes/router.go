package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/internal/api/handlers"
	"github.com/nextgencars/backend/internal/api/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts every endpoint on r. Authorization happens in the
// services, so the JWT middleware only attaches claims.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/login", h.User.Login)
	r.POST("/auth/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/me", h.User.Me)
		auth.GET("/ws/work-orders", h.WS.WatchWorkOrders)
		auth.GET("/dashboard/stats", h.Dashboard.GetStats)
		auth.GET("/audit/logs", h.Audit.GetAuditLogs)

		WorkOrderRoutes(auth, h.WorkOrder, h.Attachment)

		clients := auth.Group("/clients")
		{
			clients.GET("", h.Client.ListClients)
			clients.POST("", h.Client.CreateClient)
			clients.GET("/:id", h.Client.GetClient)
			clients.PATCH("/:id", h.Client.UpdateClient)
			clients.DELETE("/:id", h.Client.DeleteClient)
		}
		vehicles := auth.Group("/vehicles")
		{
			vehicles.GET("", h.Vehicle.ListVehicles)
			vehicles.POST("", h.Vehicle.CreateVehicle)
			vehicles.GET("/:id", h.Vehicle.GetVehicle)
			vehicles.PATCH("/:id", h.Vehicle.UpdateVehicle)
			vehicles.DELETE("/:id", h.Vehicle.DeleteVehicle)
		}
		users := auth.Group("/users")
		{
			users.GET("", h.User.ListUsers)
			users.POST("", h.User.CreateUser)
			users.PATCH("/:id", h.User.UpdateUser)
			users.DELETE("/:id", h.User.DeleteUser)
		}
	}
}
