package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/internal/api/handlers"
)

// WorkOrderRoutes registers work-order endpoints
func WorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler, a *handlers.AttachmentHandler) {
	orders := rg.Group("/work-orders")
	{
		orders.GET("", h.ListWorkOrders)
		orders.POST("", h.CreateWorkOrder)
		orders.POST("/search", h.SearchWorkOrders)
		orders.GET("/revenue", h.Revenue)
		orders.GET("/:id", h.GetWorkOrder)
		orders.PATCH("/:id", h.UpdateWorkOrder)
		orders.DELETE("/:id", h.DeleteWorkOrder)

		orders.GET("/:id/attachments", a.ListAttachments)
		orders.POST("/:id/attachments", a.UploadAttachment)
		orders.DELETE("/:id/attachments/:attachmentId", a.DeleteAttachment)
	}
}
