package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/internal/application"
	"github.com/nextgencars/backend/pkg/response"
)

type DashboardHandler struct {
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetStats godoc
// @Summary Front desk overview
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dashboard.Stats
// @Failure 401 {object} response.ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), claims(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
