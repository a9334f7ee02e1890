package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/internal/application"
	"github.com/nextgencars/backend/internal/domain/audit"
	"github.com/nextgencars/backend/pkg/response"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Query the audit trail
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query int false "Actor"
// @Param resource_type query string false "work_order, client, vehicle, user or attachment"
// @Param action query string false "Action"
// @Param start_time query string false "RFC3339"
// @Param end_time query string false "RFC3339"
// @Param limit query int false "Max 500"
// @Param offset query int false "Offset"
// @Success 200 {array} audit.AuditLog
// @Failure 403 {object} response.ErrorResponse
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params audit.QueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}
	logs, err := h.svc.QueryAuditLogs(c.Request.Context(), claims(c), params)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
