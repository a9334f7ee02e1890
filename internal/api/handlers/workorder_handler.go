package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/internal/application"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"github.com/nextgencars/backend/pkg/response"
)

type WorkOrderHandler struct {
	svc *application.WorkOrderService
}

func NewWorkOrderHandler(svc *application.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{svc: svc}
}

// ListWorkOrders godoc
// @Summary List work orders
// @Tags work-orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "OPEN, IN_PROGRESS, ON_HOLD, CLOSED or CANCELED"
// @Param client_id query int false "Client ID"
// @Param vehicle_id query int false "Vehicle ID"
// @Param assigned_user_id query int false "Assigned mechanic"
// @Param from query string false "ISO-8601 lower bound"
// @Param to query string false "ISO-8601 upper bound"
// @Param search query string false "Free text"
// @Param q query string false "Alias of search"
// @Param skip query int false "Offset"
// @Param take query int false "Page size (1-100)"
// @Success 200 {object} workorder.Page
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	var filter workorder.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}
	skip, take, ok := pageParams(c)
	if !ok {
		return
	}

	page, err := h.svc.List(c.Request.Context(), claims(c), &filter, skip, take)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// SearchWorkOrders godoc
// @Summary List work orders with a filter body
// @Tags work-orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body workorder.ListRequest true "Filter and paging"
// @Success 200 {object} workorder.Page
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /work-orders/search [post]
func (h *WorkOrderHandler) SearchWorkOrders(c *gin.Context) {
	var req workorder.ListRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	page, err := h.svc.List(c.Request.Context(), claims(c), req.Filter, req.Skip, req.Take)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetWorkOrder godoc
// @Summary Get a work order
// @Description Responds with null when the work order does not exist.
// @Tags work-orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Work order ID"
// @Success 200 {object} workorder.WorkOrder
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	wo, err := h.svc.Get(c.Request.Context(), claims(c), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wo)
}

// Revenue godoc
// @Summary Revenue of closed work orders
// @Tags work-orders
// @Security BearerAuth
// @Produce json
// @Param from query string false "end_date lower bound"
// @Param to query string false "end_date upper bound"
// @Success 200 {object} workorder.RevenueResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /work-orders/revenue [get]
func (h *WorkOrderHandler) Revenue(c *gin.Context) {
	var from, to *string
	if v, ok := c.GetQuery("from"); ok {
		from = &v
	}
	if v, ok := c.GetQuery("to"); ok {
		to = &v
	}

	total, err := h.svc.Revenue(c.Request.Context(), claims(c), from, to)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, workorder.RevenueResponse{Revenue: total})
}

// CreateWorkOrder godoc
// @Summary Create a work order
// @Tags work-orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body workorder.CreateWorkOrderInput true "Work order"
// @Success 201 {object} workorder.WorkOrder
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var input workorder.CreateWorkOrderInput
	if !bindJSON(c, &input) {
		return
	}
	wo, err := h.svc.Create(c.Request.Context(), claims(c), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, wo)
}

// UpdateWorkOrder godoc
// @Summary Partially update a work order
// @Description Omitted fields stay unchanged, explicit nulls clear nullable fields.
// @Tags work-orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Work order ID"
// @Param input body workorder.UpdateWorkOrderInput true "Changes"
// @Success 200 {object} workorder.WorkOrder
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /work-orders/{id} [patch]
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input workorder.UpdateWorkOrderInput
	if !bindJSON(c, &input) {
		return
	}
	wo, err := h.svc.Update(c.Request.Context(), claims(c), id, input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wo)
}

// DeleteWorkOrder godoc
// @Summary Delete a work order
// @Tags work-orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Work order ID"
// @Success 200 {object} response.DeletedResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /work-orders/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), claims(c), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DeletedResponse{Deleted: deleted})
}
