package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/internal/application"
	"github.com/nextgencars/backend/internal/domain/client"
	"github.com/nextgencars/backend/pkg/response"
)

type ClientHandler struct {
	svc *application.ClientService
}

func NewClientHandler(svc *application.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// ListClients godoc
// @Summary List clients
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param search query string false "Name, email or phone"
// @Param skip query int false "Offset"
// @Param take query int false "Page size (1-100)"
// @Success 200 {object} client.Page
// @Failure 401 {object} response.ErrorResponse
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	skip, take, ok := pageParams(c)
	if !ok {
		return
	}
	page, err := h.svc.List(c.Request.Context(), claims(c), c.Query("search"), skip, take)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetClient godoc
// @Summary Get a client with its vehicles
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} application.ClientDetail
// @Failure 404 {object} response.ErrorResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.Get(c.Request.Context(), claims(c), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateClient godoc
// @Summary Create a client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body client.CreateClientInput true "Client"
// @Success 201 {object} client.Client
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var input client.CreateClientInput
	if !bindJSON(c, &input) {
		return
	}
	cl, err := h.svc.Create(c.Request.Context(), claims(c), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cl)
}

// UpdateClient godoc
// @Summary Partially update a client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param input body client.UpdateClientInput true "Changes"
// @Success 200 {object} client.Client
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /clients/{id} [patch]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input client.UpdateClientInput
	if !bindJSON(c, &input) {
		return
	}
	cl, err := h.svc.Update(c.Request.Context(), claims(c), id, input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

// DeleteClient godoc
// @Summary Delete a client and its vehicles
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} response.DeletedResponse
// @Failure 400 {object} response.ErrorResponse "Client still has work orders"
// @Failure 404 {object} response.ErrorResponse
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
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
