package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/internal/application"
	"github.com/nextgencars/backend/internal/domain/vehicle"
	"github.com/nextgencars/backend/pkg/response"
	"github.com/nextgencars/backend/pkg/utils"
)

type VehicleHandler struct {
	svc *application.VehicleService
}

func NewVehicleHandler(svc *application.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

// ListVehicles godoc
// @Summary List vehicles
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param client_id query int false "Owner"
// @Param search query string false "Plate, VIN, make or model"
// @Param skip query int false "Offset"
// @Param take query int false "Page size (1-100)"
// @Success 200 {object} vehicle.Page
// @Failure 400 {object} response.ErrorResponse
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var clientID *uint
	id, err := utils.ParseQueryUintParam(c, "client_id")
	switch {
	case err == nil:
		clientID = &id
	case !errors.Is(err, utils.ErrEmptyParameter):
		response.BadRequest(c, "invalid client_id")
		return
	}
	skip, take, ok := pageParams(c)
	if !ok {
		return
	}

	page, err := h.svc.List(c.Request.Context(), claims(c), clientID, c.Query("search"), skip, take)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetVehicle godoc
// @Summary Get a vehicle
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} vehicle.Vehicle
// @Failure 404 {object} response.ErrorResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	v, err := h.svc.Get(c.Request.Context(), claims(c), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// CreateVehicle godoc
// @Summary Register a vehicle for a client
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body vehicle.CreateVehicleInput true "Vehicle"
// @Success 201 {object} vehicle.Vehicle
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Unknown client"
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var input vehicle.CreateVehicleInput
	if !bindJSON(c, &input) {
		return
	}
	v, err := h.svc.Create(c.Request.Context(), claims(c), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// UpdateVehicle godoc
// @Summary Partially update a vehicle
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param input body vehicle.UpdateVehicleInput true "Changes"
// @Success 200 {object} vehicle.Vehicle
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /vehicles/{id} [patch]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input vehicle.UpdateVehicleInput
	if !bindJSON(c, &input) {
		return
	}
	v, err := h.svc.Update(c.Request.Context(), claims(c), id, input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteVehicle godoc
// @Summary Delete a vehicle
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.DeletedResponse
// @Failure 400 {object} response.ErrorResponse "Vehicle still has work orders"
// @Failure 404 {object} response.ErrorResponse
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
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
