package api

import (
	"net/http"

	"autoshop-backend/internal/handler/dto/request"
	"autoshop-backend/internal/handler/dto/response"
	"autoshop-backend/internal/handler/httperr"
	"autoshop-backend/internal/usecase/commands"
	"autoshop-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	vehicleCommands commands.VehicleCommands
	vehicleQueries  queries.VehicleQueries
}

func NewVehicleHandler(vehicleCommands commands.VehicleCommands, vehicleQueries queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{vehicleCommands: vehicleCommands, vehicleQueries: vehicleQueries}
}

// CreateVehicle godoc
// @Summary      Register a vehicle
// @Description  A known model plus purchase date triggers warranty assignment in the same transaction
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        body body request.CreateVehicleRequest true "vehicle"
// @Success      201 {object} response.VehicleResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Failure      409 {object} httperr.ErrorResponse
// @Router       /api/vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req request.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.BadRequest(c, "purchase_date must be formatted as YYYY-MM-DD")
		return
	}
	view, err := h.vehicleCommands.CreateVehicle(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewVehicle(view))
}

// GetVehicle godoc
// @Summary      Get a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id path string true "vehicle ID"
// @Success      200 {object} response.VehicleResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Router       /api/vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid vehicle ID")
		return
	}
	view, err := h.vehicleQueries.GetVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewVehicle(view))
}

// ListVehicles godoc
// @Summary      List vehicles
// @Tags         vehicles
// @Produce      json
// @Param        search query string false "plate or customer name filter"
// @Param        limit query int false "page size" default(50)
// @Param        offset query int false "page offset" default(0)
// @Success      200 {object} response.VehiclePageResponse
// @Router       /api/vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var q request.ListVehiclesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}
	page, err := h.vehicleQueries.ListVehicles(c.Request.Context(), q.Search, q.Limit, q.Offset)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewVehiclePage(page))
}

// UpdateOdometer godoc
// @Summary      Update a vehicle's odometer
// @Description  The reading can only move forward
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        id path string true "vehicle ID"
// @Param        body body request.UpdateOdometerRequest true "odometer reading"
// @Success      200 {object} response.VehicleResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Failure      422 {object} httperr.ErrorResponse
// @Router       /api/vehicles/{id}/odometer [patch]
func (h *VehicleHandler) UpdateOdometer(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid vehicle ID")
		return
	}
	var req request.UpdateOdometerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}
	view, err := h.vehicleCommands.UpdateOdometer(c.Request.Context(), vehicleID, req.CurrentKM)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewVehicle(view))
}
