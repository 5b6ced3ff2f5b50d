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

type ServiceHandler struct {
	serviceCommands commands.ServiceCommands
	vehicleQueries  queries.VehicleQueries
}

func NewServiceHandler(serviceCommands commands.ServiceCommands, vehicleQueries queries.VehicleQueries) *ServiceHandler {
	return &ServiceHandler{serviceCommands: serviceCommands, vehicleQueries: vehicleQueries}
}

// CreateService godoc
// @Summary      Record a service
// @Description  Completing a vehicle's first service triggers warranty assignment from the service date
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body body request.CreateServiceRequest true "service record"
// @Success      201 {object} response.ServiceResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Failure      422 {object} httperr.ErrorResponse
// @Router       /api/services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req request.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.BadRequest(c, "service_date must be formatted as YYYY-MM-DD")
		return
	}
	view, err := h.serviceCommands.CreateService(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewService(view))
}

// ListVehicleServices godoc
// @Summary      List a vehicle's service history
// @Tags         services
// @Produce      json
// @Param        id path string true "vehicle ID"
// @Success      200 {array} response.ServiceResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Router       /api/vehicles/{id}/services [get]
func (h *ServiceHandler) ListVehicleServices(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid vehicle ID")
		return
	}
	views, err := h.vehicleQueries.ListVehicleServices(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewServiceList(views))
}
