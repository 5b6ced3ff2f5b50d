package api

import (
	"net/http"

	"autoshop-backend/internal/handler/dto/response"
	"autoshop-backend/internal/handler/httperr"
	"autoshop-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	vehicleQueries queries.VehicleQueries
}

func NewCustomerHandler(vehicleQueries queries.VehicleQueries) *CustomerHandler {
	return &CustomerHandler{vehicleQueries: vehicleQueries}
}

// GetCustomer godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "customer ID"
// @Success      200 {object} response.CustomerResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid customer ID")
		return
	}
	view, err := h.vehicleQueries.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCustomer(view))
}
