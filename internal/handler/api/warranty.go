package api

import (
	"net/http"

	"autoshop-backend/internal/handler/dto/request"
	"autoshop-backend/internal/handler/dto/response"
	"autoshop-backend/internal/handler/httperr"
	"autoshop-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WarrantyHandler serves the read-side warranty surfaces: raw assigned parts
// and the computed live status report.
type WarrantyHandler struct {
	warrantyQueries queries.WarrantyQueries
}

func NewWarrantyHandler(warrantyQueries queries.WarrantyQueries) *WarrantyHandler {
	return &WarrantyHandler{warrantyQueries: warrantyQueries}
}

// GetVehicleParts godoc
// @Summary      List a vehicle's assigned warranty parts
// @Tags         warranty
// @Produce      json
// @Param        id path string true "vehicle ID"
// @Success      200 {array} response.PartResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Router       /api/vehicles/{id}/warranty-parts [get]
func (h *WarrantyHandler) GetVehicleParts(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid vehicle ID")
		return
	}
	views, err := h.warrantyQueries.GetVehicleParts(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPartList(views))
}

// GetVehicleStatus godoc
// @Summary      Get a vehicle's live warranty status
// @Description  Recomputed on every read from the current date and odometer
// @Tags         warranty
// @Produce      json
// @Param        id path string true "vehicle ID"
// @Success      200 {object} response.WarrantyReportResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Router       /api/vehicles/{id}/warranty-status [get]
func (h *WarrantyHandler) GetVehicleStatus(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid vehicle ID")
		return
	}
	report, err := h.warrantyQueries.GetVehicleReport(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewWarrantyReport(report))
}

// ListWarranties godoc
// @Summary      List warranty reports across all vehicles
// @Tags         warranty
// @Produce      json
// @Param        limit query int false "page size" default(50)
// @Param        offset query int false "page offset" default(0)
// @Success      200 {object} response.WarrantyPageResponse
// @Router       /api/warranties [get]
func (h *WarrantyHandler) ListWarranties(c *gin.Context) {
	var q request.ListWarrantiesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}
	page, err := h.warrantyQueries.ListWarranties(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewWarrantyPage(page))
}

// GetVehicleWarranty godoc
// @Summary      Get one vehicle's warranty report
// @Tags         warranty
// @Produce      json
// @Param        vehicleId path string true "vehicle ID"
// @Success      200 {object} response.WarrantyReportResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Router       /api/warranties/{vehicleId} [get]
func (h *WarrantyHandler) GetVehicleWarranty(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		httperr.BadRequest(c, "invalid vehicle ID")
		return
	}
	report, err := h.warrantyQueries.GetVehicleReport(c.Request.Context(), vehicleID)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewWarrantyReport(report))
}
