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

// WarrantyConfigHandler serves the catalog and per-model template endpoints.
type WarrantyConfigHandler struct {
	warrantyCommands commands.WarrantyCommands
	warrantyQueries  queries.WarrantyQueries
}

func NewWarrantyConfigHandler(
	warrantyCommands commands.WarrantyCommands,
	warrantyQueries queries.WarrantyQueries,
) *WarrantyConfigHandler {
	return &WarrantyConfigHandler{
		warrantyCommands: warrantyCommands,
		warrantyQueries:  warrantyQueries,
	}
}

// ListComponents godoc
// @Summary      List warranty components
// @Description  Returns the seeded component catalog in display order
// @Tags         warranty-config
// @Produce      json
// @Success      200 {array} response.ComponentResponse
// @Router       /api/warranty-config/components [get]
func (h *WarrantyConfigHandler) ListComponents(c *gin.Context) {
	views, err := h.warrantyQueries.ListComponents(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewComponentList(views))
}

// ListModels godoc
// @Summary      List vehicle models
// @Tags         warranty-config
// @Produce      json
// @Success      200 {array} response.ModelResponse
// @Router       /api/vehicle-models [get]
func (h *WarrantyConfigHandler) ListModels(c *gin.Context) {
	views, err := h.warrantyQueries.ListModels(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewModelList(views))
}

// GetModelConfig godoc
// @Summary      Get a model's warranty template
// @Tags         warranty-config
// @Produce      json
// @Param        id path string true "vehicle model ID"
// @Success      200 {object} response.ModelConfigResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Router       /api/warranty-config/models/{id} [get]
func (h *WarrantyConfigHandler) GetModelConfig(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid model ID")
		return
	}
	view, err := h.warrantyQueries.GetModelConfig(c.Request.Context(), modelID)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewModelConfig(view))
}

// UpdateModelConfig godoc
// @Summary      Replace a model's warranty template
// @Description  Full replace; omitted components are stored as disabled
// @Tags         warranty-config
// @Accept       json
// @Produce      json
// @Param        id path string true "vehicle model ID"
// @Param        body body request.UpdateModelConfigRequest true "warranty template"
// @Success      200 {object} response.ModelConfigResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Failure      422 {object} httperr.ErrorResponse
// @Router       /api/warranty-config/models/{id} [put]
func (h *WarrantyConfigHandler) UpdateModelConfig(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid model ID")
		return
	}
	var req request.UpdateModelConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}
	view, err := h.warrantyCommands.UpdateModelConfig(c.Request.Context(), modelID, req.ToDomain())
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewModelConfig(view))
}

// AutoAssign godoc
// @Summary      Assign warranty parts to a vehicle
// @Description  Computes per-component parts from the model template and the purchase date
// @Tags         warranty-config
// @Accept       json
// @Produce      json
// @Param        body body request.AutoAssignRequest true "assignment trigger"
// @Success      201 {array} response.PartResponse
// @Failure      404 {object} httperr.ErrorResponse
// @Failure      409 {object} httperr.ErrorResponse
// @Router       /api/warranty-config/assign [post]
func (h *WarrantyConfigHandler) AutoAssign(c *gin.Context) {
	var req request.AutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}
	purchaseDate, err := req.ParsePurchaseDate()
	if err != nil {
		httperr.BadRequest(c, "purchase_date must be formatted as YYYY-MM-DD")
		return
	}
	views, err := h.warrantyCommands.AutoAssign(c.Request.Context(), req.VehicleID, req.ModelID, purchaseDate)
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewPartList(views))
}
