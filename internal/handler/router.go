package handler

import (
	"net/http"

	"autoshop-backend/internal/handler/api"
	"autoshop-backend/internal/handler/middleware"
	"autoshop-backend/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	WarrantyConfig *api.WarrantyConfigHandler
	Warranty       *api.WarrantyHandler
	Vehicle        *api.VehicleHandler
	Service        *api.ServiceHandler
	Customer       *api.CustomerHandler
}

type route struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// NewRouter assembles the full HTTP surface. The actor middleware is injected
// so handler tests can substitute a stub identity.
func NewRouter(cfg config.Config, h Handlers, actor gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.CORS(cfg.CORS),
		middleware.ErrorHandler(),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := middleware.RequireRole(middleware.RoleAdmin)
	routes := []route{
		{http.MethodGet, "/warranty-config/components", gin.HandlersChain{h.WarrantyConfig.ListComponents}},
		{http.MethodGet, "/vehicle-models", gin.HandlersChain{h.WarrantyConfig.ListModels}},
		{http.MethodGet, "/warranty-config/models/:id", gin.HandlersChain{h.WarrantyConfig.GetModelConfig}},
		{http.MethodPut, "/warranty-config/models/:id", gin.HandlersChain{admin, h.WarrantyConfig.UpdateModelConfig}},
		{http.MethodPost, "/warranty-config/assign", gin.HandlersChain{admin, h.WarrantyConfig.AutoAssign}},

		{http.MethodGet, "/vehicles", gin.HandlersChain{h.Vehicle.ListVehicles}},
		{http.MethodPost, "/vehicles", gin.HandlersChain{h.Vehicle.CreateVehicle}},
		{http.MethodGet, "/vehicles/:id", gin.HandlersChain{h.Vehicle.GetVehicle}},
		{http.MethodPatch, "/vehicles/:id/odometer", gin.HandlersChain{h.Vehicle.UpdateOdometer}},
		{http.MethodGet, "/vehicles/:id/warranty-parts", gin.HandlersChain{h.Warranty.GetVehicleParts}},
		{http.MethodGet, "/vehicles/:id/warranty-status", gin.HandlersChain{h.Warranty.GetVehicleStatus}},
		{http.MethodGet, "/vehicles/:id/services", gin.HandlersChain{h.Service.ListVehicleServices}},

		{http.MethodGet, "/warranties", gin.HandlersChain{h.Warranty.ListWarranties}},
		{http.MethodGet, "/warranties/:vehicleId", gin.HandlersChain{h.Warranty.GetVehicleWarranty}},

		{http.MethodPost, "/services", gin.HandlersChain{h.Service.CreateService}},
		{http.MethodGet, "/customers/:id", gin.HandlersChain{h.Customer.GetCustomer}},
	}

	group := engine.Group("/api", actor)
	for _, r := range routes {
		group.Handle(r.method, r.path, r.handlers...)
	}
	return engine
}
