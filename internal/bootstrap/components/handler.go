package components

import (
	"autoshop-backend/internal/handler"
	"autoshop-backend/internal/handler/api"
	"autoshop-backend/internal/handler/middleware"
	"autoshop-backend/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func HandlerModule() fx.Option {
	return fx.Module("handler",
		fx.Provide(
			api.NewWarrantyConfigHandler,
			api.NewWarrantyHandler,
			api.NewVehicleHandler,
			api.NewServiceHandler,
			api.NewCustomerHandler,
			newHandlers,
			newActorMiddleware,
			handler.NewRouter,
		),
	)
}

func newHandlers(
	warrantyConfig *api.WarrantyConfigHandler,
	warranty *api.WarrantyHandler,
	vehicle *api.VehicleHandler,
	service *api.ServiceHandler,
	customer *api.CustomerHandler,
) handler.Handlers {
	return handler.Handlers{
		WarrantyConfig: warrantyConfig,
		Warranty:       warranty,
		Vehicle:        vehicle,
		Service:        service,
		Customer:       customer,
	}
}

func newActorMiddleware(cfg config.Config) gin.HandlerFunc {
	return middleware.Actor(cfg.Auth)
}
