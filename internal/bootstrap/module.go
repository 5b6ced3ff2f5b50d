package bootstrap

import (
	"autoshop-backend/internal/bootstrap/components"
	"autoshop-backend/internal/pkg/config"

	"go.uber.org/fx"
)

// Modules wires the whole application graph.
func Modules() fx.Option {
	return fx.Options(
		fx.Provide(
			config.LoadConfig,
			NewDBPool,
			NewQuerier,
		),
		components.RepositoryModule(),
		components.UsecaseModule(),
		components.HandlerModule(),
		fx.Invoke(
			SetupLogger,
			StartServer,
		),
	)
}
