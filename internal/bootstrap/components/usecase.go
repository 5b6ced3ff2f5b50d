package components

import (
	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/pkg/clock"
	"autoshop-backend/internal/pkg/config"
	"autoshop-backend/internal/usecase/commands"
	"autoshop-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

func UsecaseModule() fx.Option {
	return fx.Module("usecase",
		fx.Provide(
			clock.NewRealClock,
			newThresholds,
			newTxBeginner,
			queries.NewWarrantyQueries,
			queries.NewVehicleQueries,
			commands.NewWarrantyCommands,
			commands.NewVehicleCommands,
			commands.NewServiceCommands,
		),
	)
}

func newTxBeginner(pool *pgxpool.Pool) commands.TxBeginner {
	return pool
}

func newThresholds(cfg config.Config) warranty.Thresholds {
	return warranty.Thresholds{
		ExpiringSoonDays: cfg.Warranty.ExpiringSoonDays,
		ExpiringSoonKM:   cfg.Warranty.ExpiringSoonKM,
	}
}
