package components

import (
	"autoshop-backend/internal/infra/readstore"
	"autoshop-backend/internal/infra/repository"
	"autoshop-backend/internal/usecase/commands"
	"autoshop-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

// RepositoryModule binds the pgx repositories and read stores to the
// usecase-layer ports.
func RepositoryModule() fx.Option {
	return fx.Module("repository",
		fx.Provide(
			fx.Annotate(repository.NewComponentRepository,
				fx.As(new(commands.ComponentRepository)),
				fx.As(new(queries.ComponentReadStore)),
			),
			fx.Annotate(repository.NewModelRepository,
				fx.As(new(commands.ModelRepository)),
			),
			fx.Annotate(repository.NewPartRepository,
				fx.As(new(commands.PartRepository)),
				fx.As(new(queries.PartReadStore)),
			),
			fx.Annotate(repository.NewVehicleRepository,
				fx.As(new(commands.VehicleRepository)),
			),
			fx.Annotate(repository.NewCustomerRepository,
				fx.As(new(commands.CustomerRepository)),
			),
			fx.Annotate(repository.NewServiceRepository,
				fx.As(new(commands.ServiceRepository)),
			),
			fx.Annotate(readstore.NewWarrantyConfigReadStore,
				fx.As(new(queries.ModelConfigReadStore)),
			),
			fx.Annotate(readstore.NewVehicleReadStore,
				fx.As(new(queries.VehicleReadStore)),
			),
			fx.Annotate(readstore.NewCustomerReadStore,
				fx.As(new(queries.CustomerReadStore)),
			),
			fx.Annotate(readstore.NewServiceReadStore,
				fx.As(new(queries.ServiceReadStore)),
				fx.As(new(queries.ServiceUsageReadStore)),
			),
		),
	)
}
