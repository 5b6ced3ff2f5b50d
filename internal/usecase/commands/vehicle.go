package commands

import (
	"context"
	"time"

	"autoshop-backend/internal/domain/vehicle"
	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/pkg/errs"
	"autoshop-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreateVehicleParams struct {
	CustomerID   uuid.UUID
	ModelID      *uuid.UUID
	PlateNumber  string
	PurchaseDate *time.Time
	CurrentKM    uint
}

type VehicleCommands interface {
	// CreateVehicle registers a vehicle. When it resolves to a known model
	// with a purchase date, warranty parts are assigned in the same
	// transaction.
	CreateVehicle(ctx context.Context, params CreateVehicleParams) (*queries.VehicleView, error)
	UpdateOdometer(ctx context.Context, vehicleID uuid.UUID, km uint) (*queries.VehicleView, error)
}

type vehicleCommandsImpl struct {
	vehicleRepo    VehicleRepository
	customerRepo   CustomerRepository
	modelRepo      ModelRepository
	componentRepo  ComponentRepository
	partRepo       PartRepository
	vehicleQueries queries.VehicleQueries
	db             TxBeginner
}

func NewVehicleCommands(
	vehicleRepo VehicleRepository,
	customerRepo CustomerRepository,
	modelRepo ModelRepository,
	componentRepo ComponentRepository,
	partRepo PartRepository,
	vehicleQueries queries.VehicleQueries,
	db TxBeginner,
) VehicleCommands {
	return &vehicleCommandsImpl{
		vehicleRepo:    vehicleRepo,
		customerRepo:   customerRepo,
		modelRepo:      modelRepo,
		componentRepo:  componentRepo,
		partRepo:       partRepo,
		vehicleQueries: vehicleQueries,
		db:             db,
	}
}

func (c *vehicleCommandsImpl) CreateVehicle(ctx context.Context, params CreateVehicleParams) (*queries.VehicleView, error) {
	exists, err := c.customerRepo.Exists(ctx, params.CustomerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, errs.ErrCustomerNotFound
	}

	v, err := vehicle.NewVehicle(params.CustomerID, params.ModelID, params.PlateNumber, params.PurchaseDate, params.CurrentKM)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = runInTx(ctx, c.db, func(tx pgx.Tx) error {
		if createErr := c.vehicleRepo.Create(ctx, tx, v); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(createErr, errs.ErrDuplicatePlate)
			}
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return errs.Mark(createErr, errs.ErrModelNotFound)
			}
			return createErr
		}
		return c.assignOnCreate(ctx, tx, v)
	})
	if err != nil {
		return nil, err
	}

	return c.vehicleQueries.GetVehicle(ctx, v.ID())
}

// assignOnCreate fires the implicit vehicle-creation trigger inside the
// creation transaction. A model without a stored template simply skips
// assignment; the first completed service will pick it up later.
func (c *vehicleCommandsImpl) assignOnCreate(ctx context.Context, tx pgx.Tx, v *vehicle.Vehicle) error {
	if !v.CanAutoAssign() {
		return nil
	}

	cfg, err := c.modelRepo.GetConfig(ctx, *v.ModelID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}

	catalog, err := c.componentRepo.LoadCatalog(ctx)
	if err != nil {
		return err
	}

	parts, err := warranty.AssignParts(catalog, v.ID(), *cfg, *v.PurchaseDate())
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if len(parts) == 0 {
		return nil
	}

	// Conflict with a concurrent trigger is a silent no-op, never an error.
	_, err = c.partRepo.InsertParts(ctx, tx, parts)
	return err
}

func (c *vehicleCommandsImpl) UpdateOdometer(ctx context.Context, vehicleID uuid.UUID, km uint) (*queries.VehicleView, error) {
	v, err := c.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := v.UpdateOdometer(km); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.vehicleRepo.UpdateOdometer(ctx, vehicleID, km); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.vehicleQueries.GetVehicle(ctx, vehicleID)
}
