package commands

import (
	"context"
	"time"

	svc "autoshop-backend/internal/domain/service"
	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/pkg/errs"
	"autoshop-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreateServiceParams struct {
	VehicleID    uuid.UUID
	ServiceDate  time.Time
	TotalAmount  float64
	WarrantyUsed bool
	Status       string
}

type ServiceCommands interface {
	// CreateService records a service-ledger row. Completing the first
	// service of a vehicle with no prior completed services triggers
	// warranty assignment with the service date as the start date.
	CreateService(ctx context.Context, params CreateServiceParams) (*queries.ServiceView, error)
}

type serviceCommandsImpl struct {
	serviceRepo   ServiceRepository
	vehicleRepo   VehicleRepository
	modelRepo     ModelRepository
	componentRepo ComponentRepository
	partRepo      PartRepository
	db            TxBeginner
}

func NewServiceCommands(
	serviceRepo ServiceRepository,
	vehicleRepo VehicleRepository,
	modelRepo ModelRepository,
	componentRepo ComponentRepository,
	partRepo PartRepository,
	db TxBeginner,
) ServiceCommands {
	return &serviceCommandsImpl{
		serviceRepo:   serviceRepo,
		vehicleRepo:   vehicleRepo,
		modelRepo:     modelRepo,
		componentRepo: componentRepo,
		partRepo:      partRepo,
		db:            db,
	}
}

func (c *serviceCommandsImpl) CreateService(ctx context.Context, params CreateServiceParams) (*queries.ServiceView, error) {
	v, err := c.vehicleRepo.FindByID(ctx, params.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	record, err := svc.NewRecord(params.VehicleID, params.ServiceDate, params.TotalAmount, params.WarrantyUsed, svc.Status(params.Status))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = runInTx(ctx, c.db, func(tx pgx.Tx) error {
		// The zero-completed-services check and the insert share one
		// transaction; the parts uniqueness constraint settles any race
		// with the vehicle-creation trigger.
		firstCompleted := false
		if record.IsCompleted() {
			count, countErr := c.serviceRepo.CountCompleted(ctx, tx, params.VehicleID)
			if countErr != nil {
				return countErr
			}
			firstCompleted = count == 0
		}

		if createErr := c.serviceRepo.Create(ctx, tx, record); createErr != nil {
			return createErr
		}

		if firstCompleted {
			return c.assignOnFirstService(ctx, tx, v.ID(), v.ModelID(), record.ServiceDate())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.ServiceView{
		ID:           record.ID(),
		VehicleID:    record.VehicleID(),
		ServiceDate:  record.ServiceDate(),
		TotalAmount:  record.TotalAmount(),
		WarrantyUsed: record.WarrantyUsed(),
		Status:       string(record.Status()),
		CreatedAt:    record.CreatedAt(),
	}, nil
}

func (c *serviceCommandsImpl) assignOnFirstService(ctx context.Context, tx pgx.Tx, vehicleID uuid.UUID, modelID *uuid.UUID, startDate time.Time) error {
	if modelID == nil {
		return nil
	}

	cfg, err := c.modelRepo.GetConfig(ctx, *modelID)
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

	parts, err := warranty.AssignParts(catalog, vehicleID, *cfg, startDate)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if len(parts) == 0 {
		return nil
	}

	// Already-assigned vehicles no-op via the uniqueness constraint.
	_, err = c.partRepo.InsertParts(ctx, tx, parts)
	return err
}
