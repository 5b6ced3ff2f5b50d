package commands

import (
	"context"

	svc "autoshop-backend/internal/domain/service"
	"autoshop-backend/internal/domain/vehicle"
	"autoshop-backend/internal/domain/warranty"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxBeginner opens database transactions. pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Write-side ports implemented by the pgx repositories.

type ComponentRepository interface {
	LoadCatalog(ctx context.Context) (*warranty.Catalog, error)
}

type ModelRepository interface {
	// GetConfig returns the model's warranty template, or a NotFound
	// repository error when the model does not exist.
	GetConfig(ctx context.Context, modelID uuid.UUID) (*warranty.ModelConfig, error)
	// ReplaceConfig overwrites every per-component row for the model.
	// Full replace, not merge; callers wrap it in a transaction.
	ReplaceConfig(ctx context.Context, tx pgx.Tx, modelID uuid.UUID, cfg warranty.ModelConfig) error
}

type PartRepository interface {
	// InsertParts persists the assigned parts all-or-nothing within the
	// given transaction. Rows colliding on (vehicle_id, component_id)
	// are silently skipped; the returned count is the rows actually
	// written.
	InsertParts(ctx context.Context, tx pgx.Tx, parts []*warranty.Part) (int64, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, tx pgx.Tx, v *vehicle.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	UpdateOdometer(ctx context.Context, id uuid.UUID, km uint) error
}

type CustomerRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, tx pgx.Tx, rec *svc.Record) error
	// CountCompleted reports completed service rows for the vehicle as
	// seen inside the given transaction.
	CountCompleted(ctx context.Context, tx pgx.Tx, vehicleID uuid.UUID) (int64, error)
}
