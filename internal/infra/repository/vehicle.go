package repository

import (
	"context"

	"autoshop-backend/internal/domain/vehicle"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/infra/db"
	"autoshop-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(pool db.DBTX) *VehicleRepository {
	return &VehicleRepository{db: pool}
}

func (r *VehicleRepository) Create(ctx context.Context, tx pgx.Tx, v *vehicle.Vehicle) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO vehicles (id, customer_id, model_id, plate_number, purchase_date, current_km)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		v.ID(), v.CustomerID(), pgconv.UUIDPtrToPgtype(v.ModelID()), v.PlateNumber(),
		pgconv.DatePtrToPgtype(v.PurchaseDate()), int32(v.CurrentKM()))
	if err != nil {
		return infra.WrapRepoErr("failed to create vehicle", err)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, customer_id, model_id, plate_number, purchase_date, current_km, created_at, updated_at
		FROM vehicles WHERE id = $1`, id)

	var (
		vehicleID, customerID uuid.UUID
		modelID               pgtype.UUID
		plate                 string
		purchaseDate          pgtype.Date
		currentKM             int32
		createdAt, updatedAt  pgtype.Timestamptz
	)
	if err := row.Scan(&vehicleID, &customerID, &modelID, &plate, &purchaseDate, &currentKM, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}

	return vehicle.ReconstructVehicle(
		vehicleID, customerID,
		pgconv.UUIDPtrFromPgtype(modelID),
		plate,
		pgconv.DatePtrFromPgtype(purchaseDate),
		uint(currentKM),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *VehicleRepository) UpdateOdometer(ctx context.Context, id uuid.UUID, km uint) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE vehicles SET current_km = $2, updated_at = now() WHERE id = $1`, id, int32(km))
	if err != nil {
		return infra.WrapRepoErr("failed to update odometer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
