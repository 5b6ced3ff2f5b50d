package repository

import (
	"context"

	svc "autoshop-backend/internal/domain/service"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/infra/db"
	"autoshop-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(pool db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: pool}
}

func (r *ServiceRepository) Create(ctx context.Context, tx pgx.Tx, rec *svc.Record) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO service_records (id, vehicle_id, service_date, total_amount, warranty_used, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID(), rec.VehicleID(), pgconv.DateToPgtype(rec.ServiceDate()),
		rec.TotalAmount(), rec.WarrantyUsed(), string(rec.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to create service record", err)
	}
	return nil
}

func (r *ServiceRepository) CountCompleted(ctx context.Context, tx pgx.Tx, vehicleID uuid.UUID) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx,
		`SELECT count(*) FROM service_records WHERE vehicle_id = $1 AND status = 'completed'`,
		vehicleID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count completed services", err)
	}
	return count, nil
}
