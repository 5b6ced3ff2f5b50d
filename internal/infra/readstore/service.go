package readstore

import (
	"context"

	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/infra/db"
	"autoshop-backend/internal/pkg/pgconv"
	"autoshop-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(pool db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: pool}
}

func (r *ServiceReadStore) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, vehicle_id, service_date, total_amount, warranty_used, status, created_at
		FROM service_records
		WHERE vehicle_id = $1
		ORDER BY service_date DESC, created_at DESC`, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service records", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var (
			view        queries.ServiceView
			serviceDate pgtype.Date
			amount      pgtype.Numeric
			createdAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.VehicleID, &serviceDate, &amount,
			&view.WarrantyUsed, &view.Status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service record", err)
		}
		view.ServiceDate = pgconv.DateFromPgtype(serviceDate)
		view.TotalAmount, err = pgconv.Float64FromNumeric(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode service amount", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service records", err)
	}
	return views, nil
}

// UsageRows feeds the warranty usage aggregation. Only completed services
// count toward usage.
func (r *ServiceReadStore) UsageRows(ctx context.Context, vehicleID uuid.UUID) ([]warranty.ServiceUsage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT service_date, total_amount, warranty_used
		FROM service_records
		WHERE vehicle_id = $1 AND status = 'completed'`, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service usage", err)
	}
	defer rows.Close()

	var usage []warranty.ServiceUsage
	for rows.Next() {
		var (
			row         warranty.ServiceUsage
			serviceDate pgtype.Date
			amount      pgtype.Numeric
		)
		if err := rows.Scan(&serviceDate, &amount, &row.WarrantyUsed); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service usage", err)
		}
		row.ServiceDate = pgconv.DateFromPgtype(serviceDate)
		row.TotalAmount, err = pgconv.Float64FromNumeric(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode service usage amount", err)
		}
		usage = append(usage, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service usage", err)
	}
	return usage, nil
}
