package repository

import (
	"context"

	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/infra/db"
	"autoshop-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PartRepository struct {
	db db.DBTX
}

func NewPartRepository(pool db.DBTX) *PartRepository {
	return &PartRepository{db: pool}
}

// InsertParts writes the assigned parts inside the caller's transaction.
// Rows that collide on (vehicle_id, component_id) are skipped, which makes
// the concurrent-trigger race a silent no-op for the loser.
func (r *PartRepository) InsertParts(ctx context.Context, tx pgx.Tx, parts []*warranty.Part) (int64, error) {
	var inserted int64
	for _, p := range parts {
		tag, err := tx.Exec(ctx, `
			INSERT INTO vehicle_warranty_parts
				(id, vehicle_id, component_id, warranty_years, start_date, end_date, km_limit, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (vehicle_id, component_id) DO NOTHING`,
			p.ID(), p.VehicleID(), p.ComponentID(), int32(p.Years()),
			pgconv.DateToPgtype(p.StartDate()), pgconv.DateToPgtype(p.EndDate()),
			int32(p.KMLimit()), string(p.Status()))
		if err != nil {
			return inserted, infra.WrapRepoErr("failed to insert warranty part", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func (r *PartRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*warranty.Part, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.vehicle_id, p.component_id, c.name, p.warranty_years,
		       p.start_date, p.end_date, p.km_limit, p.status, p.created_at
		FROM vehicle_warranty_parts p
		JOIN warranty_components c ON c.id = p.component_id
		WHERE p.vehicle_id = $1
		ORDER BY array_position(
			ARRAY['Engine', 'Car Paint', 'Transmission', 'Electrical System', 'Battery Hybrid'], c.name)`,
		vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find warranty parts", err)
	}
	defer rows.Close()

	var parts []*warranty.Part
	for rows.Next() {
		part, err := scanPart(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan warranty part", err)
		}
		parts = append(parts, part)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate warranty parts", err)
	}
	return parts, nil
}

func scanPart(rows pgx.Rows) (*warranty.Part, error) {
	var (
		id, vehicleID, componentID uuid.UUID
		componentName, status      string
		years, kmLimit             int32
		startDate, endDate         pgtype.Date
		createdAt                  pgtype.Timestamptz
	)
	if err := rows.Scan(&id, &vehicleID, &componentID, &componentName, &years,
		&startDate, &endDate, &kmLimit, &status, &createdAt); err != nil {
		return nil, err
	}
	return warranty.ReconstructPart(
		id, vehicleID, componentID,
		componentName,
		uint(years),
		pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate),
		uint(kmLimit),
		warranty.PartStatus(status),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
