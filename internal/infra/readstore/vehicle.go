package readstore

import (
	"context"

	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/infra/db"
	"autoshop-backend/internal/pkg/pgconv"
	"autoshop-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(pool db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: pool}
}

const vehicleViewSelect = `
	SELECT v.id, v.customer_id, cu.name, v.model_id, m.name, v.plate_number,
	       v.purchase_date, v.current_km, v.created_at, v.updated_at
	FROM vehicles v
	JOIN customers cu ON cu.id = v.customer_id
	LEFT JOIN vehicle_models m ON m.id = v.model_id`

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	row := r.db.QueryRow(ctx, vehicleViewSelect+` WHERE v.id = $1`, id)
	view, err := scanVehicleView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return view, nil
}

func (r *VehicleReadStore) FindByPlate(ctx context.Context, plate string) (*queries.VehicleView, error) {
	row := r.db.QueryRow(ctx, vehicleViewSelect+` WHERE v.plate_number = $1`, plate)
	view, err := scanVehicleView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by plate", err)
	}
	return view, nil
}

// List filters by plate or customer name when a search term is present.
// Offset pagination matches the uniform {rows, total} shape of the shop's
// list endpoints.
func (r *VehicleReadStore) List(ctx context.Context, search string, limit, offset int32) ([]*queries.VehicleView, int64, error) {
	where := ``
	args := []any{limit, offset}
	if search != "" {
		where = ` WHERE v.plate_number ILIKE '%' || $3 || '%' OR cu.name ILIKE '%' || $3 || '%'`
		args = append(args, search)
	}

	var total int64
	countSQL := `SELECT count(*) FROM vehicles v JOIN customers cu ON cu.id = v.customer_id` + where
	countArgs := args[2:]
	if search != "" {
		countSQL = `SELECT count(*) FROM vehicles v JOIN customers cu ON cu.id = v.customer_id
			WHERE v.plate_number ILIKE '%' || $1 || '%' OR cu.name ILIKE '%' || $1 || '%'`
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count vehicles", err)
	}

	rows, err := r.db.Query(ctx, vehicleViewSelect+where+` ORDER BY v.created_at DESC, v.id LIMIT $1 OFFSET $2`, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	var views []*queries.VehicleView
	for rows.Next() {
		view, scanErr := scanVehicleView(rows)
		if scanErr != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan vehicle", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate vehicles", err)
	}
	return views, total, nil
}

func scanVehicleView(row pgx.Row) (*queries.VehicleView, error) {
	var (
		view         queries.VehicleView
		modelID      pgtype.UUID
		modelName    pgtype.Text
		purchaseDate pgtype.Date
		currentKM    int32
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.CustomerID, &view.CustomerName, &modelID, &modelName,
		&view.PlateNumber, &purchaseDate, &currentKM, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	view.ModelID = pgconv.UUIDPtrFromPgtype(modelID)
	view.ModelName = pgconv.StringPtrFromPgtype(modelName)
	view.PurchaseDate = pgconv.DatePtrFromPgtype(purchaseDate)
	view.CurrentKM = uint(currentKM)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(pool db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: pool}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	var (
		view      queries.CustomerView
		phone     pgtype.Text
		email     pgtype.Text
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, phone, email, created_at FROM customers WHERE id = $1`, id).
		Scan(&view.ID, &view.Name, &phone, &email, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	view.Phone = pgconv.StringPtrFromPgtype(phone)
	view.Email = pgconv.StringPtrFromPgtype(email)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
