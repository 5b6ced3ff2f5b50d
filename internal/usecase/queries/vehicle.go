package queries

import (
	"context"

	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type VehicleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	FindByPlate(ctx context.Context, plate string) (*VehicleView, error)
	List(ctx context.Context, search string, limit, offset int32) ([]*VehicleView, int64, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type ServiceReadStore interface {
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*ServiceView, error)
}

type VehicleQueries interface {
	GetVehicle(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	ListVehicles(ctx context.Context, search string, limit, offset int32) (*VehiclePage, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	ListVehicleServices(ctx context.Context, vehicleID uuid.UUID) ([]*ServiceView, error)
}

type vehicleQueriesImpl struct {
	vehicles  VehicleReadStore
	customers CustomerReadStore
	services  ServiceReadStore
}

func NewVehicleQueries(vehicles VehicleReadStore, customers CustomerReadStore, services ServiceReadStore) VehicleQueries {
	return &vehicleQueriesImpl{vehicles: vehicles, customers: customers, services: services}
}

func (q *vehicleQueriesImpl) GetVehicle(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	view, err := q.vehicles.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *vehicleQueriesImpl) ListVehicles(ctx context.Context, search string, limit, offset int32) (*VehiclePage, error) {
	if limit <= 0 {
		limit = 50
	}
	items, total, err := q.vehicles.List(ctx, search, limit, offset)
	if err != nil {
		return nil, err
	}
	return &VehiclePage{Items: items, Total: total}, nil
}

func (q *vehicleQueriesImpl) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	view, err := q.customers.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *vehicleQueriesImpl) ListVehicleServices(ctx context.Context, vehicleID uuid.UUID) ([]*ServiceView, error) {
	if _, err := q.GetVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	return q.services.ListByVehicle(ctx, vehicleID)
}
