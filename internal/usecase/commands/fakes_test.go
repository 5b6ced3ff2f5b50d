//go:build unit

package commands

import (
	"context"
	"time"

	svc "autoshop-backend/internal/domain/service"
	"autoshop-backend/internal/domain/vehicle"
	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeTx satisfies pgx.Tx for paths that only pass the transaction through
// to repository fakes.
type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(context.Context) (pgx.Tx, error) { return t, nil }
func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}
func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
		return nil
	}
	return pgx.ErrTxClosed
}
func (t *fakeTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *fakeTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (t *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                         { return nil }

type fakeTxBeginner struct {
	tx       *fakeTx
	beginErr error
}

func newFakeTxBeginner() *fakeTxBeginner {
	return &fakeTxBeginner{tx: &fakeTx{}}
}

func (b *fakeTxBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

type fakeComponentRepo struct {
	catalog *warranty.Catalog
	err     error
}

func (f *fakeComponentRepo) LoadCatalog(context.Context) (*warranty.Catalog, error) {
	return f.catalog, f.err
}

type fakeModelRepo struct {
	cfg        *warranty.ModelConfig
	getErr     error
	replaceErr error
	replaced   *warranty.ModelConfig
}

func (f *fakeModelRepo) GetConfig(context.Context, uuid.UUID) (*warranty.ModelConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cfg, nil
}

func (f *fakeModelRepo) ReplaceConfig(_ context.Context, _ pgx.Tx, _ uuid.UUID, cfg warranty.ModelConfig) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = &cfg
	return nil
}

type fakePartRepo struct {
	inserted  int64
	insertErr error
	got       []*warranty.Part
	calls     int
}

func (f *fakePartRepo) InsertParts(_ context.Context, _ pgx.Tx, parts []*warranty.Part) (int64, error) {
	f.calls++
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.got = parts
	if f.inserted < 0 {
		return 0, nil
	}
	if f.inserted > 0 {
		return f.inserted, nil
	}
	return int64(len(parts)), nil
}

type fakeVehicleRepo struct {
	vehicle   *vehicle.Vehicle
	findErr   error
	createErr error
	updateErr error
	created   *vehicle.Vehicle
	updatedKM uint
}

func (f *fakeVehicleRepo) Create(_ context.Context, _ pgx.Tx, v *vehicle.Vehicle) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = v
	return nil
}

func (f *fakeVehicleRepo) FindByID(context.Context, uuid.UUID) (*vehicle.Vehicle, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.vehicle, nil
}

func (f *fakeVehicleRepo) UpdateOdometer(_ context.Context, _ uuid.UUID, km uint) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedKM = km
	return nil
}

type fakeCustomerRepo struct {
	exists bool
	err    error
}

func (f *fakeCustomerRepo) Exists(context.Context, uuid.UUID) (bool, error) {
	return f.exists, f.err
}

type fakeServiceRepo struct {
	completedCount int64
	countErr       error
	createErr      error
	created        *svc.Record
}

func (f *fakeServiceRepo) Create(_ context.Context, _ pgx.Tx, rec *svc.Record) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = rec
	return nil
}

func (f *fakeServiceRepo) CountCompleted(context.Context, pgx.Tx, uuid.UUID) (int64, error) {
	return f.completedCount, f.countErr
}

type fakeWarrantyQueries struct {
	config *queries.ModelConfigView
}

func (f *fakeWarrantyQueries) ListComponents(context.Context) ([]queries.ComponentView, error) {
	return nil, nil
}
func (f *fakeWarrantyQueries) ListModels(context.Context) ([]*queries.ModelView, error) {
	return nil, nil
}
func (f *fakeWarrantyQueries) GetModelConfig(context.Context, uuid.UUID) (*queries.ModelConfigView, error) {
	return f.config, nil
}
func (f *fakeWarrantyQueries) GetVehicleParts(context.Context, uuid.UUID) ([]*queries.PartView, error) {
	return nil, nil
}
func (f *fakeWarrantyQueries) GetVehicleReport(context.Context, uuid.UUID) (*queries.VehicleWarrantyReport, error) {
	return nil, nil
}
func (f *fakeWarrantyQueries) ListWarranties(context.Context, int32, int32) (*queries.WarrantyPage, error) {
	return nil, nil
}

type fakeVehicleQueries struct {
	view *queries.VehicleView
}

func (f *fakeVehicleQueries) GetVehicle(context.Context, uuid.UUID) (*queries.VehicleView, error) {
	return f.view, nil
}
func (f *fakeVehicleQueries) ListVehicles(context.Context, string, int32, int32) (*queries.VehiclePage, error) {
	return nil, nil
}
func (f *fakeVehicleQueries) GetCustomer(context.Context, uuid.UUID) (*queries.CustomerView, error) {
	return nil, nil
}
func (f *fakeVehicleQueries) ListVehicleServices(context.Context, uuid.UUID) ([]*queries.ServiceView, error) {
	return nil, nil
}

func testCatalog() *warranty.Catalog {
	return warranty.NewCatalog([]warranty.Component{
		{ID: uuid.New(), Name: warranty.ComponentEngine, Category: warranty.CategoryPowertrain},
		{ID: uuid.New(), Name: warranty.ComponentCarPaint, Category: warranty.CategoryExterior},
		{ID: uuid.New(), Name: warranty.ComponentTransmission, Category: warranty.CategoryPowertrain},
		{ID: uuid.New(), Name: warranty.ComponentElectrical, Category: warranty.CategoryElectrical},
		{ID: uuid.New(), Name: warranty.ComponentBatteryHybrid, Category: warranty.CategoryElectrical},
	})
}

func testConfig(hybrid bool) *warranty.ModelConfig {
	perComponent := map[string]warranty.ComponentTerms{
		warranty.ComponentEngine:       {Years: 3, KM: 50000, Applicable: true},
		warranty.ComponentCarPaint:     {Years: 2, KM: 30000, Applicable: true},
		warranty.ComponentTransmission: {Years: 3, KM: 50000, Applicable: true},
		warranty.ComponentElectrical:   {Years: 1, KM: 20000, Applicable: true},
	}
	if hybrid {
		perComponent[warranty.ComponentBatteryHybrid] = warranty.ComponentTerms{Years: 5, KM: 80000, Applicable: true}
	}
	return &warranty.ModelConfig{PerComponent: perComponent, HasHybridBattery: hybrid}
}

func testVehicle(modelID *uuid.UUID, purchaseDate *time.Time) *vehicle.Vehicle {
	return vehicle.ReconstructVehicle(
		uuid.New(), uuid.New(), modelID, "ABC-1234", purchaseDate, 12000,
		time.Now(), time.Now(),
	)
}
