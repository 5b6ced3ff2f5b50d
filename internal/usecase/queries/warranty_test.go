//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/pkg/clock"
	"autoshop-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComponentStore struct {
	components []warranty.Component
	err        error
}

func (f *fakeComponentStore) List(context.Context) ([]warranty.Component, error) {
	return f.components, f.err
}

type fakeConfigStore struct {
	config *ModelConfigView
	models []*ModelView
	err    error
}

func (f *fakeConfigStore) Get(context.Context, uuid.UUID) (*ModelConfigView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

func (f *fakeConfigStore) ListModels(context.Context) ([]*ModelView, error) {
	return f.models, f.err
}

type fakePartStore struct {
	parts []*warranty.Part
	err   error
}

func (f *fakePartStore) FindByVehicle(context.Context, uuid.UUID) ([]*warranty.Part, error) {
	return f.parts, f.err
}

type fakeVehicleStore struct {
	views []*VehicleView
	err   error
}

func (f *fakeVehicleStore) FindByID(_ context.Context, id uuid.UUID) (*VehicleView, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr("vehicle not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (f *fakeVehicleStore) FindByPlate(context.Context, string) (*VehicleView, error) {
	return nil, nil
}

func (f *fakeVehicleStore) List(context.Context, string, int32, int32) ([]*VehicleView, int64, error) {
	return f.views, int64(len(f.views)), f.err
}

type fakeUsageStore struct {
	rows []warranty.ServiceUsage
	err  error
}

func (f *fakeUsageStore) UsageRows(context.Context, uuid.UUID) ([]warranty.ServiceUsage, error) {
	return f.rows, f.err
}

func seededComponents() []warranty.Component {
	return []warranty.Component{
		{ID: uuid.New(), Name: warranty.ComponentEngine, Category: warranty.CategoryPowertrain},
		{ID: uuid.New(), Name: warranty.ComponentCarPaint, Category: warranty.CategoryExterior},
		{ID: uuid.New(), Name: warranty.ComponentTransmission, Category: warranty.CategoryPowertrain},
		{ID: uuid.New(), Name: warranty.ComponentElectrical, Category: warranty.CategoryElectrical},
		{ID: uuid.New(), Name: warranty.ComponentBatteryHybrid, Category: warranty.CategoryElectrical},
	}
}

func mustPart(t *testing.T, vehicleID uuid.UUID, component warranty.Component, years, km uint, start time.Time) *warranty.Part {
	t.Helper()
	p, err := warranty.NewPart(vehicleID, component, warranty.ComponentTerms{Years: years, KM: km, Applicable: true}, start)
	require.NoError(t, err)
	return p
}

func TestGetVehicleReport(t *testing.T) {
	vehicleID := uuid.New()
	components := seededComponents()
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)

	vehicleView := &VehicleView{ID: vehicleID, PlateNumber: "ABC-1234", CurrentKM: 49500}
	enginePart := mustPart(t, vehicleID, components[0], 3, 50000, start)

	newQueries := func(usage ServiceUsageReadStore) WarrantyQueries {
		return NewWarrantyQueries(
			&fakeComponentStore{components: components},
			&fakeConfigStore{},
			&fakePartStore{parts: []*warranty.Part{enginePart}},
			&fakeVehicleStore{views: []*VehicleView{vehicleView}},
			usage,
			clock.NewMockClock(now),
			warranty.DefaultThresholds(),
		)
	}

	t.Run("classifies assigned and unassigned components", func(t *testing.T) {
		lastService := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
		q := newQueries(&fakeUsageStore{rows: []warranty.ServiceUsage{
			{ServiceDate: lastService, TotalAmount: 450, WarrantyUsed: true},
			{ServiceDate: lastService.AddDate(0, -2, 0), TotalAmount: 120, WarrantyUsed: false},
			{ServiceDate: lastService.AddDate(0, -4, 0), TotalAmount: 250, WarrantyUsed: true},
		}})

		report, err := q.GetVehicleReport(context.Background(), vehicleID)
		require.NoError(t, err)

		require.Len(t, report.Components, 5)
		engine := report.Components[0]
		assert.Equal(t, warranty.ComponentEngine, engine.ComponentName)
		assert.Equal(t, string(warranty.LiveStatusExpiringSoon), engine.Status)
		assert.Equal(t, 26, engine.RemainingDays)
		assert.Equal(t, uint(500), engine.RemainingKM)

		for _, c := range report.Components[1:] {
			assert.Equal(t, string(warranty.LiveStatusNotApplicable), c.Status, c.ComponentName)
		}

		assert.Equal(t, uint(2), report.Usage.ServicesUsed)
		assert.InDelta(t, 700, report.Usage.TotalCovered, 0.001)
		require.NotNil(t, report.Usage.LastServiceDate)
		assert.Equal(t, lastService, *report.Usage.LastServiceDate)
	})

	t.Run("ledger failure degrades usage to zeros", func(t *testing.T) {
		q := newQueries(&fakeUsageStore{err: errs.New("ledger down")})

		report, err := q.GetVehicleReport(context.Background(), vehicleID)
		require.NoError(t, err)
		assert.Equal(t, UsageSummaryView{}, report.Usage)
		assert.Len(t, report.Components, 5)
	})

	t.Run("unknown vehicle maps to not found", func(t *testing.T) {
		q := newQueries(&fakeUsageStore{})
		_, err := q.GetVehicleReport(context.Background(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrVehicleNotFound)
	})
}

func TestListWarranties(t *testing.T) {
	components := seededComponents()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	vehicles := []*VehicleView{
		{ID: uuid.New(), PlateNumber: "AAA-1111", CurrentKM: 10000},
		{ID: uuid.New(), PlateNumber: "BBB-2222", CurrentKM: 95000},
	}

	q := NewWarrantyQueries(
		&fakeComponentStore{components: components},
		&fakeConfigStore{},
		&fakePartStore{},
		&fakeVehicleStore{views: vehicles},
		&fakeUsageStore{},
		clock.NewMockClock(now),
		warranty.DefaultThresholds(),
	)

	page, err := q.ListWarranties(context.Background(), 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	for _, item := range page.Items {
		assert.Len(t, item.Components, 5)
	}
}

func TestGetModelConfig(t *testing.T) {
	t.Run("missing model maps to not found", func(t *testing.T) {
		q := NewWarrantyQueries(
			&fakeComponentStore{},
			&fakeConfigStore{err: infra.WrapRepoErr("model not found", pgx.ErrNoRows, infra.KindNotFound)},
			&fakePartStore{},
			&fakeVehicleStore{},
			&fakeUsageStore{},
			clock.NewMockClock(time.Now()),
			warranty.DefaultThresholds(),
		)
		_, err := q.GetModelConfig(context.Background(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrModelNotFound)
	})
}
