package queries

import (
	"context"
	"log/slog"

	"autoshop-backend/internal/domain/warranty"
	"autoshop-backend/internal/infra"
	"autoshop-backend/internal/pkg/clock"
	"autoshop-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read-side ports implemented by the pgx read stores.

type ComponentReadStore interface {
	List(ctx context.Context) ([]warranty.Component, error)
}

type ModelConfigReadStore interface {
	Get(ctx context.Context, modelID uuid.UUID) (*ModelConfigView, error)
	ListModels(ctx context.Context) ([]*ModelView, error)
}

type PartReadStore interface {
	FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*warranty.Part, error)
}

type ServiceUsageReadStore interface {
	UsageRows(ctx context.Context, vehicleID uuid.UUID) ([]warranty.ServiceUsage, error)
}

type WarrantyQueries interface {
	ListComponents(ctx context.Context) ([]ComponentView, error)
	ListModels(ctx context.Context) ([]*ModelView, error)
	GetModelConfig(ctx context.Context, modelID uuid.UUID) (*ModelConfigView, error)
	GetVehicleParts(ctx context.Context, vehicleID uuid.UUID) ([]*PartView, error)
	GetVehicleReport(ctx context.Context, vehicleID uuid.UUID) (*VehicleWarrantyReport, error)
	ListWarranties(ctx context.Context, limit, offset int32) (*WarrantyPage, error)
}

type warrantyQueriesImpl struct {
	components ComponentReadStore
	configs    ModelConfigReadStore
	parts      PartReadStore
	vehicles   VehicleReadStore
	usage      ServiceUsageReadStore
	clock      clock.Clock
	thresholds warranty.Thresholds
}

func NewWarrantyQueries(
	components ComponentReadStore,
	configs ModelConfigReadStore,
	parts PartReadStore,
	vehicles VehicleReadStore,
	usage ServiceUsageReadStore,
	clk clock.Clock,
	thresholds warranty.Thresholds,
) WarrantyQueries {
	return &warrantyQueriesImpl{
		components: components,
		configs:    configs,
		parts:      parts,
		vehicles:   vehicles,
		usage:      usage,
		clock:      clk,
		thresholds: thresholds,
	}
}

func (q *warrantyQueriesImpl) ListComponents(ctx context.Context) ([]ComponentView, error) {
	components, err := q.components.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ComponentView, len(components))
	for i, c := range components {
		views[i] = ComponentView{ID: c.ID, Name: c.Name, Category: string(c.Category)}
	}
	return views, nil
}

func (q *warrantyQueriesImpl) ListModels(ctx context.Context) ([]*ModelView, error) {
	return q.configs.ListModels(ctx)
}

func (q *warrantyQueriesImpl) GetModelConfig(ctx context.Context, modelID uuid.UUID) (*ModelConfigView, error) {
	view, err := q.configs.Get(ctx, modelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrModelNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *warrantyQueriesImpl) GetVehicleParts(ctx context.Context, vehicleID uuid.UUID) ([]*PartView, error) {
	if _, err := q.findVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	parts, err := q.parts.FindByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	views := make([]*PartView, len(parts))
	for i, p := range parts {
		views[i] = PartViewFromDomain(p)
	}
	return views, nil
}

func (q *warrantyQueriesImpl) GetVehicleReport(ctx context.Context, vehicleID uuid.UUID) (*VehicleWarrantyReport, error) {
	vehicleView, err := q.findVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return q.buildReport(ctx, vehicleView)
}

func (q *warrantyQueriesImpl) ListWarranties(ctx context.Context, limit, offset int32) (*WarrantyPage, error) {
	if limit <= 0 {
		limit = 50
	}
	vehicles, total, err := q.vehicles.List(ctx, "", limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]*VehicleWarrantyReport, 0, len(vehicles))
	for _, v := range vehicles {
		report, err := q.buildReport(ctx, v)
		if err != nil {
			return nil, err
		}
		items = append(items, report)
	}
	return &WarrantyPage{Items: items, Total: total}, nil
}

// buildReport recomputes live status on every read: "now" and the odometer
// change between reads, so the result is never cached or persisted.
func (q *warrantyQueriesImpl) buildReport(ctx context.Context, vehicleView *VehicleView) (*VehicleWarrantyReport, error) {
	components, err := q.components.List(ctx)
	if err != nil {
		return nil, err
	}
	parts, err := q.parts.FindByVehicle(ctx, vehicleView.ID)
	if err != nil {
		return nil, err
	}

	catalog := warranty.NewCatalog(components)
	statuses := warranty.BuildStatusReport(catalog, parts, q.clock.Now(), vehicleView.CurrentKM, q.thresholds)

	statusViews := make([]ComponentStatusView, len(statuses))
	for i, s := range statuses {
		statusViews[i] = componentStatusView(s)
	}

	return &VehicleWarrantyReport{
		Vehicle:    *vehicleView,
		Components: statusViews,
		Usage:      q.usageSummary(ctx, vehicleView.ID),
	}, nil
}

// usageSummary degrades to zeros when the service ledger is unavailable:
// warranty status must still render without usage history.
func (q *warrantyQueriesImpl) usageSummary(ctx context.Context, vehicleID uuid.UUID) UsageSummaryView {
	rows, err := q.usage.UsageRows(ctx, vehicleID)
	if err != nil {
		slog.Warn("service ledger unavailable, reporting zeroed usage",
			"vehicle_id", vehicleID, "error", err.Error())
		return UsageSummaryView{}
	}
	summary := warranty.SummarizeUsage(rows)
	return UsageSummaryView{
		ServicesUsed:    summary.ServicesUsed,
		TotalCovered:    summary.TotalCovered,
		LastServiceDate: summary.LastServiceDate,
	}
}

func (q *warrantyQueriesImpl) findVehicle(ctx context.Context, vehicleID uuid.UUID) (*VehicleView, error) {
	view, err := q.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		return nil, err
	}
	return view, nil
}

func PartViewFromDomain(p *warranty.Part) *PartView {
	return &PartView{
		ID:            p.ID(),
		VehicleID:     p.VehicleID(),
		ComponentID:   p.ComponentID(),
		ComponentName: p.ComponentName(),
		Years:         p.Years(),
		StartDate:     p.StartDate(),
		EndDate:       p.EndDate(),
		KMLimit:       p.KMLimit(),
		Status:        string(p.Status()),
		CreatedAt:     p.CreatedAt(),
	}
}

func componentStatusView(s warranty.StatusView) ComponentStatusView {
	return ComponentStatusView{
		ComponentID:     s.ComponentID,
		ComponentName:   s.ComponentName,
		Category:        string(s.Category),
		Status:          string(s.Status),
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		KMLimit:         s.KMLimit,
		RemainingDays:   s.RemainingDays,
		RemainingYears:  s.RemainingYears,
		RemainingKM:     s.RemainingKM,
		ProgressPercent: s.ProgressPercent,
	}
}
