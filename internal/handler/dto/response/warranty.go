package response

import (
	"time"

	"autoshop-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const wireDateFormat = "2006-01-02"

type ComponentResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type ComponentTermsResponse struct {
	Component  string `json:"component"`
	Years      uint   `json:"years"`
	KM         uint   `json:"km"`
	Applicable bool   `json:"applicable"`
}

type ModelConfigResponse struct {
	ModelID          uuid.UUID                `json:"model_id"`
	ModelName        string                   `json:"model_name"`
	HasHybridBattery bool                     `json:"has_hybrid_battery"`
	Components       []ComponentTermsResponse `json:"components"`
}

type ModelResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	HasHybridBattery bool      `json:"has_hybrid_battery"`
}

type PartResponse struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	ComponentID   uuid.UUID `json:"component_id"`
	ComponentName string    `json:"component_name"`
	Years         uint      `json:"warranty_years"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	KMLimit       uint      `json:"km_limit"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ComponentStatusResponse struct {
	ComponentID     uuid.UUID `json:"component_id"`
	ComponentName   string    `json:"component_name"`
	Category        string    `json:"category"`
	Status          string    `json:"status"`
	StartDate       *string   `json:"start_date,omitempty"`
	EndDate         *string   `json:"end_date,omitempty"`
	KMLimit         uint      `json:"km_limit"`
	RemainingDays   int       `json:"remaining_days"`
	RemainingYears  float64   `json:"remaining_years"`
	RemainingKM     uint      `json:"remaining_km"`
	ProgressPercent float64   `json:"progress_percent"`
}

type UsageSummaryResponse struct {
	ServicesUsed    uint    `json:"services_used"`
	TotalCovered    float64 `json:"total_covered"`
	LastServiceDate *string `json:"last_service_date,omitempty"`
}

type WarrantyReportResponse struct {
	Vehicle    VehicleResponse           `json:"vehicle"`
	Components []ComponentStatusResponse `json:"components"`
	Usage      UsageSummaryResponse      `json:"usage"`
}

type WarrantyPageResponse struct {
	Items []WarrantyReportResponse `json:"items"`
	Total int64                    `json:"total"`
}

func NewComponentList(views []queries.ComponentView) []ComponentResponse {
	out := make([]ComponentResponse, 0, len(views))
	_ = copier.Copy(&out, &views)
	return out
}

func NewModelConfig(view *queries.ModelConfigView) ModelConfigResponse {
	var out ModelConfigResponse
	_ = copier.Copy(&out, view)
	return out
}

func NewModelList(views []*queries.ModelView) []ModelResponse {
	out := make([]ModelResponse, 0, len(views))
	_ = copier.Copy(&out, &views)
	return out
}

func NewPart(view *queries.PartView) PartResponse {
	var out PartResponse
	_ = copier.Copy(&out, view)
	out.StartDate = view.StartDate.Format(wireDateFormat)
	out.EndDate = view.EndDate.Format(wireDateFormat)
	return out
}

func NewPartList(views []*queries.PartView) []PartResponse {
	out := make([]PartResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewPart(v))
	}
	return out
}

func NewWarrantyReport(report *queries.VehicleWarrantyReport) WarrantyReportResponse {
	components := make([]ComponentStatusResponse, 0, len(report.Components))
	for _, s := range report.Components {
		var c ComponentStatusResponse
		_ = copier.Copy(&c, &s)
		c.StartDate = formatDatePtr(s.StartDate)
		c.EndDate = formatDatePtr(s.EndDate)
		components = append(components, c)
	}
	return WarrantyReportResponse{
		Vehicle:    NewVehicle(&report.Vehicle),
		Components: components,
		Usage: UsageSummaryResponse{
			ServicesUsed:    report.Usage.ServicesUsed,
			TotalCovered:    report.Usage.TotalCovered,
			LastServiceDate: formatDatePtr(report.Usage.LastServiceDate),
		},
	}
}

func NewWarrantyPage(page *queries.WarrantyPage) WarrantyPageResponse {
	items := make([]WarrantyReportResponse, 0, len(page.Items))
	for _, r := range page.Items {
		items = append(items, NewWarrantyReport(r))
	}
	return WarrantyPageResponse{Items: items, Total: page.Total}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(wireDateFormat)
	return &s
}
