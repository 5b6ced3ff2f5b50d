package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ComponentView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type ComponentTermsView struct {
	Component  string `json:"component"`
	Years      uint   `json:"years"`
	KM         uint   `json:"km"`
	Applicable bool   `json:"applicable"`
}

type ModelConfigView struct {
	ModelID          uuid.UUID            `json:"model_id"`
	ModelName        string               `json:"model_name"`
	HasHybridBattery bool                 `json:"has_hybrid_battery"`
	Components       []ComponentTermsView `json:"components"`
}

type ModelView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	HasHybridBattery bool      `json:"has_hybrid_battery"`
}

type PartView struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	ComponentID   uuid.UUID `json:"component_id"`
	ComponentName string    `json:"component_name"`
	Years         uint      `json:"warranty_years"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	KMLimit       uint      `json:"km_limit"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type VehicleView struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	ModelID      *uuid.UUID `json:"model_id,omitempty"`
	ModelName    *string    `json:"model_name,omitempty"`
	PlateNumber  string     `json:"plate_number"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	CurrentKM    uint       `json:"current_km"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceView struct {
	ID           uuid.UUID `json:"id"`
	VehicleID    uuid.UUID `json:"vehicle_id"`
	ServiceDate  time.Time `json:"service_date"`
	TotalAmount  float64   `json:"total_amount"`
	WarrantyUsed bool      `json:"warranty_used"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ComponentStatusView struct {
	ComponentID     uuid.UUID  `json:"component_id"`
	ComponentName   string     `json:"component_name"`
	Category        string     `json:"category"`
	Status          string     `json:"status"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	KMLimit         uint       `json:"km_limit"`
	RemainingDays   int        `json:"remaining_days"`
	RemainingYears  float64    `json:"remaining_years"`
	RemainingKM     uint       `json:"remaining_km"`
	ProgressPercent float64    `json:"progress_percent"`
}

type UsageSummaryView struct {
	ServicesUsed    uint       `json:"services_used"`
	TotalCovered    float64    `json:"total_covered"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
}

// VehicleWarrantyReport is the denormalized per-vehicle view: vehicle info,
// the computed live status of every catalog component, and usage history
// aggregates. Every warranty-listing surface uses this one projection so
// the status calculator is applied consistently.
type VehicleWarrantyReport struct {
	Vehicle    VehicleView           `json:"vehicle"`
	Components []ComponentStatusView `json:"components"`
	Usage      UsageSummaryView      `json:"usage"`
}

type WarrantyPage struct {
	Items []*VehicleWarrantyReport `json:"items"`
	Total int64                    `json:"total"`
}

type VehiclePage struct {
	Items []*VehicleView `json:"items"`
	Total int64          `json:"total"`
}
