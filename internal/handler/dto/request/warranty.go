package request

import (
	"time"

	"autoshop-backend/internal/domain/warranty"

	"github.com/google/uuid"
)

type ComponentTermsRequest struct {
	Years      uint `json:"years"`
	KM         uint `json:"km"`
	Applicable bool `json:"applicable"`
}

// UpdateModelConfigRequest replaces a model's full warranty template. The
// four base components are always required; battery terms only apply to
// hybrid models.
type UpdateModelConfigRequest struct {
	HasHybridBattery bool                   `json:"has_hybrid_battery"`
	Engine           ComponentTermsRequest  `json:"engine" binding:"required"`
	CarPaint         ComponentTermsRequest  `json:"car_paint" binding:"required"`
	Transmission     ComponentTermsRequest  `json:"transmission" binding:"required"`
	Electrical       ComponentTermsRequest  `json:"electrical_system" binding:"required"`
	BatteryHybrid    *ComponentTermsRequest `json:"battery_hybrid,omitempty"`
}

func (r UpdateModelConfigRequest) ToDomain() warranty.ModelConfig {
	perComponent := map[string]warranty.ComponentTerms{
		warranty.ComponentEngine:       termsToDomain(r.Engine),
		warranty.ComponentCarPaint:     termsToDomain(r.CarPaint),
		warranty.ComponentTransmission: termsToDomain(r.Transmission),
		warranty.ComponentElectrical:   termsToDomain(r.Electrical),
	}
	if r.BatteryHybrid != nil {
		perComponent[warranty.ComponentBatteryHybrid] = termsToDomain(*r.BatteryHybrid)
	}
	return warranty.ModelConfig{
		PerComponent:     perComponent,
		HasHybridBattery: r.HasHybridBattery,
	}
}

func termsToDomain(t ComponentTermsRequest) warranty.ComponentTerms {
	return warranty.ComponentTerms{Years: t.Years, KM: t.KM, Applicable: t.Applicable}
}

// AutoAssignRequest is the explicit administrative assignment trigger.
type AutoAssignRequest struct {
	VehicleID    uuid.UUID `json:"vehicle_id" binding:"required"`
	ModelID      uuid.UUID `json:"vehicle_model_id" binding:"required"`
	PurchaseDate string    `json:"purchase_date" binding:"required"`
}

// ParsePurchaseDate accepts the wire date format used across the API.
func (r AutoAssignRequest) ParsePurchaseDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.PurchaseDate)
}
