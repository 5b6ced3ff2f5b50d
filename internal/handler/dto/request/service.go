package request

import (
	"time"

	"autoshop-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	VehicleID    uuid.UUID `json:"vehicle_id" binding:"required"`
	ServiceDate  string    `json:"service_date" binding:"required"`
	TotalAmount  float64   `json:"total_amount" binding:"gte=0"`
	WarrantyUsed bool      `json:"warranty_used"`
	Status       string    `json:"status" binding:"required,oneof=pending completed"`
}

func (r CreateServiceRequest) ToParams() (commands.CreateServiceParams, error) {
	serviceDate, err := time.Parse("2006-01-02", r.ServiceDate)
	if err != nil {
		return commands.CreateServiceParams{}, err
	}
	return commands.CreateServiceParams{
		VehicleID:    r.VehicleID,
		ServiceDate:  serviceDate,
		TotalAmount:  r.TotalAmount,
		WarrantyUsed: r.WarrantyUsed,
		Status:       r.Status,
	}, nil
}

type ListWarrantiesQuery struct {
	Limit  int32 `form:"limit,default=50" binding:"gte=0,lte=200"`
	Offset int32 `form:"offset,default=0" binding:"gte=0"`
}
