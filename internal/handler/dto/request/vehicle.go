package request

import (
	"time"

	"autoshop-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateVehicleRequest struct {
	CustomerID   uuid.UUID  `json:"customer_id" binding:"required"`
	ModelID      *uuid.UUID `json:"model_id,omitempty"`
	PlateNumber  string     `json:"plate_number" binding:"required"`
	PurchaseDate *string    `json:"purchase_date,omitempty"`
	CurrentKM    uint       `json:"current_km"`
}

func (r CreateVehicleRequest) ToParams() (commands.CreateVehicleParams, error) {
	var purchaseDate *time.Time
	if r.PurchaseDate != nil {
		d, err := time.Parse("2006-01-02", *r.PurchaseDate)
		if err != nil {
			return commands.CreateVehicleParams{}, err
		}
		purchaseDate = &d
	}
	return commands.CreateVehicleParams{
		CustomerID:   r.CustomerID,
		ModelID:      r.ModelID,
		PlateNumber:  r.PlateNumber,
		PurchaseDate: purchaseDate,
		CurrentKM:    r.CurrentKM,
	}, nil
}

type UpdateOdometerRequest struct {
	CurrentKM uint `json:"current_km" binding:"required"`
}

type ListVehiclesQuery struct {
	Search string `form:"search"`
	Limit  int32  `form:"limit,default=50" binding:"gte=0,lte=200"`
	Offset int32  `form:"offset,default=0" binding:"gte=0"`
}
