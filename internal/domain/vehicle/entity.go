package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPlate       = errors.New("plate number is required")
	ErrOdometerRollback = errors.New("odometer reading cannot decrease")
)

// Vehicle is the shop's view of one physical vehicle. The model link and
// purchase date are optional: walk-in vehicles may be registered before
// either is known, in which case no warranty is auto-assigned.
type Vehicle struct {
	id           uuid.UUID
	customerID   uuid.UUID
	modelID      *uuid.UUID
	plateNumber  string
	purchaseDate *time.Time
	currentKM    uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewVehicle(customerID uuid.UUID, modelID *uuid.UUID, plateNumber string, purchaseDate *time.Time, currentKM uint) (*Vehicle, error) {
	plate := strings.ToUpper(strings.TrimSpace(plateNumber))
	if plate == "" {
		return nil, ErrEmptyPlate
	}
	return &Vehicle{
		id:           uuid.New(),
		customerID:   customerID,
		modelID:      modelID,
		plateNumber:  plate,
		purchaseDate: purchaseDate,
		currentKM:    currentKM,
	}, nil
}

func ReconstructVehicle(
	id, customerID uuid.UUID,
	modelID *uuid.UUID,
	plateNumber string,
	purchaseDate *time.Time,
	currentKM uint,
	createdAt, updatedAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:           id,
		customerID:   customerID,
		modelID:      modelID,
		plateNumber:  plateNumber,
		purchaseDate: purchaseDate,
		currentKM:    currentKM,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// UpdateOdometer rejects readings below the recorded one.
func (v *Vehicle) UpdateOdometer(km uint) error {
	if km < v.currentKM {
		return ErrOdometerRollback
	}
	v.currentKM = km
	return nil
}

// CanAutoAssign reports whether vehicle creation alone carries enough
// information to trigger warranty assignment.
func (v *Vehicle) CanAutoAssign() bool {
	return v.modelID != nil && v.purchaseDate != nil
}

func (v *Vehicle) ID() uuid.UUID            { return v.id }
func (v *Vehicle) CustomerID() uuid.UUID    { return v.customerID }
func (v *Vehicle) ModelID() *uuid.UUID      { return v.modelID }
func (v *Vehicle) PlateNumber() string      { return v.plateNumber }
func (v *Vehicle) PurchaseDate() *time.Time { return v.purchaseDate }
func (v *Vehicle) CurrentKM() uint          { return v.currentKM }
func (v *Vehicle) CreatedAt() time.Time     { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time     { return v.updatedAt }
