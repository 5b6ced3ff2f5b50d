package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeAmount = errors.New("service amount cannot be negative")
	ErrInvalidStatus  = errors.New("invalid service status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// Record is one service-ledger row. Completed records with WarrantyUsed set
// count toward a vehicle's warranty usage.
type Record struct {
	id           uuid.UUID
	vehicleID    uuid.UUID
	serviceDate  time.Time
	totalAmount  float64
	warrantyUsed bool
	status       Status
	createdAt    time.Time
}

func NewRecord(vehicleID uuid.UUID, serviceDate time.Time, totalAmount float64, warrantyUsed bool, status Status) (*Record, error) {
	if totalAmount < 0 {
		return nil, ErrNegativeAmount
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Record{
		id:           uuid.New(),
		vehicleID:    vehicleID,
		serviceDate:  serviceDate,
		totalAmount:  totalAmount,
		warrantyUsed: warrantyUsed,
		status:       status,
	}, nil
}

func ReconstructRecord(
	id, vehicleID uuid.UUID,
	serviceDate time.Time,
	totalAmount float64,
	warrantyUsed bool,
	status Status,
	createdAt time.Time,
) *Record {
	return &Record{
		id:           id,
		vehicleID:    vehicleID,
		serviceDate:  serviceDate,
		totalAmount:  totalAmount,
		warrantyUsed: warrantyUsed,
		status:       status,
		createdAt:    createdAt,
	}
}

func (r *Record) IsCompleted() bool { return r.status == StatusCompleted }

func (r *Record) ID() uuid.UUID          { return r.id }
func (r *Record) VehicleID() uuid.UUID   { return r.vehicleID }
func (r *Record) ServiceDate() time.Time { return r.serviceDate }
func (r *Record) TotalAmount() float64   { return r.totalAmount }
func (r *Record) WarrantyUsed() bool     { return r.warrantyUsed }
func (r *Record) Status() Status         { return r.status }
func (r *Record) CreatedAt() time.Time   { return r.createdAt }
