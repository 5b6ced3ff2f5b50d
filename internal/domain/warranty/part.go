package warranty

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEndBeforeStart = errors.New("warranty end date must be after start date")
	ErrZeroKMLimit    = errors.New("warranty km limit must be positive")
)

// PartStatus is the coarse persisted flag on an assigned part. It is an
// administrative state, distinct from the computed live status.
type PartStatus string

const (
	PartStatusActive    PartStatus = "active"
	PartStatusExpired   PartStatus = "expired"
	PartStatusSuspended PartStatus = "suspended"
	PartStatusCancelled PartStatus = "cancelled"
)

func (s PartStatus) IsValid() bool {
	switch s {
	case PartStatusActive, PartStatusExpired, PartStatusSuspended, PartStatusCancelled:
		return true
	default:
		return false
	}
}

// Part is one component's warranty instance for one physical vehicle,
// created exactly once per (vehicle, component) pair.
type Part struct {
	id            uuid.UUID
	vehicleID     uuid.UUID
	componentID   uuid.UUID
	componentName string
	years         uint
	startDate     time.Time
	endDate       time.Time
	kmLimit       uint
	status        PartStatus
	createdAt     time.Time
}

// NewPart derives the end date from the start date with calendar-year
// arithmetic (time.AddDate). A Feb 29 start plus N years normalizes to
// Mar 1 on non-leap target years; that rollover is the documented
// convention here.
func NewPart(vehicleID uuid.UUID, component Component, terms ComponentTerms, startDate time.Time) (*Part, error) {
	if terms.KM == 0 {
		return nil, ErrZeroKMLimit
	}
	endDate := startDate.AddDate(int(terms.Years), 0, 0)
	if !endDate.After(startDate) {
		return nil, ErrEndBeforeStart
	}
	return &Part{
		id:            uuid.New(),
		vehicleID:     vehicleID,
		componentID:   component.ID,
		componentName: component.Name,
		years:         terms.Years,
		startDate:     startDate,
		endDate:       endDate,
		kmLimit:       terms.KM,
		// Default administrative flag, not a computed state. A start date
		// in the past still yields an active part.
		status: PartStatusActive,
	}, nil
}

func ReconstructPart(
	id, vehicleID, componentID uuid.UUID,
	componentName string,
	years uint,
	startDate, endDate time.Time,
	kmLimit uint,
	status PartStatus,
	createdAt time.Time,
) *Part {
	return &Part{
		id:            id,
		vehicleID:     vehicleID,
		componentID:   componentID,
		componentName: componentName,
		years:         years,
		startDate:     startDate,
		endDate:       endDate,
		kmLimit:       kmLimit,
		status:        status,
		createdAt:     createdAt,
	}
}

func (p *Part) ID() uuid.UUID          { return p.id }
func (p *Part) VehicleID() uuid.UUID   { return p.vehicleID }
func (p *Part) ComponentID() uuid.UUID { return p.componentID }
func (p *Part) ComponentName() string  { return p.componentName }
func (p *Part) Years() uint            { return p.years }
func (p *Part) StartDate() time.Time   { return p.startDate }
func (p *Part) EndDate() time.Time     { return p.endDate }
func (p *Part) KMLimit() uint          { return p.kmLimit }
func (p *Part) Status() PartStatus     { return p.status }
func (p *Part) CreatedAt() time.Time   { return p.createdAt }
