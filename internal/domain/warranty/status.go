package warranty

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// LiveStatus is the computed expiry/usage state of an assigned part. It is
// evaluated on every read and never persisted.
type LiveStatus string

const (
	LiveStatusActive        LiveStatus = "active"
	LiveStatusExpiringSoon  LiveStatus = "expiring_soon"
	LiveStatusExpired       LiveStatus = "expired"
	LiveStatusNotApplicable LiveStatus = "not_applicable"
)

// Thresholds configure when an active warranty is reported as expiring soon.
// Either trigger alone is sufficient.
type Thresholds struct {
	ExpiringSoonDays int
	ExpiringSoonKM   uint
}

func DefaultThresholds() Thresholds {
	return Thresholds{ExpiringSoonDays: 30, ExpiringSoonKM: 10000}
}

const daysPerYear = 365.25

// StatusView is the per-component computed status.
type StatusView struct {
	ComponentID     uuid.UUID
	ComponentName   string
	Category        Category
	Status          LiveStatus
	StartDate       *time.Time
	EndDate         *time.Time
	KMLimit         uint
	RemainingDays   int
	RemainingYears  float64
	RemainingKM     uint
	ProgressPercent float64
}

// ComputeStatus classifies one assigned part against the current time and
// odometer reading. Expiry is the union of the time and distance
// conditions: exceeding the mileage limit expires the warranty even with
// time remaining. Both comparisons are strict, so now == endDate and
// currentKM == kmLimit are still covered.
//
// Pure function: identical inputs yield identical output.
func ComputeStatus(p *Part, now time.Time, currentKM uint, th Thresholds) StatusView {
	start := p.StartDate()
	end := p.EndDate()

	remainingDays := wholeDays(end.Sub(now))
	if remainingDays < 0 {
		remainingDays = 0
	}
	remainingYears := round1(float64(remainingDays) / daysPerYear)

	var remainingKM uint
	if p.KMLimit() > currentKM {
		remainingKM = p.KMLimit() - currentKM
	}

	expired := now.After(end) || currentKM > p.KMLimit()

	status := LiveStatusActive
	switch {
	case expired:
		status = LiveStatusExpired
	case remainingDays < th.ExpiringSoonDays || remainingKM < th.ExpiringSoonKM:
		status = LiveStatusExpiringSoon
	}

	// Progress is whichever dimension is more consumed, since either can
	// cause expiry.
	timeProgress := 0.0
	if p.Years() > 0 {
		daysSinceStart := wholeDays(now.Sub(start))
		if daysSinceStart < 0 {
			daysSinceStart = 0
		}
		timeProgress = capPercent(float64(daysSinceStart) / (float64(p.Years()) * daysPerYear) * 100)
	}
	kmProgress := 0.0
	if p.KMLimit() > 0 {
		kmProgress = capPercent(float64(currentKM) / float64(p.KMLimit()) * 100)
	}

	return StatusView{
		ComponentID:     p.ComponentID(),
		ComponentName:   p.ComponentName(),
		Status:          status,
		StartDate:       &start,
		EndDate:         &end,
		KMLimit:         p.KMLimit(),
		RemainingDays:   remainingDays,
		RemainingYears:  remainingYears,
		RemainingKM:     remainingKM,
		ProgressPercent: math.Max(timeProgress, kmProgress),
	}
}

// NotApplicableView reports a component that was never covered for the
// vehicle (e.g. Battery Hybrid on a non-hybrid model). This is distinct
// from expired even though both block service coverage.
func NotApplicableView(component Component) StatusView {
	return StatusView{
		ComponentID:   component.ID,
		ComponentName: component.Name,
		Category:      component.Category,
		Status:        LiveStatusNotApplicable,
	}
}

// BuildStatusReport projects the full catalog for one vehicle: components
// with an assigned part get a computed status, the rest are reported as
// not applicable.
func BuildStatusReport(catalog *Catalog, parts []*Part, now time.Time, currentKM uint, th Thresholds) []StatusView {
	byComponent := make(map[uuid.UUID]*Part, len(parts))
	for _, p := range parts {
		byComponent[p.ComponentID()] = p
	}

	components := catalog.List()
	views := make([]StatusView, 0, len(components))
	for _, component := range components {
		if p, ok := byComponent[component.ID]; ok {
			view := ComputeStatus(p, now, currentKM, th)
			view.Category = component.Category
			views = append(views, view)
			continue
		}
		views = append(views, NotApplicableView(component))
	}
	return views
}

func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func capPercent(v float64) float64 {
	return math.Min(100, v)
}
