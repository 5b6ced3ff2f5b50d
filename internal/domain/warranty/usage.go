package warranty

import "time"

// ServiceUsage is one service-ledger row as seen by the usage aggregation.
type ServiceUsage struct {
	ServiceDate  time.Time
	TotalAmount  float64
	WarrantyUsed bool
}

// UsageSummary aggregates the services that consumed warranty coverage.
type UsageSummary struct {
	ServicesUsed    uint
	TotalCovered    float64
	LastServiceDate *time.Time
}

// SummarizeUsage counts and sums the warranty-covered rows. Zero matching
// rows yields a zeroed summary with a nil last-service date.
func SummarizeUsage(rows []ServiceUsage) UsageSummary {
	var summary UsageSummary
	for _, row := range rows {
		if !row.WarrantyUsed {
			continue
		}
		summary.ServicesUsed++
		summary.TotalCovered += row.TotalAmount
		if summary.LastServiceDate == nil || row.ServiceDate.After(*summary.LastServiceDate) {
			d := row.ServiceDate
			summary.LastServiceDate = &d
		}
	}
	return summary
}
