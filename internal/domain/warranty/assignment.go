package warranty

import (
	"time"

	"github.com/google/uuid"
)

// AssignParts computes the concrete warranty parts for a vehicle from its
// model config and a reference start date (purchase or first-service date).
//
// The four base components are always considered; Battery Hybrid only when
// the model carries a hybrid battery and its configured years are positive.
// Components that are disabled, not applicable, or missing from the catalog
// are skipped rather than failing the whole assignment, since configs are
// data-driven and may reference components not yet seeded.
//
// An empty result is a valid outcome, not an error.
func AssignParts(catalog *Catalog, vehicleID uuid.UUID, cfg ModelConfig, startDate time.Time) ([]*Part, error) {
	var parts []*Part
	for _, name := range cfg.coverableNames() {
		terms, ok := cfg.TermsFor(name)
		if !ok || !terms.Applicable || terms.Years == 0 {
			continue
		}
		component, ok := catalog.FindByName(name)
		if !ok {
			continue
		}
		part, err := NewPart(vehicleID, component, terms, startDate)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}
