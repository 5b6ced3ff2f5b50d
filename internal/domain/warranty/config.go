package warranty

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTerms   = errors.New("applicable component requires positive duration and distance limit")
	ErrUnknownBattery = errors.New("battery terms set on a model without hybrid battery")
)

// ComponentTerms is one component's warranty template on a vehicle model.
// Years == 0 disables the component.
type ComponentTerms struct {
	Years      uint
	KM         uint
	Applicable bool
}

// ModelConfig is the per-vehicle-model warranty template. PerComponent is
// keyed by canonical component name.
type ModelConfig struct {
	PerComponent     map[string]ComponentTerms
	HasHybridBattery bool
}

// Normalized returns a copy with every base component present; components
// omitted at the API boundary default to disabled terms.
func (c ModelConfig) Normalized() ModelConfig {
	out := ModelConfig{
		PerComponent:     make(map[string]ComponentTerms, len(AllComponentNames())),
		HasHybridBattery: c.HasHybridBattery,
	}
	for _, name := range BaseComponentNames() {
		out.PerComponent[name] = c.PerComponent[name]
	}
	if terms, ok := c.PerComponent[ComponentBatteryHybrid]; ok {
		out.PerComponent[ComponentBatteryHybrid] = terms
	}
	return out
}

// Validate enforces the configuration invariant: a component marked
// applicable must carry a positive duration and distance limit.
func (c ModelConfig) Validate() error {
	for name, terms := range c.PerComponent {
		if terms.Applicable && (terms.Years == 0 || terms.KM == 0) {
			return fmt.Errorf("%w: %s", ErrInvalidTerms, name)
		}
	}
	return nil
}

// TermsFor reports the configured terms for a component name.
func (c ModelConfig) TermsFor(name string) (ComponentTerms, bool) {
	terms, ok := c.PerComponent[name]
	return terms, ok
}

// coverableNames lists the component names assignment should consider for
// this config, in display order.
func (c ModelConfig) coverableNames() []string {
	names := BaseComponentNames()
	if c.HasHybridBattery {
		if terms, ok := c.PerComponent[ComponentBatteryHybrid]; ok && terms.Years > 0 {
			names = append(names, ComponentBatteryHybrid)
		}
	}
	return names
}
