package warranty

import "github.com/google/uuid"

type Category string

const (
	CategoryPowertrain Category = "powertrain"
	CategoryExterior   Category = "exterior"
	CategoryElectrical Category = "electrical"
)

// Canonical component names. Model configs are data-driven and keyed by
// these names; anything else is skipped during assignment.
const (
	ComponentEngine        = "Engine"
	ComponentCarPaint      = "Car Paint"
	ComponentTransmission  = "Transmission"
	ComponentElectrical    = "Electrical System"
	ComponentBatteryHybrid = "Battery Hybrid"
)

// Component is immutable reference data seeded once at schema-apply time.
type Component struct {
	ID       uuid.UUID
	Name     string
	Category Category
}

// BaseComponentNames returns the four components every model config must
// cover, in display order. Battery Hybrid is gated separately.
func BaseComponentNames() []string {
	return []string{
		ComponentEngine,
		ComponentCarPaint,
		ComponentTransmission,
		ComponentElectrical,
	}
}

// AllComponentNames returns every seedable component name in display order.
func AllComponentNames() []string {
	return append(BaseComponentNames(), ComponentBatteryHybrid)
}

// Catalog is an in-memory index over the seeded components.
type Catalog struct {
	byName  map[string]Component
	ordered []Component
}

func NewCatalog(components []Component) *Catalog {
	byName := make(map[string]Component, len(components))
	ordered := make([]Component, len(components))
	copy(ordered, components)
	for _, c := range components {
		byName[c.Name] = c
	}
	return &Catalog{byName: byName, ordered: ordered}
}

func (c *Catalog) List() []Component {
	out := make([]Component, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c *Catalog) FindByName(name string) (Component, bool) {
	comp, ok := c.byName[name]
	return comp, ok
}
