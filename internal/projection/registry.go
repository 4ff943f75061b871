package projection

import (
	"fmt"
	"sort"
	"strings"
)

// NoEPSG marks a definition that has no EPSG code.
const NoEPSG = 0

// Definition names a kernel family together with the constants bound to it.
type Definition struct {
	ID     string // canonical short id, e.g. "wag6"
	Name   string // display name, e.g. "Wagner VI"
	EPSG   int    // NoEPSG if none
	Family string // one of Families()
	Params Params // overrides on top of the family defaults
}

// familyDefaults are merged under Definition.Params at construction time.
var familyDefaults = map[string]Params{
	FamilyPseudoCylindrical: WagnerVIParams(),
	FamilyWebMercator:       {"a": WebMercatorRadius},
	FamilySwissLV95:         {},
	FamilyLongLat:           {},
}

// Registry collects projection definitions before a Dispatcher is built.
// It is not safe for concurrent use; the Dispatcher built from it is.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// DefaultRegistry returns a registry holding the built-in projections.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range []Definition{
		{ID: "wag6", Name: "Wagner VI", Family: FamilyPseudoCylindrical, Params: WagnerVIParams()},
		{ID: "kav7", Name: "Kavraisky VII", Family: FamilyPseudoCylindrical, Params: KavraiskyVIIParams()},
		{ID: "webmerc", Name: "WGS 84 / Pseudo-Mercator", EPSG: 3857, Family: FamilyWebMercator},
		{ID: "lv95", Name: "CH1903+ / LV95", EPSG: 2056, Family: FamilySwissLV95},
		{ID: "longlat", Name: "WGS 84 geographic", EPSG: 4326, Family: FamilyLongLat},
	} {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds d. Ids are matched case-insensitively.
func (r *Registry) Register(d Definition) error {
	id := canonicalID(d.ID)
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidParams)
	}
	if _, ok := families[d.Family]; !ok {
		return fmt.Errorf("%w: %q (projection %q)", ErrUnknownFamily, d.Family, d.ID)
	}
	if _, ok := r.defs[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateProjection, d.ID)
	}
	d.ID = id
	if d.Name == "" {
		d.Name = id
	}
	r.defs[id] = d
	return nil
}

// Lookup returns the definition registered under id.
func (r *Registry) Lookup(id string) (Definition, bool) {
	d, ok := r.defs[canonicalID(id)]
	return d, ok
}

// IDs returns the registered ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// build constructs the kernel for d with family defaults applied.
func build(d Definition) (Kernel, error) {
	ctor := families[d.Family]
	k, err := ctor(familyDefaults[d.Family].Merge(d.Params))
	if err != nil {
		return nil, fmt.Errorf("projection %q: %w", d.ID, err)
	}
	return k, nil
}

func canonicalID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
