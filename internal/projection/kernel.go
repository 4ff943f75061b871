// Package projection holds the map projection kernels and the dispatcher
// that resolves a projection id to a kernel.
//
// Every kernel works on a coord.Batch in place: Forward reads {Lambda, Phi}
// in radians and writes {X, Y}, Inverse does the reverse. A point whose
// input falls outside the kernel's valid domain is written as NaN on both
// axes; the remaining points of the batch are still transformed.
package projection

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/pspoerri/geoproj/internal/coord"
)

var (
	ErrUnknownProjection   = errors.New("projection: unknown projection")
	ErrDuplicateProjection = errors.New("projection: projection already registered")
	ErrUnknownFamily       = errors.New("projection: unknown kernel family")
	ErrInvalidParams       = errors.New("projection: invalid parameters")
)

// Kernel is a stateless forward/inverse transform over a window of a batch.
// Implementations must not allocate and must not retain the batch.
type Kernel interface {
	// Forward converts points [start, start+n) from geographic radians to planar units.
	Forward(b coord.Batch, start, n int)

	// Inverse converts points [start, start+n) from planar units to geographic radians.
	Inverse(b coord.Batch, start, n int)
}

// Params are the named constants bound to a kernel when it is built.
type Params map[string]float64

// Merge returns a copy of p with the values of over applied on top.
func (p Params) Merge(over Params) Params {
	out := make(Params, len(p)+len(over))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// require fetches name, failing when it is missing or not finite.
func (p Params) require(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrInvalidParams, name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is %v", ErrInvalidParams, name, v)
	}
	return v, nil
}

// Constructor builds a kernel from its bound parameters.
type Constructor func(p Params) (Kernel, error)

// Kernel families, keyed by the name used in configuration files.
const (
	FamilyPseudoCylindrical = "pseudocylindrical"
	FamilyWebMercator       = "webmercator"
	FamilySwissLV95         = "swisslv95"
	FamilyLongLat           = "longlat"
)

var families = map[string]Constructor{
	FamilyPseudoCylindrical: newPseudoCylindrical,
	FamilyWebMercator:       newWebMercator,
	FamilySwissLV95:         newSwissLV95,
	FamilyLongLat:           newLongLat,
}

// Families returns the names of the known kernel families, sorted.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// setNaN marks point i as outside the kernel domain.
func setNaN(b coord.Batch, i int) {
	b[i*coord.Stride] = math.NaN()
	b[i*coord.Stride+1] = math.NaN()
}
