// Package ellipsoid describes reference ellipsoids used by the geodesic
// solvers. An Ellipsoid is derived once at construction and is read-only
// afterwards, so a single value can be shared by any number of goroutines.
package ellipsoid

import (
	"errors"
	"fmt"
	"math"
)

// UnknownEPSG is the EPSG code of an ellipsoid that has none.
const UnknownEPSG = 32767

// ErrInvalidDefinition is returned when the radii and flattening given
// to New cannot describe an ellipsoid.
var ErrInvalidDefinition = errors.New("ellipsoid: invalid definition")

// Ellipsoid is an oblate reference ellipsoid. Radii are in meters.
type Ellipsoid struct {
	name string
	epsg int

	a, b        float64
	f, invf     float64
	e, e2       float64
	secondEccSq float64 // (a²-b²)/b²
}

// New derives an ellipsoid from its equatorial radius a and either the
// inverse flattening invf or the polar radius b; pass 0 for the one that
// is not known. When b is 0 it is computed as a - a/invf.
func New(a, invf, b float64, name string) (*Ellipsoid, error) {
	return NewWithEPSG(UnknownEPSG, a, invf, b, name)
}

// NewWithEPSG is New with an EPSG ellipsoid code attached.
func NewWithEPSG(epsg int, a, invf, b float64, name string) (*Ellipsoid, error) {
	if (a == 0 && invf == 0) || (a == 0 && b == 0) {
		return nil, fmt.Errorf("%w %q: specify the equatorial radius with either the polar radius or the inverse flattening",
			ErrInvalidDefinition, name)
	}
	for _, v := range []float64{a, invf, b} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w %q: a=%v invf=%v b=%v", ErrInvalidDefinition, name, a, invf, b)
		}
	}
	if b == 0 {
		if invf == 0 {
			return nil, fmt.Errorf("%w %q: polar radius and inverse flattening are both zero",
				ErrInvalidDefinition, name)
		}
		b = a - (1/invf)*a
	}
	if b <= 0 {
		return nil, fmt.Errorf("%w %q: polar radius %v is not positive (a=%v invf=%v)",
			ErrInvalidDefinition, name, b, a, invf)
	}
	if b > a {
		return nil, fmt.Errorf("%w %q: polar radius %v exceeds equatorial radius %v",
			ErrInvalidDefinition, name, b, a)
	}

	el := &Ellipsoid{name: name, epsg: epsg, a: a, b: b}
	el.f = (a - b) / a
	el.invf = 1 / el.f
	el.e = math.Sqrt((a*a - b*b) / (a * a))
	el.e2 = el.e * el.e
	el.secondEccSq = (a*a - b*b) / (b * b)
	return el, nil
}

// MustNew is New that panics on error. Intended for package-level tables.
func MustNew(epsg int, a, invf, b float64, name string) *Ellipsoid {
	el, err := NewWithEPSG(epsg, a, invf, b, name)
	if err != nil {
		panic(err)
	}
	return el
}

// Name is the display name the ellipsoid was created with.
func (el *Ellipsoid) Name() string { return el.name }

// EPSG is the ellipsoid's EPSG code, or UnknownEPSG.
func (el *Ellipsoid) EPSG() int { return el.epsg }

// EquatorialRadius is the semi-major axis in meters.
func (el *Ellipsoid) EquatorialRadius() float64 { return el.a }

// PolarRadius is the semi-minor axis in meters.
func (el *Ellipsoid) PolarRadius() float64 { return el.b }

// Flattening is (a-b)/a. Zero for a sphere.
func (el *Ellipsoid) Flattening() float64 { return el.f }

// InverseFlattening is 1/f. +Inf for a sphere.
func (el *Ellipsoid) InverseFlattening() float64 { return el.invf }

// Eccentricity is sqrt((a²-b²)/a²).
func (el *Ellipsoid) Eccentricity() float64 { return el.e }

// EccentricitySquared is (a²-b²)/a².
func (el *Ellipsoid) EccentricitySquared() float64 { return el.e2 }

// SecondEccentricitySquared is (a²-b²)/b², the factor of cos²α in the
// Vincenty u² term.
func (el *Ellipsoid) SecondEccentricitySquared() float64 { return el.secondEccSq }

func (el *Ellipsoid) String() string {
	return fmt.Sprintf("%s (a=%.3f m, 1/f=%.9f)", el.name, el.a, el.invf)
}
