package coord

import (
	"errors"
	"math"
)

// DomainTolerance is how far outside the mathematical domain an argument
// may drift from rounding and still be clamped instead of rejected.
const DomainTolerance = 1e-12

// ErrDomain reports points whose coordinates fall outside the valid
// domain of a transform. Kernels mark such points NaN; callers that want
// an error wrap this one.
var ErrDomain = errors.New("coord: argument outside valid domain")

// Asqrt is a square root that clamps small negative radicands to zero.
// Radicands below -DomainTolerance yield NaN.
func Asqrt(v float64) float64 {
	if v >= 0 {
		return math.Sqrt(v)
	}
	if v >= -DomainTolerance {
		return 0
	}
	return math.NaN()
}

// Aasin is an arcsine that clamps arguments slightly beyond ±1 to ±π/2.
// Arguments further out yield NaN.
func Aasin(v float64) float64 {
	av := math.Abs(v)
	if av <= 1 {
		return math.Asin(v)
	}
	if av <= 1+DomainTolerance {
		return math.Copysign(math.Pi/2, v)
	}
	return math.NaN()
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
