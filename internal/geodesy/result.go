// Package geodesy computes surface distances between geographic points on
// a reference ellipsoid.
//
// Vincenty is the primary solver. Approximate trades accuracy for speed and
// Karney is an independent GeographicLib port used to cross-check results.
// All functions are pure and safe for concurrent use.
package geodesy

import (
	"errors"
	"fmt"
	"strings"
)

// Status reports how the iterative solver ended.
type Status int

const (
	// Converged means λ settled within tolerance.
	Converged Status = iota
	// IterationCapReached means the solver stopped on the iteration cap or
	// the antipodal guard. The distance is usable but may be less precise.
	IterationCapReached
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationCapReached:
		return "iteration_cap_reached"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ErrConvergenceWarning flags a result computed without convergence,
// typically for nearly antipodal points. It is never fatal.
var ErrConvergenceWarning = errors.New("geodesy: solver did not converge, precision may be reduced")

// Result is the outcome of one inverse geodesic solve.
type Result struct {
	Meters     float64
	Status     Status
	Iterations int
}

// Warning returns ErrConvergenceWarning for low-confidence results, nil otherwise.
func (r Result) Warning() error {
	if r.Status == Converged {
		return nil
	}
	return fmt.Errorf("%w (after %d iterations)", ErrConvergenceWarning, r.Iterations)
}

// Method selects a distance algorithm.
type Method int

const (
	MethodVincenty Method = iota
	MethodApproximate
	MethodKarney
)

var methodNames = [...]string{
	MethodVincenty:    "vincenty",
	MethodApproximate: "approximate",
	MethodKarney:      "karney",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ErrUnknownMethod is returned by ParseMethod.
var ErrUnknownMethod = errors.New("geodesy: unknown method")

// ParseMethod maps a configuration name onto a Method.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range methodNames {
		if n == name {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}
