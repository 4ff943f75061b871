// Package units carries distances and speeds with their unit. Every unit
// has a single SI factor; converting between two units goes through the
// SI base unit.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// System is a measurement system preference used to pick display units.
type System int

const (
	Metric System = iota
	Imperial
)

// ErrUnknownSystem is returned by ParseSystem.
var ErrUnknownSystem = errors.New("units: unknown unit system")

// ErrUnknownUnit is returned when parsing a unit symbol fails.
var ErrUnknownUnit = errors.New("units: unknown unit")

func (s System) String() string {
	switch s {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// ParseSystem accepts "metric" or "imperial" in any case.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "si":
		return Metric, nil
	case "imperial", "us":
		return Imperial, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, s)
}
