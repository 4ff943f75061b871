package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DistanceUnit is a unit of length.
type DistanceUnit int

const (
	Meters DistanceUnit = iota
	Centimeters
	Kilometers
	Inches
	Feet
	StatuteMiles
	NauticalMiles
)

type unitInfo struct {
	symbol string
	si     float64 // SI base units per one of this unit
}

var distanceUnits = [...]unitInfo{
	Meters:        {"m", 1},
	Centimeters:   {"cm", 0.01},
	Kilometers:    {"km", 1000},
	Inches:        {"in", 0.0254},
	Feet:          {"ft", 0.3048},
	StatuteMiles:  {"mi", 1609.344},
	NauticalMiles: {"nmi", 1852},
}

// bestDistance lists the candidate units per system, largest first.
var bestDistance = map[System][]DistanceUnit{
	Metric:   {Kilometers, Meters, Centimeters},
	Imperial: {StatuteMiles, Feet, Inches, Centimeters},
}

func (u DistanceUnit) valid() bool { return u >= 0 && int(u) < len(distanceUnits) }

// MetersPer returns the number of meters in one u.
func (u DistanceUnit) MetersPer() float64 {
	if !u.valid() {
		return math.NaN()
	}
	return distanceUnits[u].si
}

func (u DistanceUnit) String() string {
	if !u.valid() {
		return fmt.Sprintf("DistanceUnit(%d)", int(u))
	}
	return distanceUnits[u].symbol
}

// ParseDistanceUnit maps a symbol such as "km" or "ft" onto its unit.
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	sym := strings.ToLower(strings.TrimSpace(s))
	for u, info := range distanceUnits {
		if info.symbol == sym {
			return DistanceUnit(u), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Distance is a length expressed in a unit.
type Distance struct {
	Value float64
	Unit  DistanceUnit
}

// FromMeters returns m meters.
func FromMeters(m float64) Distance {
	return Distance{Value: m, Unit: Meters}
}

// Meters returns d in meters.
func (d Distance) Meters() float64 {
	return d.Value * d.Unit.MetersPer()
}

// To converts d to unit u.
func (d Distance) To(u DistanceUnit) Distance {
	if d.Unit == u {
		return d
	}
	return Distance{Value: d.Meters() / u.MetersPer(), Unit: u}
}

// Best converts d to the largest unit of sys whose value is at least 1 in
// magnitude, falling back to the smallest unit of the system.
func (d Distance) Best(sys System) Distance {
	candidates, ok := bestDistance[sys]
	if !ok {
		candidates = bestDistance[Metric]
	}
	var out Distance
	for _, u := range candidates {
		out = d.To(u)
		if math.Abs(out.Value) >= 1 {
			break
		}
	}
	return out
}

// IsZero reports whether d has zero length.
func (d Distance) IsZero() bool { return d.Value == 0 }

// Per returns the speed of covering d in elapsed. A zero duration gives
// an infinite (or NaN for a zero distance) speed.
func (d Distance) Per(elapsed time.Duration) Speed {
	return Speed{Value: d.Meters() / elapsed.Seconds(), Unit: MetersPerSecond}
}

func (d Distance) String() string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + " " + d.Unit.String()
}
