package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SpeedUnit is a unit of speed.
type SpeedUnit int

const (
	MetersPerSecond SpeedUnit = iota
	KilometersPerHour
	KilometersPerSecond
	FeetPerSecond
	StatuteMilesPerHour
	Knots
)

var speedUnits = [...]unitInfo{
	MetersPerSecond:     {"m/s", 1},
	KilometersPerHour:   {"km/h", 1000.0 / 3600},
	KilometersPerSecond: {"km/s", 1000},
	FeetPerSecond:       {"ft/s", 0.3048},
	StatuteMilesPerHour: {"mph", 1609.344 / 3600},
	Knots:               {"kn", 1852.0 / 3600},
}

var bestSpeed = map[System][]SpeedUnit{
	Metric:   {KilometersPerHour, MetersPerSecond},
	Imperial: {StatuteMilesPerHour, FeetPerSecond},
}

func (u SpeedUnit) valid() bool { return u >= 0 && int(u) < len(speedUnits) }

// MetersPerSecondPer returns the number of m/s in one u.
func (u SpeedUnit) MetersPerSecondPer() float64 {
	if !u.valid() {
		return math.NaN()
	}
	return speedUnits[u].si
}

func (u SpeedUnit) String() string {
	if !u.valid() {
		return fmt.Sprintf("SpeedUnit(%d)", int(u))
	}
	return speedUnits[u].symbol
}

// ParseSpeedUnit maps a symbol such as "km/h" or "kn" onto its unit.
func ParseSpeedUnit(s string) (SpeedUnit, error) {
	sym := strings.ToLower(strings.TrimSpace(s))
	for u, info := range speedUnits {
		if info.symbol == sym {
			return SpeedUnit(u), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Speed is a velocity magnitude expressed in a unit.
type Speed struct {
	Value float64
	Unit  SpeedUnit
}

// MetersPerSecond returns s in m/s.
func (s Speed) MetersPerSecond() float64 {
	return s.Value * s.Unit.MetersPerSecondPer()
}

// To converts s to unit u.
func (s Speed) To(u SpeedUnit) Speed {
	if s.Unit == u {
		return s
	}
	return Speed{Value: s.MetersPerSecond() / u.MetersPerSecondPer(), Unit: u}
}

// Best converts s to the largest unit of sys whose value is at least 1 in
// magnitude, falling back to the smallest unit of the system.
func (s Speed) Best(sys System) Speed {
	candidates, ok := bestSpeed[sys]
	if !ok {
		candidates = bestSpeed[Metric]
	}
	var out Speed
	for _, u := range candidates {
		out = s.To(u)
		if math.Abs(out.Value) >= 1 {
			break
		}
	}
	return out
}

func (s Speed) String() string {
	return strconv.FormatFloat(s.Value, 'f', -1, 64) + " " + s.Unit.String()
}
