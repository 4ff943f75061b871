package units

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceTo(t *testing.T) {
	data := []struct {
		in   Distance
		to   DistanceUnit
		want float64
	}{
		{Distance{1, Kilometers}, Meters, 1000},
		{Distance{1, StatuteMiles}, Feet, 5280},
		{Distance{1, Feet}, Inches, 12},
		{Distance{1, NauticalMiles}, Meters, 1852},
		{Distance{1, NauticalMiles}, StatuteMiles, 1.15077945},
		{Distance{254, Centimeters}, Inches, 100},
		{Distance{3, Meters}, Meters, 3},
	}

	for _, d := range data {
		got := d.in.To(d.to)
		assert.Equal(t, d.to, got.Unit)
		assert.InDelta(t, d.want, got.Value, 1e-6, "%v -> %v", d.in, d.to)
	}
}

func TestDistanceRoundTripThroughSI(t *testing.T) {
	d := FromMeters(31_812.25)
	for u := range distanceUnits {
		back := d.To(DistanceUnit(u)).To(Meters)
		assert.InDelta(t, d.Value, back.Value, 1e-9)
	}
}

func TestDistanceBest(t *testing.T) {
	data := []struct {
		meters float64
		sys    System
		want   DistanceUnit
	}{
		{31_812, Metric, Kilometers},
		{1000, Metric, Kilometers},
		{999, Metric, Meters},
		{0.5, Metric, Centimeters},
		{-2500, Metric, Kilometers},
		{31_812, Imperial, StatuteMiles},
		{100, Imperial, Feet},
		{0.1, Imperial, Inches},
		{0.01, Imperial, Centimeters},
		{0, Metric, Centimeters},
	}

	for _, d := range data {
		got := FromMeters(d.meters).Best(d.sys)
		assert.Equal(t, d.want, got.Unit, "%v m in %v", d.meters, d.sys)
		assert.InDelta(t, d.meters, got.Meters(), 1e-9)
	}
}

func TestDistanceString(t *testing.T) {
	assert.Equal(t, "31.8 km", Distance{31.8, Kilometers}.String())
	assert.Equal(t, "12 ft", Distance{12, Feet}.String())
	assert.True(t, Distance{}.IsZero())
}

func TestParseDistanceUnit(t *testing.T) {
	u, err := ParseDistanceUnit(" KM ")
	require.NoError(t, err)
	assert.Equal(t, Kilometers, u)

	_, err = ParseDistanceUnit("furlong")
	assert.True(t, errors.Is(err, ErrUnknownUnit))
}

func TestDistancePer(t *testing.T) {
	s := Distance{36, Kilometers}.Per(time.Hour)
	assert.Equal(t, MetersPerSecond, s.Unit)
	assert.InDelta(t, 10, s.Value, 1e-12)
	assert.InDelta(t, 36, s.To(KilometersPerHour).Value, 1e-9)

	assert.True(t, math.IsInf(FromMeters(1).Per(0).Value, 1))
}

func TestSpeedTo(t *testing.T) {
	data := []struct {
		in   Speed
		to   SpeedUnit
		want float64
	}{
		{Speed{1, Knots}, KilometersPerHour, 1.852},
		{Speed{1, Knots}, StatuteMilesPerHour, 1.150779},
		{Speed{60, StatuteMilesPerHour}, FeetPerSecond, 88},
		{Speed{1, KilometersPerSecond}, KilometersPerHour, 3600},
		{Speed{10, MetersPerSecond}, KilometersPerHour, 36},
	}

	for _, d := range data {
		assert.InDelta(t, d.want, d.in.To(d.to).Value, 1e-5, "%v -> %v", d.in, d.to)
	}
}

func TestSpeedBest(t *testing.T) {
	assert.Equal(t, KilometersPerHour, Speed{10, MetersPerSecond}.Best(Metric).Unit)
	assert.Equal(t, MetersPerSecond, Speed{0.2, MetersPerSecond}.Best(Metric).Unit)
	assert.Equal(t, StatuteMilesPerHour, Speed{10, MetersPerSecond}.Best(Imperial).Unit)
	assert.Equal(t, FeetPerSecond, Speed{0.1, MetersPerSecond}.Best(Imperial).Unit)
	assert.Equal(t, "36 km/h", Speed{36, KilometersPerHour}.String())
}

func TestParseSystem(t *testing.T) {
	s, err := ParseSystem("Imperial")
	require.NoError(t, err)
	assert.Equal(t, Imperial, s)
	assert.Equal(t, "imperial", s.String())

	s, err = ParseSystem("metric")
	require.NoError(t, err)
	assert.Equal(t, Metric, s)

	_, err = ParseSystem("local")
	assert.ErrorIs(t, err, ErrUnknownSystem)
}
