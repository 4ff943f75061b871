package coord

import (
	"math"

	"github.com/golang/geo/s1"
)

// GeographicPoint is a longitude/latitude pair in radians.
// Points built with FromDegrees or Normalize have Lat in [-π/2, π/2]
// and Lon in (-π, π].
type GeographicPoint struct {
	Lon float64
	Lat float64
}

// PlanarPoint is a projected coordinate in projection-specific linear units.
type PlanarPoint struct {
	X float64
	Y float64
}

// FromDegrees converts decimal degrees to a normalized GeographicPoint.
func FromDegrees(lonDeg, latDeg float64) GeographicPoint {
	return GeographicPoint{
		Lon: (s1.Angle(lonDeg) * s1.Degree).Radians(),
		Lat: (s1.Angle(latDeg) * s1.Degree).Radians(),
	}.Normalize()
}

// Degrees returns the point as decimal degrees (lon, lat).
func (p GeographicPoint) Degrees() (lonDeg, latDeg float64) {
	return s1.Angle(p.Lon).Degrees(), s1.Angle(p.Lat).Degrees()
}

// Normalize folds the latitude back into [-π/2, π/2] and wraps the
// longitude into (-π, π]. Going over a pole lands on the opposite
// meridian, so every fold flips the longitude by π.
// NaN and infinite components are returned unchanged.
func (p GeographicPoint) Normalize() GeographicPoint {
	if !isFinite(p.Lon) || !isFinite(p.Lat) {
		return p
	}
	lat, lon := p.Lat, p.Lon
	if lat < -math.Pi/2 || lat > math.Pi/2 {
		// Reduce to (-π, π] on the meridian circle first.
		lat = wrapPi(lat)
		switch {
		case lat > math.Pi/2:
			lat = math.Pi - lat
			lon += math.Pi
		case lat < -math.Pi/2:
			lat = -math.Pi - lat
			lon += math.Pi
		}
	}
	return GeographicPoint{Lon: wrapPi(lon), Lat: lat}
}

// IsNormalized reports whether the point is within the normalized ranges.
func (p GeographicPoint) IsNormalized() bool {
	return p.Lat >= -math.Pi/2 && p.Lat <= math.Pi/2 && p.Lon > -math.Pi && p.Lon <= math.Pi
}

// Equal reports whether p and o name the same location. The ±π
// longitudes are the same meridian.
func (p GeographicPoint) Equal(o GeographicPoint) bool {
	if p.Lat != o.Lat {
		return false
	}
	if p.Lon == o.Lon {
		return true
	}
	return math.Abs(p.Lon) == math.Pi && math.Abs(o.Lon) == math.Pi
}

// wrapPi maps v into (-π, π].
func wrapPi(v float64) float64 {
	if v > -math.Pi && v <= math.Pi {
		return v
	}
	v = math.Mod(v+math.Pi, 2*math.Pi)
	if v <= 0 {
		v += 2 * math.Pi
	}
	return v - math.Pi
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
