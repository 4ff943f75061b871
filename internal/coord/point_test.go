package coord

import (
	"math"
	"testing"
)

func TestFromDegrees_Normalizes(t *testing.T) {
	tests := []struct {
		name             string
		lonDeg, latDeg   float64
		wantLon, wantLat float64 // degrees
	}{
		{"inside", 9.226081, 47.552063, 9.226081, 47.552063},
		{"east overflow", 190, 10, -170, 10},
		{"west overflow", -190, 10, 170, 10},
		{"two turns", 370, 0, 10, 0},
		{"over north pole", 10, 100, -170, 80},
		{"over south pole", 10, -100, -170, -80},
		{"past equator", 0, 200, 180, -20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromDegrees(tt.lonDeg, tt.latDeg)
			if !p.IsNormalized() {
				t.Fatalf("FromDegrees(%v, %v) = %+v, not normalized", tt.lonDeg, tt.latDeg, p)
			}
			lon, lat := p.Degrees()
			if d := math.Abs(lon - tt.wantLon); d > 1e-9 {
				t.Errorf("lon = %.9f, want %.9f (delta=%.2e)", lon, tt.wantLon, d)
			}
			if d := math.Abs(lat - tt.wantLat); d > 1e-9 {
				t.Errorf("lat = %.9f, want %.9f (delta=%.2e)", lat, tt.wantLat, d)
			}
		})
	}
}

func TestNormalize_NonFinite(t *testing.T) {
	p := GeographicPoint{Lon: math.NaN(), Lat: 4}
	got := p.Normalize()
	if !math.IsNaN(got.Lon) || got.Lat != 4 {
		t.Errorf("Normalize(%+v) = %+v, want unchanged", p, got)
	}
	p = GeographicPoint{Lon: 1, Lat: math.Inf(1)}
	if got := p.Normalize(); got.Lon != 1 || !math.IsInf(got.Lat, 1) {
		t.Errorf("Normalize(%+v) = %+v, want unchanged", p, got)
	}
}

func TestGeographicPoint_Equal(t *testing.T) {
	a := GeographicPoint{Lon: 0.1, Lat: 0.2}
	if !a.Equal(a) {
		t.Error("point not equal to itself")
	}
	if a.Equal(GeographicPoint{Lon: 0.1, Lat: 0.3}) {
		t.Error("different latitudes reported equal")
	}
	east := GeographicPoint{Lon: math.Pi, Lat: 0.5}
	west := GeographicPoint{Lon: -math.Pi, Lat: 0.5}
	if !east.Equal(west) {
		t.Error("±π meridians should be equal")
	}
}

func TestDegreesRoundTrip(t *testing.T) {
	for _, pt := range [][2]float64{{8.5417, 47.3769}, {-74.006, 40.7128}, {151.2093, -33.8688}} {
		lon, lat := FromDegrees(pt[0], pt[1]).Degrees()
		if math.Abs(lon-pt[0]) > 1e-12 || math.Abs(lat-pt[1]) > 1e-12 {
			t.Errorf("round trip (%v, %v) = (%v, %v)", pt[0], pt[1], lon, lat)
		}
	}
}
