package projection

import (
	"math"
	"testing"
)

// Reference points from swisstopo:
// https://www.swisstopo.admin.ch/en/knowledge-facts/surveying-geodesy/reference-frames/local/lv95.html
//
// Bern (Federal Palace):  E 2_600_000  N 1_200_000  →  lon 7.438632  lat 46.951083
// Zurich (ETH):           E 2_683_474  N 1_247_862  →  lon 8.547970  lat 47.376870
// Geneva (Jet d'eau):     E 2_500_560  N 1_118_017  →  lon 6.143200  lat 46.207450
var swissRefPoints = []struct {
	name              string
	easting, northing float64
	lon, lat          float64
	tolDeg            float64
}{
	{
		name:    "Bern (reference origin)",
		easting: 2_600_000, northing: 1_200_000,
		lon: 7.438632, lat: 46.951083,
		tolDeg: 0.001,
	},
	{
		name:    "Zurich",
		easting: 2_683_474, northing: 1_247_862,
		lon: 8.5417, lat: 47.3769,
		tolDeg: 0.005,
	},
	{
		name:    "Geneva",
		easting: 2_500_560, northing: 1_118_017,
		lon: 6.1432, lat: 46.2075,
		tolDeg: 0.01, // polynomial approximation has larger error at edges
	},
}

func TestSwissLV95_Inverse_ReferencePoints(t *testing.T) {
	k := mustKernel(t, "lv95")

	for _, ref := range swissRefPoints {
		t.Run(ref.name, func(t *testing.T) {
			lam, phi := inverseOne(k, ref.easting, ref.northing)
			gotLon, gotLat := lam*degPerRad, phi*degPerRad
			if dLon := math.Abs(gotLon - ref.lon); dLon > ref.tolDeg {
				t.Errorf("Inverse lon: got %.6f, want ~%.6f (delta=%.6f > tol=%.6f)",
					gotLon, ref.lon, dLon, ref.tolDeg)
			}
			if dLat := math.Abs(gotLat - ref.lat); dLat > ref.tolDeg {
				t.Errorf("Inverse lat: got %.6f, want ~%.6f (delta=%.6f > tol=%.6f)",
					gotLat, ref.lat, dLat, ref.tolDeg)
			}
		})
	}
}

func TestSwissLV95_Forward_ReferencePoints(t *testing.T) {
	k := mustKernel(t, "lv95")

	for _, ref := range swissRefPoints {
		t.Run(ref.name, func(t *testing.T) {
			gotE, gotN := forwardOne(k, ref.lon*radPerDeg, ref.lat*radPerDeg)
			// ~meter accuracy near the centre, several hundred meters at the edges.
			tolM := 600.0
			if dE := math.Abs(gotE - ref.easting); dE > tolM {
				t.Errorf("Forward easting: got %.1f, want ~%.1f (delta=%.1f > tol=%.1f)",
					gotE, ref.easting, dE, tolM)
			}
			if dN := math.Abs(gotN - ref.northing); dN > tolM {
				t.Errorf("Forward northing: got %.1f, want ~%.1f (delta=%.1f > tol=%.1f)",
					gotN, ref.northing, dN, tolM)
			}
		})
	}
}

func TestSwissLV95_RoundTrip(t *testing.T) {
	k := mustKernel(t, "lv95")

	for _, ref := range swissRefPoints {
		t.Run(ref.name+"_LV95->WGS84->LV95", func(t *testing.T) {
			lam, phi := inverseOne(k, ref.easting, ref.northing)
			gotE, gotN := forwardOne(k, lam, phi)

			tolM := 2.0
			if dE := math.Abs(gotE - ref.easting); dE > tolM {
				t.Errorf("roundtrip easting: got %.2f, want ~%.2f (delta=%.2f)", gotE, ref.easting, dE)
			}
			if dN := math.Abs(gotN - ref.northing); dN > tolM {
				t.Errorf("roundtrip northing: got %.2f, want ~%.2f (delta=%.2f)", gotN, ref.northing, dN)
			}
		})
	}
}

func TestSwissLV95_EdgeOfSwitzerland(t *testing.T) {
	k := mustKernel(t, "lv95")

	edges := [][2]float64{
		{5.96, 45.82},  // SW corner (near Geneva)
		{10.49, 47.81}, // NE corner (near Bodensee)
		{6.13, 47.50},  // NW (Jura)
		{10.47, 46.17}, // SE (Engadin)
	}

	for _, pt := range edges {
		lon, lat := pt[0], pt[1]
		e, n := forwardOne(k, lon*radPerDeg, lat*radPerDeg)
		lam, phi := inverseOne(k, e, n)
		gotLon, gotLat := lam*degPerRad, phi*degPerRad

		tol := 1e-3 // ~100m
		if math.Abs(gotLon-lon) > tol || math.Abs(gotLat-lat) > tol {
			t.Errorf("edge roundtrip (%.2f, %.2f): got (%.6f, %.6f), delta=(%.6f, %.6f)",
				lon, lat, gotLon, gotLat, gotLon-lon, gotLat-lat)
		}
	}
}

func TestSwissLV95_NaNInput(t *testing.T) {
	k := mustKernel(t, "lv95")
	x, y := forwardOne(k, math.NaN(), 0.8)
	if !math.IsNaN(x) || !math.IsNaN(y) {
		t.Errorf("Forward(NaN, 0.8) = (%v, %v), want NaN", x, y)
	}
}
