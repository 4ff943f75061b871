package projection

import (
	"math"

	"github.com/pspoerri/geoproj/internal/coord"
)

const (
	degPerRad = 180 / math.Pi
	radPerDeg = math.Pi / 180
)

// swissLV95 is EPSG:2056 (CH1903+ / LV95) using swisstopo's published
// polynomial approximation. Accuracy is about one meter inside Switzerland;
// far outside the country the polynomials diverge but stay finite.
//
// Reference: https://www.swisstopo.admin.ch/en/knowledge-facts/surveying-geodesy/reference-frames/local/lv95.html
type swissLV95 struct{}

func newSwissLV95(Params) (Kernel, error) { return swissLV95{}, nil }

// Forward writes easting into X and northing into Y.
func (swissLV95) Forward(b coord.Batch, start, n int) {
	for i := start; i < start+n; i++ {
		lon := b[i*coord.Stride+coord.Lambda] * degPerRad
		lat := b[i*coord.Stride+coord.Phi] * degPerRad
		if math.IsNaN(lon) || math.IsNaN(lat) {
			setNaN(b, i)
			continue
		}

		// Sexagesimal seconds, then auxiliary values in 10000" units.
		phiAux := (lat*3600 - 169028.66) / 10000
		lambdaAux := (lon*3600 - 26782.5) / 10000

		b[i*coord.Stride+coord.X] = 2_600_072.37 +
			211_455.93*lambdaAux -
			10_938.51*lambdaAux*phiAux -
			0.36*lambdaAux*phiAux*phiAux -
			44.54*lambdaAux*lambdaAux*lambdaAux

		b[i*coord.Stride+coord.Y] = 1_200_147.07 +
			308_807.95*phiAux +
			3_745.25*lambdaAux*lambdaAux +
			76.63*phiAux*phiAux -
			194.56*lambdaAux*lambdaAux*phiAux +
			119.79*phiAux*phiAux*phiAux
	}
}

func (swissLV95) Inverse(b coord.Batch, start, n int) {
	for i := start; i < start+n; i++ {
		// Differences from the Bern origin in 1000 km units.
		y := (b[i*coord.Stride+coord.X] - 2_600_000) / 1_000_000
		x := (b[i*coord.Stride+coord.Y] - 1_200_000) / 1_000_000

		// 10000" units.
		lonSec := 2.6779094 +
			4.728982*y +
			0.791484*y*x +
			0.1306*y*x*x -
			0.0436*y*y*y
		latSec := 16.9023892 +
			3.238272*x -
			0.270978*y*y -
			0.002528*x*x -
			0.0447*y*y*x -
			0.0140*x*x*x

		b[i*coord.Stride+coord.Lambda] = lonSec * 100.0 / 36.0 * radPerDeg
		b[i*coord.Stride+coord.Phi] = latSec * 100.0 / 36.0 * radPerDeg
	}
}
