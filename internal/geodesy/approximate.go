package geodesy

import (
	"math"

	"github.com/pspoerri/geoproj/internal/coord"
	"github.com/pspoerri/geoproj/internal/ellipsoid"
)

// Approximate returns the distance in meters from p1 to p2 using the
// haversine formula on a sphere whose radius is the average of the
// meridional and prime-vertical radii of curvature at the mean latitude,
// weighted by the latitude and longitude separation.
//
// Accuracy is within a few tenths of a percent over distances up to a
// few hundred kilometers. Coincident points return 0.
func Approximate(p1, p2 coord.GeographicPoint, e *ellipsoid.Ellipsoid) float64 {
	dlat := math.Abs(p2.Lat - p1.Lat)
	dlon := math.Abs(p2.Lon - p1.Lon)
	if dlon > math.Pi {
		dlon = 2*math.Pi - dlon
	}

	a := e.EquatorialRadius()
	e2 := e.EccentricitySquared()

	sinMid := math.Sin((p1.Lat + p2.Lat) / 2)
	w := 1 - e2*sinMid*sinMid
	meridional := a * (1 - e2) / (w * math.Sqrt(w))
	primeVertical := a / math.Sqrt(w)

	sum := dlat + dlon
	radius := meridional*(dlat/sum) + primeVertical*(dlon/sum)

	sinLat := math.Sin(dlat / 2)
	sinLon := math.Sin(dlon / 2)
	h := sinLat*sinLat + math.Cos(p1.Lat)*math.Cos(p2.Lat)*sinLon*sinLon
	c := 2 * coord.Aasin(math.Sqrt(coord.Clamp(h, 0, 1)))

	d := radius * c
	if math.IsNaN(d) {
		return 0
	}
	return d
}
