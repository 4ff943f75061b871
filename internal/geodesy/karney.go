package geodesy

import (
	"sync"

	"github.com/tidwall/geodesic"

	"github.com/pspoerri/geoproj/internal/coord"
	"github.com/pspoerri/geoproj/internal/ellipsoid"
)

// karneyCache holds one initialized geodesic.Ellipsoid per reference
// ellipsoid. Initialization computes series coefficients, so it is done
// once and shared.
var karneyCache sync.Map // *ellipsoid.Ellipsoid -> *geodesic.Ellipsoid

func karneyFor(e *ellipsoid.Ellipsoid) *geodesic.Ellipsoid {
	if g, ok := karneyCache.Load(e); ok {
		return g.(*geodesic.Ellipsoid)
	}
	g, _ := karneyCache.LoadOrStore(e, geodesic.NewEllipsoid(e.EquatorialRadius(), e.Flattening()))
	return g.(*geodesic.Ellipsoid)
}

// Karney returns the geodesic distance in meters from p1 to p2 computed
// with Karney's algorithm (GeographicLib). It converges for all point
// pairs including antipodes and serves as the reference for Vincenty.
func Karney(p1, p2 coord.GeographicPoint, e *ellipsoid.Ellipsoid) float64 {
	if p1.Equal(p2) {
		return 0
	}
	lon1, lat1 := p1.Degrees()
	lon2, lat2 := p2.Degrees()
	var s12 float64
	karneyFor(e).Inverse(lat1, lon1, lat2, lon2, &s12, nil, nil)
	return s12
}

// Azimuths returns the forward azimuths in degrees at p1 and p2 of the
// geodesic from p1 to p2, clockwise from north in [-180, 180].
func Azimuths(p1, p2 coord.GeographicPoint, e *ellipsoid.Ellipsoid) (azi1, azi2 float64) {
	lon1, lat1 := p1.Degrees()
	lon2, lat2 := p2.Degrees()
	karneyFor(e).Inverse(lat1, lon1, lat2, lon2, nil, &azi1, &azi2)
	return azi1, azi2
}
