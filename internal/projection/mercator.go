package projection

import (
	"math"

	"github.com/pspoerri/geoproj/internal/coord"
)

const (
	// WebMercatorRadius is the sphere radius of EPSG:3857, the WGS84 semi-major axis.
	WebMercatorRadius = 6378137.0
	// originShift is half the equatorial circumference of that sphere.
	originShift = math.Pi * WebMercatorRadius
)

// webMercator is the spherical pseudo-Mercator used by web maps.
// Latitudes at or beyond the poles have no planar image and yield NaN.
type webMercator struct {
	r float64
}

func newWebMercator(p Params) (Kernel, error) {
	r, err := p.require("a")
	if err != nil {
		return nil, err
	}
	if r <= 0 {
		return nil, ErrInvalidParams
	}
	return &webMercator{r: r}, nil
}

func (w *webMercator) Forward(b coord.Batch, start, n int) {
	for i := start; i < start+n; i++ {
		lam := b[i*coord.Stride+coord.Lambda]
		phi := b[i*coord.Stride+coord.Phi]
		if !(math.Abs(phi) < math.Pi/2) {
			setNaN(b, i)
			continue
		}
		b[i*coord.Stride+coord.X] = w.r * lam
		b[i*coord.Stride+coord.Y] = w.r * math.Log(math.Tan(math.Pi/4+phi/2))
	}
}

func (w *webMercator) Inverse(b coord.Batch, start, n int) {
	for i := start; i < start+n; i++ {
		x := b[i*coord.Stride+coord.X]
		y := b[i*coord.Stride+coord.Y]
		b[i*coord.Stride+coord.Lambda] = x / w.r
		b[i*coord.Stride+coord.Phi] = 2*math.Atan(math.Exp(y/w.r)) - math.Pi/2
	}
}
