package coord

import (
	"errors"
	"fmt"
)

// Stride is the number of float64 values per point in a Batch.
const Stride = 2

// Offsets of the two values of a point within its stride. Geographic
// input uses Lambda/Phi, planar output uses X/Y. They share slots, which
// is what lets kernels transform a batch in place.
const (
	Lambda = 0
	Phi    = 1
	X      = 0
	Y      = 1
)

// ErrBatchRange is returned when a (start, n) window does not fit a batch.
var ErrBatchRange = errors.New("coord: batch range out of bounds")

// Batch is a caller-owned flat buffer of interleaved point pairs.
// Point i occupies b[i*Stride] and b[i*Stride+1].
type Batch []float64

// NewBatch allocates a batch holding n points.
func NewBatch(n int) Batch {
	return make(Batch, n*Stride)
}

// BatchFromGeographic packs points into a new batch as {Lambda, Phi}.
func BatchFromGeographic(pts []GeographicPoint) Batch {
	b := NewBatch(len(pts))
	for i, p := range pts {
		b[i*Stride+Lambda] = p.Lon
		b[i*Stride+Phi] = p.Lat
	}
	return b
}

// Len returns the number of whole points the buffer can hold.
func (b Batch) Len() int { return len(b) / Stride }

// CheckRange verifies that points [start, start+n) lie inside the buffer.
func (b Batch) CheckRange(start, n int) error {
	if start < 0 || n < 0 {
		return fmt.Errorf("%w: start=%d n=%d", ErrBatchRange, start, n)
	}
	if start > b.Len() || n > b.Len()-start {
		return fmt.Errorf("%w: start=%d n=%d, batch holds %d points",
			ErrBatchRange, start, n, b.Len())
	}
	return nil
}

// Geographic reads point i as a geographic coordinate.
func (b Batch) Geographic(i int) GeographicPoint {
	return GeographicPoint{Lon: b[i*Stride+Lambda], Lat: b[i*Stride+Phi]}
}

// SetGeographic writes p into slot i.
func (b Batch) SetGeographic(i int, p GeographicPoint) {
	b[i*Stride+Lambda] = p.Lon
	b[i*Stride+Phi] = p.Lat
}

// Planar reads point i as a planar coordinate.
func (b Batch) Planar(i int) PlanarPoint {
	return PlanarPoint{X: b[i*Stride+X], Y: b[i*Stride+Y]}
}

// SetPlanar writes p into slot i.
func (b Batch) SetPlanar(i int, p PlanarPoint) {
	b[i*Stride+X] = p.X
	b[i*Stride+Y] = p.Y
}

// IsNaN reports whether either value of point i is NaN, which is how
// kernels flag points outside their domain.
func (b Batch) IsNaN(i int) bool {
	return b[i*Stride] != b[i*Stride] || b[i*Stride+1] != b[i*Stride+1]
}
