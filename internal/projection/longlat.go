package projection

import "github.com/pspoerri/geoproj/internal/coord"

// longLat is the identity projection for data already in geographic
// radians (EPSG:4326 axis order lon, lat).
type longLat struct{}

func newLongLat(Params) (Kernel, error) { return longLat{}, nil }

func (longLat) Forward(coord.Batch, int, int) {}
func (longLat) Inverse(coord.Batch, int, int) {}
