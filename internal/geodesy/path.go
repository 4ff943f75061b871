package geodesy

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/pspoerri/geoproj/internal/coord"
	"github.com/pspoerri/geoproj/internal/ellipsoid"
)

// Between returns the distance in meters from p1 to p2 with method m.
// The Result of the approximate and Karney methods always reports
// Converged with zero iterations.
func Between(p1, p2 coord.GeographicPoint, e *ellipsoid.Ellipsoid, m Method) (Result, error) {
	switch m {
	case MethodVincenty:
		return Vincenty(p1, p2, e), nil
	case MethodApproximate:
		return Result{Meters: Approximate(p1, p2, e)}, nil
	case MethodKarney:
		return Result{Meters: Karney(p1, p2, e)}, nil
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}

// PathLength sums the segment distances of ls, whose points are
// [lon, lat] pairs in degrees as orb uses them. The returned Result
// carries the total, the summed iteration count, and IterationCapReached
// if any segment failed to converge.
func PathLength(ls orb.LineString, e *ellipsoid.Ellipsoid, m Method) (Result, error) {
	var total Result
	for i := 1; i < len(ls); i++ {
		p1 := coord.FromDegrees(ls[i-1].Lon(), ls[i-1].Lat())
		p2 := coord.FromDegrees(ls[i].Lon(), ls[i].Lat())
		r, err := Between(p1, p2, e, m)
		if err != nil {
			return Result{}, err
		}
		total.Meters += r.Meters
		total.Iterations += r.Iterations
		if r.Status != Converged {
			total.Status = r.Status
		}
	}
	return total, nil
}
