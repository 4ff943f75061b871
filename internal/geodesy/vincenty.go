package geodesy

import (
	"math"

	"github.com/pspoerri/geoproj/internal/coord"
	"github.com/pspoerri/geoproj/internal/ellipsoid"
)

const (
	// MaxIterations bounds the λ iteration.
	MaxIterations = 50
	// Tolerance is the λ change below which the solver is converged.
	Tolerance = 1e-12

	// poleEpsilon nudges latitudes off the exact poles, where tan(φ)
	// is infinite. It amounts to about 0.6 mm on the ground.
	poleEpsilon = 1e-10
)

// vincentyState is the per-iteration state of the λ loop. last* hold the
// most recent iteration whose α was finite; the distance is computed from
// them.
type vincentyState struct {
	lambda     float64
	iterations int
	converged  bool

	lastAlpha      float64
	lastSigma      float64
	lastCos2SigmaM float64
}

// Vincenty solves the inverse geodesic problem between p1 and p2 on e
// with Vincenty's iterative formulae. Nearly antipodal points do not
// converge; for those Result.Status is IterationCapReached and the
// distance comes from the last well-defined iteration.
func Vincenty(p1, p2 coord.GeographicPoint, e *ellipsoid.Ellipsoid) Result {
	if p1.Equal(p2) {
		return Result{Status: Converged}
	}

	f := e.Flattening()

	lat1 := offPole(p1.Lat)
	lat2 := offPole(p2.Lat)

	u1 := math.Atan((1 - f) * math.Tan(lat1))
	u2 := math.Atan((1 - f) * math.Tan(lat2))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	l := math.Abs(math.Mod(p2.Lon, 2*math.Pi) - math.Mod(p1.Lon, 2*math.Pi))
	if l > math.Pi {
		l = 2*math.Pi - l
	}

	st := vincentyState{lambda: l}
	st.iterate(l, f, sinU1, cosU1, sinU2, cosU2)

	res := Result{
		Meters:     st.distance(e.PolarRadius(), e.SecondEccentricitySquared()),
		Status:     IterationCapReached,
		Iterations: st.iterations,
	}
	if st.converged {
		res.Status = Converged
	}
	return res
}

// iterate runs the λ loop from st.lambda for the longitude difference l
// and the reduced latitudes given by their sines and cosines. It stops on
// convergence, on the antipodal guard, on a NaN λ or at MaxIterations.
func (st *vincentyState) iterate(l, f, sinU1, cosU1, sinU2, cosU2 float64) {
	for st.iterations < MaxIterations {
		st.iterations++
		lambdaOld := st.lambda

		sinLambda, cosLambda := math.Sincos(st.lambda)
		t1 := cosU2 * sinLambda
		t2 := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma := math.Sqrt(t1*t1 + t2*t2)
		cosSigma := sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma := math.Atan2(sinSigma, cosSigma)

		alpha := math.Asin(cosU1 * cosU2 * sinLambda / sinSigma)
		cosAlpha := math.Cos(alpha)
		cosSqAlpha := cosAlpha * cosAlpha
		cos2SigmaM := math.Cos(sigma) - 2*sinU1*sinU2/cosSqAlpha

		c := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		st.lambda = l + (1-c)*f*math.Sin(alpha)*
			(sigma+c*math.Sin(sigma)*(cos2SigmaM+c*math.Cos(sigma)*(-1+2*cos2SigmaM*cos2SigmaM)))

		antipodal := st.lambda > math.Pi
		if antipodal {
			lambdaOld = math.Pi
			st.lambda = math.Pi
		}

		if !math.IsNaN(alpha) {
			st.lastAlpha = alpha
			st.lastSigma = sigma
			st.lastCos2SigmaM = cos2SigmaM
		}

		if antipodal || math.IsNaN(st.lambda) {
			break
		}
		if math.Abs(st.lambda-lambdaOld) <= Tolerance {
			st.converged = true
			break
		}
	}
}

// distance evaluates the series for s = b·A·(σ − Δσ) from the last
// well-defined iteration. ep2 is the second eccentricity squared.
func (st *vincentyState) distance(b, ep2 float64) float64 {
	cosAlpha := math.Cos(st.lastAlpha)
	sinSigma, cosSigma := math.Sincos(st.lastSigma)
	c2sm := st.lastCos2SigmaM

	u2 := cosAlpha * cosAlpha * ep2
	bigA := 1 + u2/16384*(4096+u2*(-768+u2*(320-175*u2)))
	bigB := u2 / 1024 * (256 + u2*(-128+u2*(74-47*u2)))
	deltaSigma := bigB * sinSigma * (c2sm + bigB/4*(cosSigma*(-1+2*c2sm*c2sm)-
		bigB/6*c2sm*(-3+4*sinSigma*sinSigma)*(-3+4*c2sm*c2sm)))

	return b * bigA * (st.lastSigma - deltaSigma)
}

func offPole(lat float64) float64 {
	if math.Abs(math.Pi/2-math.Abs(lat)) < poleEpsilon {
		return math.Copysign(math.Pi/2-poleEpsilon, lat)
	}
	return lat
}
