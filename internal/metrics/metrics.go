package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Geodesy and projection Prometheus metrics.
var (
	GeodesicSolvesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geoproj",
			Name:      "geodesic_solves_total",
			Help:      "Total number of inverse geodesic solves",
		},
		[]string{"method", "status"},
	)

	GeodesicIterations = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "geoproj",
			Name:      "geodesic_iterations",
			Help:      "Iterations used per Vincenty solve",
			Buckets:   []float64{1, 2, 3, 4, 5, 8, 12, 20, 35, 50},
		},
	)

	ProjectedPointsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geoproj",
			Name:      "projected_points_total",
			Help:      "Total number of points passed through projection kernels",
		},
		[]string{"projection", "direction"}, // "forward" / "inverse"
	)

	ProjectionDomainErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geoproj",
			Name:      "projection_domain_errors_total",
			Help:      "Points rejected as outside the projection domain",
		},
		[]string{"projection", "direction"},
	)
)

var registerOnce sync.Once

// Register registers the geoproj metrics with reg. Only the first call has
// an effect; pass prometheus.DefaultRegisterer from main.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(
			GeodesicSolvesTotal,
			GeodesicIterations,
			ProjectedPointsTotal,
			ProjectionDomainErrorsTotal,
		)
	})
}
