package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegister_Once(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)
	Register(reg) // second call must not panic on duplicate registration

	GeodesicSolvesTotal.WithLabelValues("vincenty", "converged").Inc()
	GeodesicIterations.Observe(3)

	n, err := testutil.GatherAndCount(reg, "geoproj_geodesic_solves_total", "geoproj_geodesic_iterations")
	if err != nil {
		t.Fatal(err)
	}
	if n < 2 {
		t.Errorf("expected at least 2 gathered series, got %d", n)
	}
}

func TestProjectionCounters(t *testing.T) {
	before := testutil.ToFloat64(ProjectedPointsTotal.WithLabelValues("wag6", "forward"))
	ProjectedPointsTotal.WithLabelValues("wag6", "forward").Add(5)
	ProjectionDomainErrorsTotal.WithLabelValues("wag6", "forward").Inc()

	if got := testutil.ToFloat64(ProjectedPointsTotal.WithLabelValues("wag6", "forward")); got != before+5 {
		t.Errorf("expected projected_points_total=%v, got %v", before+5, got)
	}

	expected := `
# HELP geoproj_projection_domain_errors_total Points rejected as outside the projection domain
# TYPE geoproj_projection_domain_errors_total counter
geoproj_projection_domain_errors_total{direction="forward",projection="wag6"} 1
`
	if err := testutil.CollectAndCompare(ProjectionDomainErrorsTotal, strings.NewReader(expected)); err != nil {
		t.Error(err)
	}
}
