// Package engine wires configuration, ellipsoids, projection kernels and
// geodesic solvers together and adds logging and metrics around them.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pspoerri/geoproj/internal/config"
	"github.com/pspoerri/geoproj/internal/coord"
	"github.com/pspoerri/geoproj/internal/ellipsoid"
	"github.com/pspoerri/geoproj/internal/geodesy"
	"github.com/pspoerri/geoproj/internal/metrics"
	"github.com/pspoerri/geoproj/internal/projection"
	"github.com/pspoerri/geoproj/internal/units"
)

// Engine is immutable after New and safe for concurrent use.
type Engine struct {
	log        *zap.Logger
	catalog    *ellipsoid.Catalog
	dispatcher *projection.Dispatcher

	ellipsoid *ellipsoid.Ellipsoid
	method    geodesy.Method
	system    units.System
}

// Report summarizes one batch transform.
type Report struct {
	Points         int
	Invalid        int
	InvalidIndexes []int // absolute point indexes in the batch
}

// Err is nil when every point transformed, and otherwise wraps
// coord.ErrDomain with the number of points left NaN.
func (r Report) Err() error {
	if r.Invalid == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d points", coord.ErrDomain, r.Invalid, r.Points)
}

// New builds an engine from a validated configuration. A nil logger
// discards all output.
func New(cfg config.Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	catalog := ellipsoid.NewCatalog()
	for _, ec := range cfg.Ellipsoids {
		epsg := ec.EPSG
		if epsg == 0 {
			epsg = ellipsoid.UnknownEPSG
		}
		el, err := ellipsoid.NewWithEPSG(epsg, ec.EquatorialRadius, ec.InverseFlattening, ec.PolarRadius, ec.Name)
		if err != nil {
			return nil, fmt.Errorf("ellipsoid %q: %w", ec.Name, err)
		}
		if err := catalog.Add(el); err != nil {
			return nil, err
		}
	}

	reg := projection.DefaultRegistry()
	for _, pc := range cfg.Projections {
		err := reg.Register(projection.Definition{
			ID:     pc.ID,
			Name:   pc.Name,
			EPSG:   pc.EPSG,
			Family: pc.Kernel,
			Params: projection.Params(pc.Params),
		})
		if err != nil {
			return nil, err
		}
	}
	dispatcher, err := projection.NewDispatcher(reg)
	if err != nil {
		return nil, err
	}

	el, err := catalog.Lookup(cfg.Geodesy.Ellipsoid)
	if err != nil {
		return nil, fmt.Errorf("geodesy.ellipsoid: %w", err)
	}
	method, _ := geodesy.ParseMethod(cfg.Geodesy.Method)
	system, _ := units.ParseSystem(cfg.Units.System)

	e := &Engine{
		log:        logger,
		catalog:    catalog,
		dispatcher: dispatcher,
		ellipsoid:  el,
		method:     method,
		system:     system,
	}
	logger.Info("engine ready",
		zap.String("ellipsoid", el.Name()),
		zap.Stringer("method", method),
		zap.Stringer("units", system),
		zap.Strings("projections", dispatcher.IDs()),
		zap.Int("ellipsoids", len(catalog.Names())),
	)
	return e, nil
}

// Method is the configured default distance method.
func (e *Engine) Method() geodesy.Method { return e.method }

// System is the configured display unit system.
func (e *Engine) System() units.System { return e.system }

// DefaultEllipsoid is the configured default ellipsoid.
func (e *Engine) DefaultEllipsoid() *ellipsoid.Ellipsoid { return e.ellipsoid }

// Ellipsoid looks up a built-in or configured ellipsoid.
func (e *Engine) Ellipsoid(name string) (*ellipsoid.Ellipsoid, error) {
	return e.catalog.Lookup(name)
}

// Ellipsoids returns the names of all known ellipsoids.
func (e *Engine) Ellipsoids() []string { return e.catalog.Names() }

// Projections returns the definitions of all registered projections, sorted by id.
func (e *Engine) Projections() []projection.Definition {
	ids := e.dispatcher.IDs()
	defs := make([]projection.Definition, 0, len(ids))
	for _, id := range ids {
		d, _ := e.dispatcher.Definition(id)
		defs = append(defs, d)
	}
	return defs
}

// ResolveProjection accepts a projection id or an "EPSG:<code>" reference
// and returns the registered id.
func (e *Engine) ResolveProjection(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if code, ok := strings.CutPrefix(strings.ToUpper(ref), "EPSG:"); ok {
		n, err := strconv.Atoi(code)
		if err != nil {
			return "", fmt.Errorf("%w: %q", projection.ErrUnknownProjection, ref)
		}
		return e.dispatcher.ForEPSG(n)
	}
	d, err := e.dispatcher.Definition(ref)
	if err != nil {
		return "", err
	}
	return d.ID, nil
}

// Forward projects points [start, start+n) of b in place with projection id.
func (e *Engine) Forward(id string, b coord.Batch, start, n int) (Report, error) {
	return e.transform(id, "forward", e.dispatcher.Forward, b, start, n)
}

// Inverse unprojects points [start, start+n) of b in place with projection id.
func (e *Engine) Inverse(id string, b coord.Batch, start, n int) (Report, error) {
	return e.transform(id, "inverse", e.dispatcher.Inverse, b, start, n)
}

type transformFunc func(id string, b coord.Batch, start, n int) error

func (e *Engine) transform(id, direction string, fn transformFunc, b coord.Batch, start, n int) (Report, error) {
	id, err := e.ResolveProjection(id)
	if err != nil {
		return Report{}, err
	}
	if err := fn(id, b, start, n); err != nil {
		return Report{}, err
	}

	rep := Report{Points: n}
	for i := start; i < start+n; i++ {
		if b.IsNaN(i) {
			rep.InvalidIndexes = append(rep.InvalidIndexes, i)
		}
	}
	rep.Invalid = len(rep.InvalidIndexes)

	metrics.ProjectedPointsTotal.WithLabelValues(id, direction).Add(float64(n))
	if rep.Invalid > 0 {
		metrics.ProjectionDomainErrorsTotal.WithLabelValues(id, direction).Add(float64(rep.Invalid))
		e.log.Debug("points outside projection domain",
			zap.String("projection", id),
			zap.String("direction", direction),
			zap.Int("invalid", rep.Invalid),
			zap.Ints("indexes", rep.InvalidIndexes),
		)
	}
	return rep, nil
}

// Distance measures from → to with the configured method and ellipsoid.
// The distance is expressed in the best unit of the configured system.
func (e *Engine) Distance(from, to coord.GeographicPoint) (units.Distance, geodesy.Result, error) {
	return e.distance(e.ellipsoid, e.method, from, to)
}

// DistanceOn measures from → to on the named ellipsoid with method m.
func (e *Engine) DistanceOn(name string, m geodesy.Method, from, to coord.GeographicPoint) (units.Distance, geodesy.Result, error) {
	el, err := e.catalog.Lookup(name)
	if err != nil {
		return units.Distance{}, geodesy.Result{}, err
	}
	return e.distance(el, m, from, to)
}

func (e *Engine) distance(el *ellipsoid.Ellipsoid, m geodesy.Method, from, to coord.GeographicPoint) (units.Distance, geodesy.Result, error) {
	res, err := geodesy.Between(from, to, el, m)
	if err != nil {
		return units.Distance{}, geodesy.Result{}, err
	}

	metrics.GeodesicSolvesTotal.WithLabelValues(m.String(), res.Status.String()).Inc()
	if m == geodesy.MethodVincenty {
		metrics.GeodesicIterations.Observe(float64(res.Iterations))
	}
	if warn := res.Warning(); warn != nil {
		lon1, lat1 := from.Degrees()
		lon2, lat2 := to.Degrees()
		e.log.Warn("geodesic solve did not converge",
			zap.Error(warn),
			zap.Float64s("from", []float64{lon1, lat1}),
			zap.Float64s("to", []float64{lon2, lat2}),
			zap.Int("iterations", res.Iterations),
			zap.String("ellipsoid", el.Name()),
		)
	}

	return units.FromMeters(res.Meters).Best(e.system), res, nil
}
