package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/pspoerri/geoproj/internal/config"
	"github.com/pspoerri/geoproj/internal/coord"
	"github.com/pspoerri/geoproj/internal/engine"
	"github.com/pspoerri/geoproj/internal/geodesy"
	"github.com/pspoerri/geoproj/internal/logger"
	"github.com/pspoerri/geoproj/internal/metrics"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Reference pair used when no coordinates are given.
var defaultArgs = []string{"47.552063", "9.226081", "47.374487", "9.556946"}

// agreeTolerance is the largest Vincenty/Karney difference reported as agreement.
const agreeTolerance = 1e-3 // meters

func main() {
	// A .env file may set ENV and the variables config files expand.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Loading .env: %v", err)
	}

	var (
		configPath  string
		env         string
		ellipsoidN  string
		method      string
		unitSystem  string
		elapsed     time.Duration
		showMetrics bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "YAML configuration file (default: built-in defaults)")
	flag.StringVar(&env, "env", config.GetEnv(), "Logger environment: local, dev, prod")
	flag.StringVar(&ellipsoidN, "ellipsoid", "", "Ellipsoid name or alias (default: from config, WGS 84)")
	flag.StringVar(&method, "method", "", "Distance method: vincenty, approximate, karney (default: from config)")
	flag.StringVar(&unitSystem, "units", "", "Unit system for output: metric, imperial (default: from config)")
	flag.DurationVar(&elapsed, "elapsed", 0, "Travel time; when set, also print the average speed")
	flag.BoolVar(&showMetrics, "metrics", false, "Dump Prometheus metrics to stderr on exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: geodist [flags] [lat1 lon1 lat2 lon2]\n\n")
		fmt.Fprintf(os.Stderr, "Compute the ellipsoidal surface distance between two points given in\n")
		fmt.Fprintf(os.Stderr, "decimal degrees, and cross-check Vincenty against Karney.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("geodist %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	args := flag.Args()
	switch len(args) {
	case 0:
		args = defaultArgs
	case 4:
	default:
		flag.Usage()
		os.Exit(1)
	}
	deg := make([]float64, 4)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			log.Fatalf("Argument %d: %v", i+1, err)
		}
		deg[i] = v
	}
	from := coord.FromDegrees(deg[1], deg[0])
	to := coord.FromDegrees(deg[3], deg[2])

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Fatalf("Config: %v", err)
		}
	}
	if ellipsoidN != "" {
		cfg.Geodesy.Ellipsoid = ellipsoidN
	}
	if method != "" {
		cfg.Geodesy.Method = method
	}
	if unitSystem != "" {
		cfg.Units.System = unitSystem
	}

	zl, err := logger.New(logger.Options{Tool: "geodist", Version: version, Env: env, Level: cfg.Logging.Level})
	if err != nil {
		log.Fatalf("Logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	metrics.Register(prometheus.DefaultRegisterer)

	eng, err := engine.New(cfg, zl)
	if err != nil {
		log.Fatalf("Engine: %v", err)
	}
	el := eng.DefaultEllipsoid()

	dist, res, err := eng.Distance(from, to)
	if err != nil {
		log.Fatalf("Distance: %v", err)
	}

	fmt.Printf("From:      %.6f, %.6f\n", deg[0], deg[1])
	fmt.Printf("To:        %.6f, %.6f\n", deg[2], deg[3])
	fmt.Printf("Ellipsoid: %s (a=%.3f m, 1/f=%.9f)\n", el.Name(), el.EquatorialRadius(), el.InverseFlattening())
	fmt.Printf("%-10s %.3f %s", eng.Method().String()+":", dist.Value, dist.Unit)
	if eng.Method() == geodesy.MethodVincenty {
		fmt.Printf(" (%s after %d iterations)", res.Status, res.Iterations)
	}
	fmt.Println()

	if eng.Method() != geodesy.MethodKarney {
		refDist, ref, err := eng.DistanceOn(el.Name(), geodesy.MethodKarney, from, to)
		if err != nil {
			log.Fatalf("Reference distance: %v", err)
		}
		delta := math.Abs(res.Meters - ref.Meters)
		fmt.Printf("%-10s %.3f %s\n", "karney:", refDist.Value, refDist.Unit)
		agree := "no"
		if delta <= agreeTolerance {
			agree = "yes"
		}
		fmt.Printf("Agree:     %s (delta %.6f m)\n", agree, delta)
	}

	azi1, azi2 := geodesy.Azimuths(from, to, el)
	fmt.Printf("Azimuth:   %.4f° initial, %.4f° final\n", azi1, azi2)

	if elapsed > 0 {
		speed := dist.Per(elapsed).Best(eng.System())
		fmt.Printf("Speed:     %.2f %s\n", speed.Value, speed.Unit)
	}

	if showMetrics {
		dumpMetrics()
	}
}

func dumpMetrics() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.Printf("Gathering metrics: %v", err)
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(os.Stderr, mf); err != nil {
			log.Printf("Writing metrics: %v", err)
			return
		}
	}
}
