package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pspoerri/geoproj/internal/config"
	"github.com/pspoerri/geoproj/internal/coord"
	"github.com/pspoerri/geoproj/internal/engine"
	"github.com/pspoerri/geoproj/internal/logger"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// A .env file may set ENV and the variables config files expand.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Loading .env: %v", err)
	}

	var (
		configPath  string
		env         string
		proj        string
		inverse     bool
		list        bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "YAML configuration file (default: built-in defaults)")
	flag.StringVar(&env, "env", config.GetEnv(), "Logger environment: local, dev, prod")
	flag.StringVar(&proj, "proj", "wag6", "Projection id or EPSG:<code>")
	flag.BoolVar(&inverse, "inverse", false, "Read planar x y and print lon lat (degrees)")
	flag.BoolVar(&list, "list", false, "List the registered projections and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: geoproject [flags] < points.txt\n\n")
		fmt.Fprintf(os.Stderr, "Project \"lon lat\" lines (decimal degrees) read from stdin, or\n")
		fmt.Fprintf(os.Stderr, "unproject \"x y\" lines with -inverse. Points outside the projection\n")
		fmt.Fprintf(os.Stderr, "domain are printed as NaN NaN.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("geoproject %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Fatalf("Config: %v", err)
		}
	}

	zl, err := logger.New(logger.Options{Tool: "geoproject", Version: version, Env: env, Level: cfg.Logging.Level})
	if err != nil {
		log.Fatalf("Logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	eng, err := engine.New(cfg, zl)
	if err != nil {
		log.Fatalf("Engine: %v", err)
	}

	if list {
		for _, d := range eng.Projections() {
			epsg := ""
			if d.EPSG != 0 {
				epsg = fmt.Sprintf("EPSG:%d", d.EPSG)
			}
			fmt.Printf("%-12s %-10s %-18s %s\n", d.ID, epsg, d.Family, d.Name)
		}
		return
	}

	id, err := eng.ResolveProjection(proj)
	if err != nil {
		log.Fatalf("Projection: %v", err)
	}

	b, err := readBatch(os.Stdin, !inverse)
	if err != nil {
		log.Fatalf("Reading input: %v", err)
	}
	n := b.Len()

	var rep engine.Report
	if inverse {
		rep, err = eng.Inverse(id, b, 0, n)
	} else {
		rep, err = eng.Forward(id, b, 0, n)
	}
	if err != nil {
		log.Fatalf("Transform: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	for i := 0; i < n; i++ {
		if b.IsNaN(i) {
			fmt.Fprintln(w, "NaN NaN")
			continue
		}
		if inverse {
			lon, lat := b.Geographic(i).Degrees()
			fmt.Fprintf(w, "%.9f %.9f\n", lon, lat)
		} else {
			p := b.Planar(i)
			fmt.Fprintf(w, "%.6f %.6f\n", p.X, p.Y)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Writing output: %v", err)
	}

	if err := rep.Err(); err != nil {
		zl.Warn("some points could not be transformed", zap.Error(err), zap.Ints("indexes", rep.InvalidIndexes))
	}
	zl.Info("transform complete",
		zap.String("projection", id),
		zap.Bool("inverse", inverse),
		zap.Int("points", rep.Points),
		zap.Int("invalid", rep.Invalid),
	)
}

// readBatch parses whitespace-separated coordinate pairs, one per line.
// Blank lines and lines starting with '#' are skipped. With geographic set
// the pairs are lon lat in degrees and are stored in radians. A line that
// does not parse becomes a NaN point so output lines stay aligned with input.
func readBatch(r io.Reader, geographic bool) (coord.Batch, error) {
	var b coord.Batch
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		u, v := math.NaN(), math.NaN()
		if len(fields) >= 2 {
			var err1, err2 error
			u, err1 = strconv.ParseFloat(fields[0], 64)
			v, err2 = strconv.ParseFloat(fields[1], 64)
			if err1 != nil || err2 != nil {
				u, v = math.NaN(), math.NaN()
			}
		}
		if math.IsNaN(u) {
			log.Printf("line %d: cannot parse %q", line, text)
		}
		if geographic {
			p := coord.FromDegrees(u, v)
			u, v = p.Lon, p.Lat
		}
		b = append(b, u, v)
	}
	return b, sc.Err()
}
