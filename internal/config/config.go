package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pspoerri/geoproj/internal/geodesy"
	"github.com/pspoerri/geoproj/internal/projection"
	"github.com/pspoerri/geoproj/internal/units"
)

// Config holds the geoproj configuration.
type Config struct {
	Logging     LoggingConfig      `yaml:"logging"`
	Units       UnitsConfig        `yaml:"units"`
	Geodesy     GeodesyConfig      `yaml:"geodesy"`
	Ellipsoids  []EllipsoidConfig  `yaml:"ellipsoids"`
	Projections []ProjectionConfig `yaml:"projections"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// UnitsConfig selects the measurement system used to display results.
type UnitsConfig struct {
	System string `yaml:"system"` // metric (default) | imperial
}

// GeodesyConfig selects the default distance method and ellipsoid.
type GeodesyConfig struct {
	Method    string `yaml:"method"`    // vincenty (default) | approximate | karney
	Ellipsoid string `yaml:"ellipsoid"` // name or alias (default: WGS 84)
}

// EllipsoidConfig defines an additional ellipsoid. Exactly one of
// InverseFlattening or PolarRadius should be set.
type EllipsoidConfig struct {
	Name              string  `yaml:"name"`
	EPSG              int     `yaml:"epsg"`
	EquatorialRadius  float64 `yaml:"equatorial_radius"`
	InverseFlattening float64 `yaml:"inverse_flattening"`
	PolarRadius       float64 `yaml:"polar_radius"`
}

// ProjectionConfig registers an additional projection built from a kernel family.
type ProjectionConfig struct {
	ID     string             `yaml:"id"`
	Kernel string             `yaml:"kernel"`
	Name   string             `yaml:"name"`
	EPSG   int                `yaml:"epsg"`
	Params map[string]float64 `yaml:"params"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// Load reads configuration from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, applies defaults and validates it.
func Parse(data []byte) (Config, error) {
	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Units.System == "" {
		c.Units.System = units.Metric.String()
	}
	if c.Geodesy.Method == "" {
		c.Geodesy.Method = geodesy.MethodVincenty.String()
	}
	if c.Geodesy.Ellipsoid == "" {
		c.Geodesy.Ellipsoid = "WGS 84"
	}
}

// Validate checks the configuration for correctness. Ellipsoid radii are
// checked when the engine builds them.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	if _, err := units.ParseSystem(c.Units.System); err != nil {
		return fmt.Errorf("units.system: %w", err)
	}
	if _, err := geodesy.ParseMethod(c.Geodesy.Method); err != nil {
		return fmt.Errorf("geodesy.method: %w", err)
	}

	names := make(map[string]bool, len(c.Ellipsoids))
	for i, e := range c.Ellipsoids {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if key == "" {
			return fmt.Errorf("ellipsoids[%d].name is required", i)
		}
		if names[key] {
			return fmt.Errorf("ellipsoids[%d]: duplicate name %q", i, e.Name)
		}
		names[key] = true
		if e.EquatorialRadius <= 0 {
			return fmt.Errorf("ellipsoids[%d].equatorial_radius must be positive, got %v", i, e.EquatorialRadius)
		}
		if e.InverseFlattening < 0 {
			return fmt.Errorf("ellipsoids[%d].inverse_flattening must not be negative, got %v", i, e.InverseFlattening)
		}
		if e.PolarRadius < 0 {
			return fmt.Errorf("ellipsoids[%d].polar_radius must not be negative, got %v", i, e.PolarRadius)
		}
		if e.InverseFlattening == 0 && e.PolarRadius == 0 {
			return fmt.Errorf("ellipsoids[%d]: one of inverse_flattening or polar_radius is required", i)
		}
	}

	families := make(map[string]bool)
	for _, f := range projection.Families() {
		families[f] = true
	}
	ids := make(map[string]bool, len(c.Projections))
	for i, p := range c.Projections {
		key := strings.ToLower(strings.TrimSpace(p.ID))
		if key == "" {
			return fmt.Errorf("projections[%d].id is required", i)
		}
		if ids[key] {
			return fmt.Errorf("projections[%d]: duplicate id %q", i, p.ID)
		}
		ids[key] = true
		if !families[p.Kernel] {
			return fmt.Errorf("projections[%d].kernel must be one of %s, got %q",
				i, strings.Join(projection.Families(), ", "), p.Kernel)
		}
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
