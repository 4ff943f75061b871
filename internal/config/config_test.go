package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
logging:
  level: debug
units:
  system: imperial
geodesy:
  method: karney
  ellipsoid: ${GEOPROJ_TEST_ELLIPSOID:-GRS80}
ellipsoids:
  - name: Krassowsky 1940
    epsg: 7024
    equatorial_radius: 6378245
    inverse_flattening: 298.3
projections:
  - id: wag6_scaled
    kernel: pseudocylindrical
    name: Wagner VI (scaled)
    params: {cx: 1.0, cy: 1.0}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geoproj.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Logging.Level=debug, got %q", cfg.Logging.Level)
	}
	if cfg.Units.System != "imperial" {
		t.Errorf("expected Units.System=imperial, got %q", cfg.Units.System)
	}
	if cfg.Geodesy.Method != "karney" {
		t.Errorf("expected Geodesy.Method=karney, got %q", cfg.Geodesy.Method)
	}
	if cfg.Geodesy.Ellipsoid != "GRS80" {
		t.Errorf("expected default from ${...:-GRS80}, got %q", cfg.Geodesy.Ellipsoid)
	}
	if len(cfg.Ellipsoids) != 1 || cfg.Ellipsoids[0].InverseFlattening != 298.3 || cfg.Ellipsoids[0].EPSG != 7024 {
		t.Errorf("unexpected ellipsoids: %+v", cfg.Ellipsoids)
	}
	if len(cfg.Projections) != 1 {
		t.Fatalf("expected 1 projection, got %d", len(cfg.Projections))
	}
	p := cfg.Projections[0]
	if p.ID != "wag6_scaled" || p.Kernel != "pseudocylindrical" || p.Params["cx"] != 1.0 {
		t.Errorf("unexpected projection: %+v", p)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("GEOPROJ_TEST_ELLIPSOID", "bessel")
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Geodesy.Ellipsoid != "bessel" {
		t.Errorf("expected Geodesy.Ellipsoid=bessel, got %q", cfg.Geodesy.Ellipsoid)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("logging: [unterminated"))
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Units.System != "metric" {
		t.Errorf("expected Units.System=metric, got %q", cfg.Units.System)
	}
	if cfg.Geodesy.Method != "vincenty" {
		t.Errorf("expected Geodesy.Method=vincenty, got %q", cfg.Geodesy.Method)
	}
	if cfg.Geodesy.Ellipsoid != "WGS 84" {
		t.Errorf("expected Geodesy.Ellipsoid=WGS 84, got %q", cfg.Geodesy.Ellipsoid)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"unit system", func(c *Config) { c.Units.System = "local" }, "units.system"},
		{"method", func(c *Config) { c.Geodesy.Method = "haversine" }, "geodesy.method"},
		{"ellipsoid name", func(c *Config) {
			c.Ellipsoids = []EllipsoidConfig{{EquatorialRadius: 1, PolarRadius: 1}}
		}, "ellipsoids[0].name"},
		{"ellipsoid radius", func(c *Config) {
			c.Ellipsoids = []EllipsoidConfig{{Name: "x"}}
		}, "equatorial_radius"},
		{"ellipsoid shape", func(c *Config) {
			c.Ellipsoids = []EllipsoidConfig{{Name: "x", EquatorialRadius: 6378137}}
		}, "ellipsoids[0]: one of inverse_flattening or polar_radius"},
		{"ellipsoid negative flattening", func(c *Config) {
			c.Ellipsoids = []EllipsoidConfig{{Name: "x", EquatorialRadius: 6378137, InverseFlattening: -298}}
		}, "ellipsoids[0].inverse_flattening"},
		{"duplicate ellipsoid", func(c *Config) {
			c.Ellipsoids = []EllipsoidConfig{
				{Name: "x", EquatorialRadius: 1, PolarRadius: 1},
				{Name: "X ", EquatorialRadius: 2, PolarRadius: 2},
			}
		}, "duplicate name"},
		{"projection id", func(c *Config) {
			c.Projections = []ProjectionConfig{{Kernel: "longlat"}}
		}, "projections[0].id"},
		{"projection kernel", func(c *Config) {
			c.Projections = []ProjectionConfig{{ID: "robin", Kernel: "robinson"}}
		}, "projections[0].kernel"},
		{"duplicate projection", func(c *Config) {
			c.Projections = []ProjectionConfig{{ID: "a", Kernel: "longlat"}, {ID: "A", Kernel: "longlat"}}
		}, "duplicate id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("expected local, got %q", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("expected prod, got %q", got)
	}
}
