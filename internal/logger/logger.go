package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options describe the logger of one command-line tool.
type Options struct {
	Tool    string // logger name, e.g. "geodist"
	Version string // attached to every entry when set
	Env     string // prod: JSON; local, dev: console
	Level   string // debug, info, warn, error; empty keeps the env default
}

// New builds the zap logger for a tool. Results go to stdout, so every
// logger writes to stderr.
func New(o Options) (*zap.Logger, error) {
	var cfg zap.Config
	switch o.Env {
	case "prod":
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	case "local", "dev":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown environment %q for logger", o.Env)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if o.Level != "" {
		level, err := zapcore.ParseLevel(strings.ToLower(o.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	if o.Tool != "" {
		l = l.Named(o.Tool)
	}
	if o.Version != "" {
		l = l.With(zap.String("version", o.Version))
	}
	return l, nil
}
