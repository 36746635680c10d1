package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const (
	EnvLogLevel  = "ROBOTGRID_LOG_LEVEL"
	EnvLogFormat = "ROBOTGRID_LOG_FORMAT"
	EnvLogSink   = "ROBOTGRID_LOG_SINK"
	EnvLogFile   = "ROBOTGRID_LOG_FILE"
)

const defaultLogFile = "robotgrid.log"

// Config is the log section of the config file. Nil fields take defaults.
type Config struct {
	Level  *string `yaml:"level,omitempty" toml:"level,omitempty"`
	Format *string `yaml:"format,omitempty" toml:"format,omitempty"`
	Sink   *string `yaml:"sink,omitempty" toml:"sink,omitempty"`
	File   *string `yaml:"file,omitempty" toml:"file,omitempty"`

	MaxSizeMB  *int  `yaml:"max_size_mb,omitempty" toml:"max_size_mb,omitempty"`
	MaxBackups *int  `yaml:"max_backups,omitempty" toml:"max_backups,omitempty"`
	MaxAgeDays *int  `yaml:"max_age_days,omitempty" toml:"max_age_days,omitempty"`
	Compress   *bool `yaml:"compress,omitempty" toml:"compress,omitempty"`
}

func DefaultConfig() Config {
	// Quiet by default: the core only logs at debug level.
	level := "error"
	format := string(FormatText)
	sink := string(SinkStderr)
	return Config{Level: &level, Format: &format, Sink: &sink}
}

// WithEnv applies ROBOTGRID_LOG_* overrides.
func (c Config) WithEnv() Config {
	out := c
	if v, ok := lookupEnv(EnvLogLevel); ok {
		out.Level = &v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok {
		out.Format = &v
	}
	if v, ok := lookupEnv(EnvLogSink); ok {
		out.Sink = &v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		out.File = &v
	}
	return out
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func mergeConfig(base, override Config) Config {
	out := base
	if override.Level != nil {
		out.Level = override.Level
	}
	if override.Format != nil {
		out.Format = override.Format
	}
	if override.Sink != nil {
		out.Sink = override.Sink
	}
	if override.File != nil {
		out.File = override.File
	}
	if override.MaxSizeMB != nil {
		out.MaxSizeMB = override.MaxSizeMB
	}
	if override.MaxBackups != nil {
		out.MaxBackups = override.MaxBackups
	}
	if override.MaxAgeDays != nil {
		out.MaxAgeDays = override.MaxAgeDays
	}
	if override.Compress != nil {
		out.Compress = override.Compress
	}
	return out
}

// New builds a logger from cfg merged over the defaults and the environment.
// The returned func closes the sink.
func New(cfg Config) (*slog.Logger, func() error, error) {
	cfg = mergeConfig(DefaultConfig(), cfg).WithEnv()

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	writer, closeFn, err := resolveWriter(cfg)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch Format(strings.ToLower(deref(cfg.Format, string(FormatText)))) {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	case FormatText:
		handler = slog.NewTextHandler(writer, opts)
	default:
		closeFn()
		return nil, nil, fmt.Errorf("logging: unknown format %q", *cfg.Format)
	}
	return slog.New(handler).With(slog.String("app", "robotgrid")), closeFn, nil
}

// Init installs the logger built from cfg as the slog default.
func Init(cfg Config) (*slog.Logger, func() error, error) {
	logger, closeFn, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

func parseLevel(value *string) (slog.Level, error) {
	switch v := strings.ToLower(strings.TrimSpace(deref(value, ""))); v {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", v)
	}
}

func resolveWriter(cfg Config) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	sink := Sink(strings.ToLower(deref(cfg.Sink, string(SinkStderr))))
	switch sink {
	case SinkNone:
		return io.Discard, noop, nil
	case SinkStderr:
		return os.Stderr, noop, nil
	case SinkFile:
		path := strings.TrimSpace(deref(cfg.File, ""))
		if path == "" {
			path = defaultLogFile
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
			}
		}
		rot := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    derefInt(cfg.MaxSizeMB, 20),
			MaxBackups: derefInt(cfg.MaxBackups, 5),
			MaxAge:     derefInt(cfg.MaxAgeDays, 7),
			Compress:   cfg.Compress != nil && *cfg.Compress,
		}
		return rot, rot.Close, nil
	default:
		return nil, nil, fmt.Errorf("logging: unknown sink %q", sink)
	}
}

func deref(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func derefInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
