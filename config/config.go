// Package config loads lasso run settings from YAML/JSON files and LASSO_*
// environment variables and turns them into lasso options.
//
// Priority: environment > file > defaults.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lasso/chordal"
	"github.com/katalvlaran/lasso/clique"
	"github.com/katalvlaran/lasso/lasso"
	"github.com/katalvlaran/lasso/updater"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvCliqueFinder    = "LASSO_CLIQUE_FINDER"
	EnvDistanceUpdater = "LASSO_DISTANCE_UPDATER"
	EnvChordalSeed     = "LASSO_CHORDAL_SEED"
	EnvEnrich          = "LASSO_ENRICH"
	EnvClosure         = "LASSO_CLOSURE"
	EnvExactMaxCalls   = "LASSO_EXACT_MAX_CALLS"
	EnvExactMaxDepth   = "LASSO_EXACT_MAX_DEPTH"
	EnvExactTimeLimit  = "LASSO_EXACT_TIME_LIMIT"
	EnvLogLevel        = "LASSO_LOG_LEVEL"
	EnvLogDevelopment  = "LASSO_LOG_DEVELOPMENT"
)

// Config is the on-disk shape of a run configuration.
type Config struct {
	CliqueFinder    string      `json:"clique_finder" yaml:"clique_finder"`
	DistanceUpdater string      `json:"distance_updater" yaml:"distance_updater"`
	ChordalSeed     string      `json:"chordal_seed" yaml:"chordal_seed"`
	Enrich          bool        `json:"enrich" yaml:"enrich"`
	Closure         bool        `json:"closure" yaml:"closure"`
	Exact           ExactConfig `json:"exact" yaml:"exact"`
	Log             LogConfig   `json:"log" yaml:"log"`
}

// ExactConfig bounds the exact clique finder.
type ExactConfig struct {
	MaxCalls int `json:"max_calls" yaml:"max_calls"`
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
	// TimeLimit is a time.ParseDuration string ("250ms", "2s"); empty or
	// "0" means unbounded.
	TimeLimit string `json:"time_limit" yaml:"time_limit"`
}

// Duration parses TimeLimit.
func (e ExactConfig) Duration() (time.Duration, error) {
	if e.TimeLimit == "" {
		return 0, nil
	}

	return time.ParseDuration(e.TimeLimit)
}

// LogConfig selects the zap logger built by NewLogger.
type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development" yaml:"development"`
}

// Default mirrors lasso.DefaultOptions.
func Default() Config {
	d := lasso.DefaultOptions()

	return Config{
		CliqueFinder:    d.CliqueFinder,
		DistanceUpdater: d.DistanceUpdater,
		ChordalSeed:     d.ChordalSeed,
		Enrich:          d.Enrich,
		Closure:         d.Closure,
		Exact:           ExactConfig{MaxCalls: d.ExactMaxCalls, MaxDepth: d.ExactMaxDepth},
		Log:             LogConfig{Level: "info"},
	}
}

// Load reads path (YAML, or JSON as fallback) over the defaults, applies
// environment overrides and validates the result. An empty path skips the
// file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = Decode(data, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Decode parses data into cfg, trying YAML first and JSON second.
// Fields absent from data keep their current values; unknown keys are errors.
func Decode(data []byte, cfg *Config) error {
	ydec := yaml.NewDecoder(bytes.NewReader(data))
	ydec.KnownFields(true)
	yamlErr := ydec.Decode(cfg)
	if yamlErr == nil || yamlErr == io.EOF {
		return nil
	}
	jdec := json.NewDecoder(bytes.NewReader(data))
	jdec.DisallowUnknownFields()
	if jsonErr := jdec.Decode(cfg); jsonErr != nil {
		return fmt.Errorf("%w: parse (tried YAML and JSON): YAML error: %v, JSON error: %v",
			ErrInvalidConfig, yamlErr, jsonErr)
	}

	return nil
}

// ApplyEnv overrides cfg from the LASSO_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvCliqueFinder); ok {
		cfg.CliqueFinder = v
	}
	if v, ok := os.LookupEnv(EnvDistanceUpdater); ok {
		cfg.DistanceUpdater = v
	}
	if v, ok := os.LookupEnv(EnvChordalSeed); ok {
		cfg.ChordalSeed = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvExactTimeLimit); ok {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvExactTimeLimit, v, err)
		}
		cfg.Exact.TimeLimit = v
	}

	var err error
	if v, ok := os.LookupEnv(EnvEnrich); ok {
		if cfg.Enrich, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvEnrich, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvClosure); ok {
		if cfg.Closure, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvClosure, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvLogDevelopment); ok {
		if cfg.Log.Development, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvLogDevelopment, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvExactMaxCalls); ok {
		if cfg.Exact.MaxCalls, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvExactMaxCalls, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvExactMaxDepth); ok {
		if cfg.Exact.MaxDepth, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvExactMaxDepth, v, err)
		}
	}

	return nil
}

// Validate checks every strategy name against its registry and the bounds.
func (c Config) Validate() error {
	if _, err := clique.New(c.CliqueFinder); err != nil {
		return fmt.Errorf("%w: clique_finder: %w", ErrInvalidConfig, err)
	}
	if _, err := updater.New(c.DistanceUpdater); err != nil {
		return fmt.Errorf("%w: distance_updater: %w", ErrInvalidConfig, err)
	}
	if _, err := chordal.ParseSeed(c.ChordalSeed); err != nil {
		return fmt.Errorf("%w: chordal_seed: %w", ErrInvalidConfig, err)
	}
	if c.Exact.MaxCalls < 0 {
		return fmt.Errorf("%w: exact.max_calls=%d must be >= 0", ErrInvalidConfig, c.Exact.MaxCalls)
	}
	limit, err := c.Exact.Duration()
	if err != nil {
		return fmt.Errorf("%w: exact.time_limit: %v", ErrInvalidConfig, err)
	}
	if limit < 0 {
		return fmt.Errorf("%w: exact.time_limit=%s must be >= 0", ErrInvalidConfig, limit)
	}
	if _, err = zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts c into lasso options; logger may be nil.
// An unparsable time limit (rejected by Validate) is treated as unbounded.
func (c Config) Options(logger *zap.Logger) []lasso.Option {
	limit, _ := c.Exact.Duration()

	return []lasso.Option{
		lasso.WithCliqueFinder(c.CliqueFinder),
		lasso.WithDistanceUpdater(c.DistanceUpdater),
		lasso.WithChordalSeed(c.ChordalSeed),
		lasso.WithEnrich(c.Enrich),
		lasso.WithClosure(c.Closure),
		lasso.WithExactMaxCalls(c.Exact.MaxCalls),
		lasso.WithExactMaxDepth(c.Exact.MaxDepth),
		lasso.WithExactTimeLimit(limit),
		lasso.WithLogger(logger),
	}
}

// NewLogger builds a production (JSON) or development (console) zap logger
// at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
