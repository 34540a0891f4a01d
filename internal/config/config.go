// SPDX-License-Identifier: MIT

// Package config loads the runtime settings of the csrdemo command from the
// environment, optionally seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Mezgou/lin-alg-lib/sparse"
)

// Environment variables read by Load.
const (
	EnvLogLevel    = "LINALG_LOG_LEVEL"
	EnvDetStrategy = "LINALG_DET_STRATEGY"
	EnvWorkers     = "LINALG_WORKERS"
	EnvSelfCheck   = "LINALG_SELFCHECK"
)

// envSearchDepth is how many directories Load inspects for a .env file,
// starting at the working directory.
const envSearchDepth = 5

// ErrInvalidConfig is returned when a setting cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the resolved settings.
type Config struct {
	LogLevel    LogLevel
	DetStrategy sparse.DetStrategy
	Workers     int
	SelfCheck   bool
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		LogLevel:    LogLevelWarn,
		DetStrategy: sparse.DefaultDetStrategy,
		Workers:     sparse.DefaultWorkers,
		SelfCheck:   false,
	}
}

// Load reads the environment into a Config. When envFile is non-empty that
// file must exist and is loaded first; otherwise the nearest .env in the
// working directory or its parents is used if present. Variables already set
// in the process environment take precedence over file entries.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	} else if dir, err := os.Getwd(); err == nil {
		if path, ok := findEnvFile(dir); ok {
			if err = godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", path, err)
			}
		}
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		lvl, err := ParseLogLevel(v)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup(EnvDetStrategy); ok && v != "" {
		s, err := sparse.ParseDetStrategy(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvDetStrategy, v)
		}
		cfg.DetStrategy = s
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvWorkers, v)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvSelfCheck); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSelfCheck, v)
		}
		cfg.SelfCheck = b
	}

	return cfg, nil
}

// MatrixOptions translates the settings into engine options.
func (c *Config) MatrixOptions(logger *zap.Logger) []sparse.Option {
	opts := []sparse.Option{
		sparse.WithDeterminantStrategy(c.DetStrategy),
		sparse.WithWorkers(c.Workers),
	}
	if logger != nil {
		opts = append(opts, sparse.WithLogger(logger))
	}

	return opts
}

// findEnvFile looks for .env in dir and up to envSearchDepth-1 parents.
func findEnvFile(dir string) (string, bool) {
	for i := 0; i < envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if st, err := os.Stat(envPath); err == nil && !st.IsDir() {
			return envPath, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}
