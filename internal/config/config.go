// Package config builds the immutable process configuration from
// environment variables. It is read once at startup and passed into
// every component; nothing reads the environment after that.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"

	"trackmirror/internal/batch"
	"trackmirror/internal/match"
)

// Environment variable names.
const (
	EnvClientID          = "SPOTIFY_CLIENT_ID"
	EnvClientSecret      = "SPOTIFY_CLIENT_SECRET"
	EnvMaxResults        = "TRACKMIRROR_MAX_RESULTS"
	EnvDurationTolerance = "TRACKMIRROR_DURATION_TOLERANCE"
	EnvTitleThreshold    = "TRACKMIRROR_TITLE_THRESHOLD"
	EnvArtistThreshold   = "TRACKMIRROR_ARTIST_THRESHOLD"
	EnvOutputDir         = "TRACKMIRROR_OUTPUT_DIR"
	EnvWorkers           = "TRACKMIRROR_WORKERS"
)

// ErrMissingCredentials is returned when SPOTIFY_CLIENT_ID or
// SPOTIFY_CLIENT_SECRET is not set.
var ErrMissingCredentials = errors.New("missing SPOTIFY_CLIENT_ID or SPOTIFY_CLIENT_SECRET environment variable")

// Config is the complete, validated process configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	Match        match.Config
	OutputDir    string
	Workers      int
}

// Load reads and validates the configuration from the environment.
// Any missing credential or invalid tunable is fatal here, before a
// single track is processed.
func Load() (*Config, error) {
	cfg := &Config{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		Match:        match.DefaultConfig(),
		Workers:      batch.DefaultWorkers,
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	var err error
	if cfg.Match.MaxResults, err = intEnv(EnvMaxResults, cfg.Match.MaxResults); err != nil {
		return nil, err
	}
	if cfg.Match.DurationTolerance, err = intEnv(EnvDurationTolerance, cfg.Match.DurationTolerance); err != nil {
		return nil, err
	}
	if cfg.Match.TitleSimilarityThreshold, err = floatEnv(EnvTitleThreshold, cfg.Match.TitleSimilarityThreshold); err != nil {
		return nil, err
	}
	if cfg.Match.ArtistSimilarityThreshold, err = floatEnv(EnvArtistThreshold, cfg.Match.ArtistSimilarityThreshold); err != nil {
		return nil, err
	}
	if cfg.Workers, err = intEnv(EnvWorkers, cfg.Workers); err != nil {
		return nil, err
	}

	cfg.OutputDir = os.Getenv(EnvOutputDir)
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate enforces the value ranges documented on match.Config.
func (c *Config) validate() error {
	if c.Match.MaxResults <= 0 {
		return fmt.Errorf("%s must be positive, got %d", EnvMaxResults, c.Match.MaxResults)
	}
	if c.Match.DurationTolerance < 0 {
		return fmt.Errorf("%s must not be negative, got %d", EnvDurationTolerance, c.Match.DurationTolerance)
	}
	if t := c.Match.TitleSimilarityThreshold; t < 0 || t > 1 {
		return fmt.Errorf("%s must be in [0,1], got %v", EnvTitleThreshold, t)
	}
	if t := c.Match.ArtistSimilarityThreshold; t < 0 || t > 1 {
		return fmt.Errorf("%s must be in [0,1], got %v", EnvArtistThreshold, t)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%s must be positive, got %d", EnvWorkers, c.Workers)
	}
	return nil
}

// defaultOutputDir returns a dated folder under the user's download
// directory, e.g. ~/Downloads/trackmirror_24-08.
func defaultOutputDir() string {
	base := xdg.UserDirs.Download
	if base == "" {
		base = "."
	}
	return filepath.Join(base, "trackmirror_"+time.Now().Format("02-01"))
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return v, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return v, nil
}
