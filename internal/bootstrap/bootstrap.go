// Package bootstrap holds the startup shared by the command line entry
// points: flags with environment defaults, config loading and the optional
// metrics endpoint.
package bootstrap

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"chosenoffset.com/outbreak/internal/simulation"
	"chosenoffset.com/outbreak/internal/telemetry"
)

// Environment variables that supply flag defaults.
const (
	EnvConfig      = "OUTBREAK_CONFIG"
	EnvMetricsAddr = "OUTBREAK_METRICS_ADDR"
	EnvAssets      = "OUTBREAK_ASSETS"
)

// Settings are the resolved startup options.
type Settings struct {
	ConfigPath  string
	MetricsAddr string
	AssetsDir   string
	Seed        int64
}

// LoadEnv loads variables from a .env file in the working directory.
// A missing file is not an error.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// ParseFlags parses args into Settings. Flags default to the environment
// variables above, then to built-in values.
func ParseFlags(name string, args []string) (*Settings, error) {
	s := &Settings{}
	fsFlags := flag.NewFlagSet(name, flag.ContinueOnError)
	fsFlags.StringVar(&s.ConfigPath, "config", envOr(EnvConfig, "data/outbreak.yaml"), "simulation config file (YAML or JSON)")
	fsFlags.StringVar(&s.MetricsAddr, "metrics-addr", envOr(EnvMetricsAddr, ""), "serve Prometheus metrics on this address")
	fsFlags.StringVar(&s.AssetsDir, "assets", envOr(EnvAssets, "assets"), "directory holding sprites, sounds and fonts")
	fsFlags.Int64Var(&s.Seed, "seed", 0, "world seed; 0 uses the config seed or the clock")
	if err := fsFlags.Parse(args); err != nil {
		return nil, err
	}
	return s, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig loads the simulation config and applies the seed flag.
func (s *Settings) LoadConfig() (*simulation.Config, error) {
	cfg, err := simulation.LoadConfig(s.ConfigPath)
	if err != nil {
		return nil, err
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	log.Printf("Loaded config %s (seed %d)", s.ConfigPath, cfg.Seed)
	return cfg, nil
}

// StartMetrics creates the metrics collectors and, when an address is set,
// serves them until ctx is cancelled. It returns nil when metrics are off.
func (s *Settings) StartMetrics(ctx context.Context) *telemetry.Metrics {
	if s.MetricsAddr == "" {
		return nil
	}
	m := telemetry.NewMetrics()
	go func() {
		if err := m.Serve(ctx, s.MetricsAddr); err != nil {
			log.Printf("Metrics disabled: %v", err)
		}
	}()
	return m
}
