package app

import (
	"fmt"

	"github.com/brightfield-health/wellwatch/internal/config"
	"github.com/brightfield-health/wellwatch/internal/insight"
	"github.com/brightfield-health/wellwatch/internal/output"
	"github.com/brightfield-health/wellwatch/internal/store"
)

// applyOutputFlags applies the persistent output flags before rendering.
func applyOutputFlags() {
	if flagNoColor || flagJSON {
		output.SetNoColor(true)
	}
}

// loadConfig loads the config file named by --config (or the default path)
// and honors output preferences from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if !cfg.Output.Color {
		output.SetNoColor(true)
	}
	return cfg, nil
}

// openStore opens the SQLite database at its default location.
func openStore() (*store.DB, error) {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// engineOptions translates config values into engine options.
func engineOptions(cfg *config.Config) insight.Options {
	return insight.Options{
		ExperienceVariant:   insight.ExperienceVariant(cfg.ExperienceVariant),
		ReadinessLevel:      insight.ReadinessLevel(cfg.ReadinessLevel),
		ComBBarrier:         insight.Barrier(cfg.ComBBarrier),
		ShowGlucoseAdvanced: cfg.ShowGlucoseAdvanced,
	}
}
