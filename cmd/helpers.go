package cmd

import (
	"fmt"

	"github.com/ziadkadry99/livenav/internal/config"
	"github.com/ziadkadry99/livenav/internal/htmlnav"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `livenav init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// highlightOptions maps the configured class and selector onto htmlnav options.
func highlightOptions(cfg *config.Config) htmlnav.Options {
	return htmlnav.Options{Class: cfg.LiveClass, Selector: cfg.NavSelector}
}
