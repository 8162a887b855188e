// Package config reads calcpad settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"calcpad/internal/theme"
)

// Config holds process settings shared by the server and the terminal UI.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// Variant is the widget served at "/".
	Variant theme.Variant
	// Title is shown above the display.
	Title string
	// Telemetry enables the OTLP trace, metric and log exporters.
	Telemetry bool
	// LogFile receives logs from the terminal UI; empty discards them.
	LogFile string
}

func Default() Config {
	return Config{
		Addr:      ":8080",
		Variant:   theme.VariantDark,
		Title:     "calcpad",
		Telemetry: true,
	}
}

// Load reads CALCPAD_* variables on top of Default.
func Load() (Config, error) {
	cfg := Default()

	if v := os.Getenv("CALCPAD_ADDR"); v != "" {
		cfg.Addr = v
	}

	if v := os.Getenv("CALCPAD_VARIANT"); v != "" {
		variant, err := theme.ParseVariant(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALCPAD_VARIANT: %w", err)
		}
		cfg.Variant = variant
	}

	if v := os.Getenv("CALCPAD_TITLE"); v != "" {
		cfg.Title = v
	}

	if v := os.Getenv("CALCPAD_TELEMETRY"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALCPAD_TELEMETRY: %w", err)
		}
		cfg.Telemetry = enabled
	}

	cfg.LogFile = os.Getenv("CALCPAD_LOG_FILE")

	return cfg, nil
}
