// Package config loads the observer site configuration from a TOML file and
// overlays it on defaults.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Config holds the observing site and runtime settings.
type Config struct {
	Observer astro.Observer
	Refresh  time.Duration
	LogLevel string
}

// Default returns the built-in configuration: the Greenwich meridian at sea
// level with a one-minute refresh.
func Default() Config {
	return Config{
		Observer: astro.Observer{Latitude: 51.4769, Longitude: 0.0, Height: 46},
		Refresh:  time.Minute,
		LogLevel: "info",
	}
}

// fileConfig is the TOML key mapping for the site config file.
type fileConfig struct {
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Elevation float64 `toml:"elevation_m"`
	Refresh   string  `toml:"refresh"`
	LogLevel  string  `toml:"log_level"`
}

// Load reads a TOML site config and overlays it on the defaults. Keys absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load site config: %w", err)
	}

	if meta.IsDefined("latitude") {
		cfg.Observer.Latitude = raw.Latitude
	}
	if meta.IsDefined("longitude") {
		cfg.Observer.Longitude = raw.Longitude
	}
	if meta.IsDefined("elevation_m") {
		cfg.Observer.Height = raw.Elevation
	}
	if meta.IsDefined("refresh") {
		d, err := time.ParseDuration(raw.Refresh)
		if err != nil {
			return Config{}, fmt.Errorf("load site config: refresh: %w", err)
		}
		cfg.Refresh = d
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = raw.LogLevel
	}

	return cfg, cfg.Validate()
}

// Validate checks the ranges of the site parameters.
func (c Config) Validate() error {
	if c.Observer.Latitude < -90 || c.Observer.Latitude > 90 {
		return fmt.Errorf("site config: latitude %v out of range [-90, 90]", c.Observer.Latitude)
	}
	if c.Observer.Longitude < -180 || c.Observer.Longitude > 180 {
		return fmt.Errorf("site config: longitude %v out of range [-180, 180]", c.Observer.Longitude)
	}
	if c.Refresh <= 0 {
		return fmt.Errorf("site config: refresh must be positive")
	}
	return nil
}
