package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "almanac.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
latitude = 34.05
longitude = -118.24
refresh = "5m"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Observer.Latitude != 34.05 || cfg.Observer.Longitude != -118.24 {
		t.Errorf("observer = %+v", cfg.Observer)
	}
	// elevation_m and log_level were absent, so the defaults survive.
	def := Default()
	if cfg.Observer.Height != def.Observer.Height {
		t.Errorf("height = %v, want default %v", cfg.Observer.Height, def.Observer.Height)
	}
	if cfg.LogLevel != def.LogLevel {
		t.Errorf("log level = %q, want default %q", cfg.LogLevel, def.LogLevel)
	}
	if cfg.Refresh != 5*time.Minute {
		t.Errorf("refresh = %v, want 5m", cfg.Refresh)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"latitude out of range", "latitude = 95.0\n"},
		{"longitude out of range", "longitude = -200.0\n"},
		{"unparseable refresh", `refresh = "soon"` + "\n"},
		{"malformed toml", "latitude = = 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); err == nil {
				t.Errorf("Load accepted %q", tc.body)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestValidateDefault(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
