// Package config loads client settings from TOML with env overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Detail-fetch policies for the status panels. Best-effort drops items whose
// detail fetch failed; all-or-nothing fails the whole batch instead.
const (
	PolicyBestEffort   = "best-effort"
	PolicyAllOrNothing = "all-or-nothing"
)

type Config struct {
	// BaseURL is the backend origin, no trailing slash.
	BaseURL string `toml:"base_url"`
	// StateDir holds the complaint cache and the bearer token.
	StateDir string `toml:"state_dir"`
	// DetailPolicy is one of PolicyBestEffort or PolicyAllOrNothing.
	DetailPolicy string `toml:"detail_policy"`
}

// Load reads the config file at path, falling back to the default locations
// when path is empty. A local .env is applied first so COMPLAINDESK_* vars
// can be kept next to the checkout during development.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:      "http://localhost:8080",
		StateDir:     expandHome("~/.config/complaindesk"),
		DetailPolicy: PolicyBestEffort,
	}

	if path == "" {
		candidates := []string{
			expandHome("~/.config/complaindesk/config.toml"),
			"./config.toml",
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, err
			}
		}
	}

	if v := os.Getenv("COMPLAINDESK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("COMPLAINDESK_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("COMPLAINDESK_DETAIL_POLICY"); v != "" {
		cfg.DetailPolicy = v
	}
	cfg.StateDir = expandHome(cfg.StateDir)

	switch cfg.DetailPolicy {
	case PolicyBestEffort, PolicyAllOrNothing:
	default:
		return nil, fmt.Errorf("config: unknown detail_policy %q", cfg.DetailPolicy)
	}
	return cfg, nil
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
