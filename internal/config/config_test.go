package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected default base url %q", cfg.BaseURL)
	}
	if cfg.DetailPolicy != PolicyBestEffort {
		t.Fatalf("unexpected default policy %q", cfg.DetailPolicy)
	}
}

func TestFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "base_url = \"http://backend:9090\"\ndetail_policy = \"all-or-nothing\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://backend:9090" || cfg.DetailPolicy != PolicyAllOrNothing {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	t.Setenv("COMPLAINDESK_BASE_URL", "http://env:8081")
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://env:8081" {
		t.Fatalf("env override not applied: %+v", cfg)
	}
}

func TestUnknownPolicyRejected(t *testing.T) {
	t.Setenv("COMPLAINDESK_DETAIL_POLICY", "sometimes")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
