package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesDefaultConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := Init(configFile); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := os.Stat(configFile); err != nil {
		t.Errorf("expected config file to be created: %v", err)
	}

	cfg := Get()
	if cfg.DefaultProfile != "default" {
		t.Errorf("expected default profile name %q, got %q", "default", cfg.DefaultProfile)
	}

	profile, err := cfg.ResolveProfile("")
	if err != nil {
		t.Fatalf("ResolveProfile failed: %v", err)
	}
	if profile.Host != "localhost" || profile.Port != 27017 {
		t.Errorf("unexpected default profile: %+v", profile)
	}
}

func TestInitReadsExistingConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	content := `default_profile: staging
timeout: 10
profiles:
  staging:
    host: mongo.staging.internal
    port: 27018
    username: reader
    database: catalog
    tls: true
`
	if err := os.WriteFile(configFile, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := Init(configFile); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	profile, err := Get().ResolveProfile("")
	if err != nil {
		t.Fatalf("ResolveProfile failed: %v", err)
	}

	if profile.Host != "mongo.staging.internal" {
		t.Errorf("expected host from file, got %q", profile.Host)
	}
	if profile.Port != 27018 {
		t.Errorf("expected port 27018, got %d", profile.Port)
	}
	if !profile.TLS {
		t.Errorf("expected tls enabled")
	}
}

func TestResolveProfileUnknown(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := Init(configFile); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := Get().ResolveProfile("missing"); err == nil {
		t.Errorf("expected error for unknown profile")
	}
}
