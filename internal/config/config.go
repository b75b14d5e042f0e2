package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration, loaded from a YAML file. Connection
// details live in named profiles; flags override whatever the selected
// profile provides.
type Config struct {
	DefaultProfile string             `yaml:"default_profile"`
	Timeout        int                `yaml:"timeout"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

// Profile is one named connection target.
type Profile struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	Username    string `yaml:"username"`
	Database    string `yaml:"database"`
	TLS         bool   `yaml:"tls"`
	TLSMode     string `yaml:"tls_mode,omitempty"`
	TLSCert     string `yaml:"tls_cert,omitempty"`
	TLSKey      string `yaml:"tls_key,omitempty"`
	TLSRootCert string `yaml:"tls_root_cert,omitempty"`
}

var globalConfig *Config

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return os.ExpandEnv("$HOME/.querylens/config.yaml")
}

func defaults() *Config {
	return &Config{
		DefaultProfile: "default",
		Timeout:        30,
		Profiles: map[string]Profile{
			"default": {
				Host:     "localhost",
				Port:     27017,
				Database: "test",
			},
		},
	}
}

// Init initializes the configuration from the specified file, creating a
// default file on first run.
func Init(configFile string) error {
	globalConfig = defaults()

	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, globalConfig); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		data, err := yaml.Marshal(globalConfig)
		if err != nil {
			return fmt.Errorf("failed to marshal default config: %w", err)
		}

		if err := os.WriteFile(configFile, data, 0o600); err != nil {
			return fmt.Errorf("failed to write default config file: %w", err)
		}
	}

	return nil
}

// Get returns the global configuration.
func Get() *Config {
	return globalConfig
}

// ResolveProfile returns the named profile, falling back to the default
// profile when name is empty.
func (c *Config) ResolveProfile(name string) (Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	profile, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q not found in config", name)
	}
	return profile, nil
}
