package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/querylens/querylens/internal/config"
	"github.com/querylens/querylens/internal/database/mongodb"
	"golang.org/x/term"
)

// passwordEnvVar holds the connection password when set; otherwise the
// CLI prompts for it without echo.
const passwordEnvVar = "QUERYLENS_PASSWORD"

// resolveTarget layers the connection flags over the selected profile.
func resolveTarget() (mongodb.Config, error) {
	profile, err := config.Get().ResolveProfile(flagProfile)
	if err != nil {
		return mongodb.Config{}, err
	}

	cfg := mongodb.Config{
		Host:         profile.Host,
		Port:         profile.Port,
		Username:     profile.Username,
		DatabaseName: profile.Database,
		SSL:          profile.TLS,
		SSLMode:      profile.TLSMode,
		SSLCert:      profile.TLSCert,
		SSLKey:       profile.TLSKey,
		SSLRootCert:  profile.TLSRootCert,
	}

	if flagHost != "" {
		cfg.Host = flagHost
	}
	if flagPort != 0 {
		cfg.Port = flagPort
	}
	if flagUsername != "" {
		cfg.Username = flagUsername
	}
	if flagDatabase != "" {
		cfg.DatabaseName = flagDatabase
	}
	if flagTLS {
		cfg.SSL = true
	}

	password, err := resolvePassword()
	if err != nil {
		return mongodb.Config{}, err
	}
	cfg.Password = password

	return cfg, nil
}

func resolvePassword() (string, error) {
	if password := os.Getenv(passwordEnvVar); password != "" {
		return password, nil
	}

	fmt.Print("Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(bytePassword)), nil
}

func connectDatabase() (*mongodb.Connection, error) {
	cfg, err := resolveTarget()
	if err != nil {
		return nil, err
	}
	return mongodb.Connect(cfg)
}

func connectInstance() (*mongodb.InstanceConnection, error) {
	cfg, err := resolveTarget()
	if err != nil {
		return nil, err
	}
	return mongodb.ConnectInstance(mongodb.InstanceConfig{
		Host:                  cfg.Host,
		Port:                  cfg.Port,
		Username:              cfg.Username,
		Password:              cfg.Password,
		DatabaseName:          cfg.DatabaseName,
		SSL:                   cfg.SSL,
		SSLMode:               cfg.SSLMode,
		SSLCert:               cfg.SSLCert,
		SSLKey:                cfg.SSLKey,
		SSLRootCert:           cfg.SSLRootCert,
		SSLRejectUnauthorized: cfg.SSLRejectUnauthorized,
	})
}

// opTimeout returns the per-operation timeout from the config file.
func opTimeout() time.Duration {
	timeout := config.Get().Timeout
	if timeout <= 0 {
		timeout = 30
	}
	return time.Duration(timeout) * time.Second
}
