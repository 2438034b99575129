package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// LoadConfig reads NEOLT_* environment variables, applying defaults, and
// expands a leading "~" in the configuration directory.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	dir, err := ExpandHome(cfg.Dir)
	if err != nil {
		return Config{}, err
	}
	cfg.Dir = dir

	if cfg.Shell == "" {
		cfg.Shell = DefaultShell()
	}
	return cfg, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// DefaultShell is the platform command interpreter.
func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd"
	}
	return "sh"
}

// Usage prints the recognized environment variables.
func Usage() error {
	var cfg Config
	return envconfig.Usage("", &cfg)
}
