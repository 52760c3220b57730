// Package config loads runtime settings from GLASSOAK_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const appName = "glass-oak"

// Config holds every setting shared by the local game and the SSH host.
type Config struct {
	DataDir     string `env:"GLASSOAK_DATA_DIR"`
	Store       string `env:"GLASSOAK_STORE" envDefault:"file"`
	PostgresDSN string `env:"GLASSOAK_POSTGRES_DSN"`
	Slot        string `env:"GLASSOAK_SLOT" envDefault:"savegame"`
	Seed        int64  `env:"GLASSOAK_SEED" envDefault:"0"`

	LogLevel  string `env:"GLASSOAK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"GLASSOAK_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"GLASSOAK_LOG_FILE"`

	SSHPort    int    `env:"GLASSOAK_SSH_PORT" envDefault:"2222"`
	SSHHostKey string `env:"GLASSOAK_SSH_HOST_KEY" envDefault:"server_host_key"`
}

// Load parses the environment and fills in the paths that default to the
// data directory.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.DataDir = dir
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, appName+".log")
	}
	if cfg.Slot == "" {
		return Config{}, fmt.Errorf("empty save slot")
	}
	return cfg, nil
}

// DefaultDataDir follows the XDG Base Directory spec:
// $XDG_DATA_HOME/glass-oak, defaulting to ~/.local/share/glass-oak.
func DefaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName), nil
}
