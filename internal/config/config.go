package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/logging"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DirName is the per-user directory that holds the vault by default.
const DirName = ".gophvault"

const (
	minGeneratorLength = 4
	maxGeneratorLength = 256
)

// Config holds runtime settings for the vault command.
type Config struct {
	VaultPath        string
	Backend          string
	LogLevel         string
	RevealTimeout    time.Duration
	ClipboardTimeout time.Duration
	GeneratorLength  int
}

// LoadDefaults populates c with defaults. VaultPath stays empty and is
// resolved from the backend once all sources are applied.
func (c *Config) LoadDefaults() {
	c.VaultPath = ""
	c.Backend = BackendJSON
	c.LogLevel = "info"
	c.RevealTimeout = 10 * time.Second
	c.ClipboardTimeout = 30 * time.Second
	c.GeneratorLength = 12
}

// Load builds a Config from defaults, then the JSON file named by -c/-config
// in args (if any), then the flags in args. The result is validated.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if cfg.VaultPath == "" {
		p, err := DefaultVaultPath(cfg.Backend)
		if err != nil {
			return nil, err
		}
		cfg.VaultPath = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultVaultPath returns the per-user vault location for backend.
func DefaultVaultPath(backend string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	name := "vault.json"
	if backend == BackendSQLite {
		name = "vault.db"
	}
	return filepath.Join(home, DirName, name), nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.VaultPath == "" {
		errs = append(errs, errors.New("vault path is empty"))
	}
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendJSON, BackendSQLite))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.RevealTimeout <= 0 {
		errs = append(errs, fmt.Errorf("reveal timeout must be positive, got %s", c.RevealTimeout))
	}
	if c.ClipboardTimeout <= 0 {
		errs = append(errs, fmt.Errorf("clipboard timeout must be positive, got %s", c.ClipboardTimeout))
	}
	if c.GeneratorLength < minGeneratorLength || c.GeneratorLength > maxGeneratorLength {
		errs = append(errs, fmt.Errorf("generator length must be between %d and %d, got %d",
			minGeneratorLength, maxGeneratorLength, c.GeneratorLength))
	}

	return errors.Join(errs...)
}
