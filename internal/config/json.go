package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/flagx"
	"github.com/dmitrijs2005/gophvault/internal/timex"
)

// jsonConfig is the on-disk shape. Pointer fields tell an omitted key from
// a zero value.
type jsonConfig struct {
	VaultPath        *string         `json:"vault_path"`
	Backend          *string         `json:"backend"`
	LogLevel         *string         `json:"log_level"`
	RevealTimeout    *timex.Duration `json:"reveal_timeout"`
	ClipboardTimeout *timex.Duration `json:"clipboard_timeout"`
	GeneratorLength  *int            `json:"generator_length"`
}

// parseJSON overlays cfg with the file named by -c / -config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.VaultPath != nil {
		cfg.VaultPath = *jc.VaultPath
	}
	if jc.Backend != nil {
		cfg.Backend = *jc.Backend
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.RevealTimeout != nil {
		cfg.RevealTimeout = jc.RevealTimeout.Duration
	}
	if jc.ClipboardTimeout != nil {
		cfg.ClipboardTimeout = jc.ClipboardTimeout.Duration
	}
	if jc.GeneratorLength != nil {
		cfg.GeneratorLength = *jc.GeneratorLength
	}
	return nil
}
