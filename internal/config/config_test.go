package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, c.VaultPath)
	assert.Equal(t, BackendJSON, c.Backend)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 10*time.Second, c.RevealTimeout)
	assert.Equal(t, 30*time.Second, c.ClipboardTimeout)
	assert.Equal(t, 12, c.GeneratorLength)
}

func TestLoad_DefaultPathFollowsBackend(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DirName, "vault.json"), cfg.VaultPath)

	cfg, err = Load([]string{"-b", "sqlite"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DirName, "vault.db"), cfg.VaultPath)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		c.VaultPath = "/tmp/vault.json"
		return c
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantMsg string
	}{
		{"empty path", func(c *Config) { c.VaultPath = "" }, "vault path is empty"},
		{"backend", func(c *Config) { c.Backend = "postgres" }, `unknown backend "postgres"`},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, `unknown log level "loud"`},
		{"reveal", func(c *Config) { c.RevealTimeout = 0 }, "reveal timeout must be positive"},
		{"clipboard", func(c *Config) { c.ClipboardTimeout = -time.Second }, "clipboard timeout must be positive"},
		{"generator short", func(c *Config) { c.GeneratorLength = 3 }, "generator length must be between 4 and 256"},
		{"generator long", func(c *Config) { c.GeneratorLength = 1000 }, "generator length must be between 4 and 256"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	c := &Config{}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault path is empty")
	assert.Contains(t, err.Error(), "unknown backend")
	assert.Contains(t, err.Error(), "reveal timeout")
}
