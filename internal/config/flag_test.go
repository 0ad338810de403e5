package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	base := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-p", "/v/vault.db", "-b", "sqlite", "-l", "debug", "-r", "5", "-k", "15", "-g", "20"},
			expected: &Config{
				VaultPath: "/v/vault.db", Backend: "sqlite", LogLevel: "debug",
				RevealTimeout: 5 * time.Second, ClipboardTimeout: 15 * time.Second, GeneratorLength: 20,
			},
		},
		{
			name:     "no flags keeps defaults",
			args:     nil,
			expected: base(),
		},
		{
			name: "unrelated flags ignored",
			args: []string{"-c", "cfg.json", "-x", "1", "-g", "16"},
			expected: func() *Config {
				c := base()
				c.GeneratorLength = 16
				return c
			}(),
		},
		{
			name:    "bad reveal seconds",
			args:    []string{"-r", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseFlags_KeepsSubSecondWithoutFlag(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.RevealTimeout = 1500 * time.Millisecond

	require.NoError(t, parseFlags(cfg, []string{"-g", "16"}))
	assert.Equal(t, 1500*time.Millisecond, cfg.RevealTimeout)
}
