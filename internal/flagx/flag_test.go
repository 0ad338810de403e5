package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-p", "vault.json", "-l", "debug"},
			allowed: []string{"-p"},
			want:    []string{"-p", "vault.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-b=sqlite", "-p", "vault.db"},
			allowed: []string{"-b"},
			want:    []string{"-b=sqlite"},
		},
		{
			name:    "order preserved",
			args:    []string{"-r", "5", "-c", "cfg.json", "-p=x.json"},
			allowed: []string{"-p", "-r"},
			want:    []string{"-r", "5", "-p=x.json"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-p"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-p"},
			allowed: []string{"-p"},
			want:    []string{"-p"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-p", "-l", "debug"},
			allowed: []string{"-p", "-l"},
			want:    []string{"-p", "-l", "debug"},
		},
		{
			name:    "equals value may start with dash",
			args:    []string{"-p=-odd.json"},
			allowed: []string{"-p"},
			want:    []string{"-p=-odd.json"},
		},
		{
			name:    "stops at double dash",
			args:    []string{"-p", "a.json", "--", "-p", "b.json"},
			allowed: []string{"-p"},
			want:    []string{"-p", "a.json"},
		},
		{
			name:    "repeated flag kept",
			args:    []string{"-g", "16", "-g", "20"},
			allowed: []string{"-g"},
			want:    []string{"-g", "16", "-g", "20"},
		},
		{
			name:    "empty",
			args:    []string{},
			allowed: []string{"-p"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/vault.json"}, "/etc/vault.json"},
		{"long", []string{"-config", "/etc/vault.json"}, "/etc/vault.json"},
		{"equals", []string{"-config=/etc/vault.json"}, "/etc/vault.json"},
		{"mixed with other flags", []string{"-p", "x.json", "-c", "cfg.json", "-l", "debug"}, "cfg.json"},
		{"last wins", []string{"-c", "/a.json", "-config", "/b.json"}, "/b.json"},
		{"absent", []string{"-p", "x.json"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigPath(tt.args))
		})
	}
}
