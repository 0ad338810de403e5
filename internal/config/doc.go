// Package config loads runtime configuration for the vault command.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-p string   vault file path (default ~/.gophvault/vault.json, vault.db for sqlite)
//	-b string   storage backend: json or sqlite
//	-l string   log level: debug, info, warn, error
//	-r int      seconds a revealed secret stays visible
//	-k int      seconds before a copied secret is cleared from the clipboard
//	-g int      length of generated passwords
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "10s" or
// integer nanoseconds. Omitted keys keep their previous value:
//
//	{
//	  "vault_path": "/home/alice/.gophvault/vault.json",
//	  "backend": "json",
//	  "log_level": "info",
//	  "reveal_timeout": "10s",
//	  "clipboard_timeout": "30s",
//	  "generator_length": 12
//	}
package config
