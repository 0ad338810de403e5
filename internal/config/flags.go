package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/flagx"
)

// parseFlags overlays cfg with -p, -b, -l, -r, -k and -g from args.
// Other flags are filtered out first so they cannot cause parse errors.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-p", "-b", "-l", "-r", "-k", "-g"})

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.VaultPath, "p", cfg.VaultPath, "vault file path")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (json or sqlite)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	reveal := fs.Int("r", int(cfg.RevealTimeout.Seconds()), "reveal timeout (in seconds)")
	clip := fs.Int("k", int(cfg.ClipboardTimeout.Seconds()), "clipboard timeout (in seconds)")
	fs.IntVar(&cfg.GeneratorLength, "g", cfg.GeneratorLength, "generated password length")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// only explicit flags replace sub-second values from JSON
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "r":
			cfg.RevealTimeout = time.Duration(*reveal) * time.Second
		case "k":
			cfg.ClipboardTimeout = time.Duration(*clip) * time.Second
		}
	})
	return nil
}
