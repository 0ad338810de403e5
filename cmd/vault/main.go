package main

import (
	"context"
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"github.com/dmitrijs2005/gophvault/internal/buildinfo"
	"github.com/dmitrijs2005/gophvault/internal/cli"
	"github.com/dmitrijs2005/gophvault/internal/config"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

func main() {
	// wipe guarded buffers on Ctrl-C and on every exit path
	memguard.CatchInterrupt()
	defer memguard.Purge()

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		memguard.SafeExit(2)
	}

	log := logging.New(os.Stderr, cfg.LogLevel)
	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		memguard.SafeExit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "shutdown failed", "error", err)
		memguard.SafeExit(1)
	}
}
