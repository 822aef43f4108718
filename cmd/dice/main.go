package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/dicesim/internal/cli"
)

func main() {
	settings, err := cli.ParseSettings(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		cli.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, settings, os.Stdout, os.Stderr); err != nil {
		stop()
		cli.Exitf("Error: %v", err)
	}
}
