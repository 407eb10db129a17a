// Package main provides the entrypoint for the listcord CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/listcord/listcord-go/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.New().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
