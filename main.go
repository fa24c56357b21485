// Package main is the entry point for the winutilz command-line tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Norgate-AV/winutilz/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Run(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
