/*
Copyright © 2026 Crewflow Authors
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"Crewflow/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
