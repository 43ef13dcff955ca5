// Command tojos manages named records in a synchronized store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/tojos/internal/cli"
)

func main() {
	// Interrupts cancel any wait for the store permit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
