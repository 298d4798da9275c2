// Package main implements the push-hooks CLI application.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/push-hooks/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, cli.NewRootCommand(nil))
	stop()
	os.Exit(code)
}
