// Package main implements the check-mypy pre-push hook.
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
	cmd := cli.NewMypyCommand(nil)
	cmd.Use = "check-mypy"
	code := cli.Execute(ctx, cmd)
	stop()
	os.Exit(code)
}
