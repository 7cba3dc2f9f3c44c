package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/toanvui/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Run(ctx, os.Stderr)
	stop()
	os.Exit(code)
}
