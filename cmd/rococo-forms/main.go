package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidForm):
		os.Exit(1)
	default:
		os.Exit(2)
	}
}
