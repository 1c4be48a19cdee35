package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/workhub/hrms-lite/internal/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := commands.New().ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		os.Exit(1)
	}
}
