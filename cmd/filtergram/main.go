package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/filtergram/filtergram/config"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM)
	code := config.Do(os.Args[1:]).Run(ctx)
	stop()
	os.Exit(code)
}
