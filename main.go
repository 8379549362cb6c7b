package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"jtools/cli"
)

func main() {
	// Step 1: Pick up JTOOLS_* settings from a local .env, if there is one
	_ = godotenv.Load()

	// Step 2: Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Step 3: Register signal handlers (Ctrl+C, SIGTERM)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\n⚠️  Interrupt received, stopping after the current tool exits...")
		cancel()
	}()

	// Step 4: Run the command
	code := cli.Execute(ctx)
	cancel()
	os.Exit(code)
}
