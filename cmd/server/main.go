// Command server runs the interview preparation backend: the HTTP API,
// the spaced-repetition progress engine, and the session question
// generator behind it.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/prepstack/interview-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
