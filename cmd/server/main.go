// Command server runs the HTTP API server.
//
// Configuration is read from CONFIG_PATH (fallback ./config.yaml) and
// environment variables. Requires DATABASE_DSN and AUTH_JWT_SECRET.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/osanchez/ideahub-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
