// Package main is the entry point for the regen CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/joho/godotenv"
	"go.trai.ch/regen/cmd/regen/commands"
	"go.trai.ch/regen/internal/app"
	"go.trai.ch/regen/internal/core/domain"
	_ "go.trai.ch/regen/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Populate REGEN_* overrides from a local .env, if present.
	_ = godotenv.Load()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Render the final per-job progress state on exit.
	defer func() { _ = components.Telemetry.Close() }()

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrGenerationFailed) {
			// Per-job failures were already reported by the app.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
