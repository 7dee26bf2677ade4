package ports

import (
	"context"

	"go.trai.ch/regen/internal/core/domain"
)

// Invoker runs external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	// Run executes cmd in its working directory and blocks until the process
	// exits. A non-zero exit is returned as a *domain.CommandError carrying
	// the command, working directory, and exit code. The invoker performs no
	// retries.
	Run(ctx context.Context, cmd domain.Command) error
}
