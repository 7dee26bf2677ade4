// Package shell provides the external command invoker adapter.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/regen/internal/core/domain"
	"go.trai.ch/regen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Invoker = (*Invoker)(nil)

// Invoker implements ports.Invoker using os/exec. It runs one command at a
// time, blocks until the child exits, and enforces no timeout of its own.
type Invoker struct {
	logger ports.Logger
}

// NewInvoker creates a new Invoker.
func NewInvoker(logger ports.Logger) *Invoker {
	return &Invoker{logger: logger}
}

// Run executes cmd in its declared working directory. The child inherits the
// process environment extended only by the entries the command declares. A
// non-zero exit is returned as *domain.CommandError so callers can match on
// which command failed.
func (i *Invoker) Run(ctx context.Context, cmd domain.Command) error {
	c := exec.CommandContext(ctx, cmd.Program, cmd.Args...) //nolint:gosec // Command comes from the job manifest

	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}

	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	c.Stdout = &logWriter{logger: i.logger, level: "info"}
	c.Stderr = &logWriter{logger: i.logger, level: "error"}

	if err := c.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &domain.CommandError{
				Program:  cmd.Program,
				Args:     cmd.Args,
				Dir:      cmd.Dir,
				ExitCode: exitErr.ExitCode(),
			}
		}
		return zerr.With(zerr.Wrap(err, "failed to start command"), "program", cmd.Program)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := string(p)

	lines := strings.Split(strings.TrimSuffix(msg, "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
