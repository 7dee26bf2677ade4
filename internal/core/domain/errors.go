package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrStagingNotConfigured is returned when no staging base directory is configured.
	ErrStagingNotConfigured = zerr.New("staging directory not configured")

	// ErrCommandFailed is the sentinel wrapped by CommandError.
	ErrCommandFailed = zerr.New("command failed")

	// ErrVariantNotFound is returned when a requested variant is not declared in the manifest.
	ErrVariantNotFound = zerr.New("variant not found")

	// ErrGenerationFailed marks an overall run in which at least one job failed.
	// The CLI maps it to a non-zero exit without re-reporting the per-job errors.
	ErrGenerationFailed = zerr.New("generation failed")
)

// CommandError reports a non-zero exit of an external command. It carries
// enough context for callers to match on which command failed.
type CommandError struct {
	Program  string
	Args     []string
	Dir      string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed in %s with exit code %d",
		strings.Join(append([]string{e.Program}, e.Args...), " "), e.Dir, e.ExitCode)
}

// Unwrap makes CommandError match ErrCommandFailed via errors.Is.
func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}
