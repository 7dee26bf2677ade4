package domain

import "runtime"

// Platform reports host characteristics that influence how commands are
// constructed. It changes only the command prefix, never job semantics.
type Platform interface {
	// IsWindows reports whether the host needs the Windows command wrapper.
	IsWindows() bool
}

// HostPlatform implements Platform for the current process.
type HostPlatform struct{}

func (HostPlatform) IsWindows() bool {
	return runtime.GOOS == "windows"
}

// NewToolCommand builds the invocation for a project-local wrapper script
// (e.g. a gradlew-style launcher) in dir. On Windows-like hosts the script is
// run through cmd with a .bat suffix; elsewhere it is executed directly.
func NewToolCommand(p Platform, tool, dir string, args ...string) Command {
	if p.IsWindows() {
		return Command{
			Program: "cmd",
			Args:    append([]string{"/c", tool + ".bat"}, args...),
			Dir:     dir,
		}
	}
	return Command{
		Program: "./" + tool,
		Args:    args,
		Dir:     dir,
	}
}
