package domain

import "io"

// Command is a subprocess invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is appended to the process environment in "KEY=VALUE" form.
	Env []string
	// Stdout and Stderr receive the streams in addition to the captured copy. Optional.
	// A stream with its own writer is not forwarded to the stage vertex or the logger.
	Stdout io.Writer
	Stderr io.Writer
}

// CommandResult is the outcome of a subprocess that ran to completion.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the subprocess exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}
