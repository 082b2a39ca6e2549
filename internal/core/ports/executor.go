package ports

import (
	"context"
	"io"
)

// Command is an invocation of an external program.
type Command struct {
	// Args holds the program name followed by its arguments.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env holds KEY=VALUE overrides applied over the process environment.
	Env []string
}

// Executor runs external programs.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// LookPath resolves a program name to an executable path.
	LookPath(name string) (string, error)

	// Run executes cmd, copying its output streams to stdout and stderr.
	Run(ctx context.Context, cmd Command, stdout, stderr io.Writer) error
}
