package execution

import (
	"context"
	"strings"

	"dotpipe/internal/domain"
)

// Invocation describes one external command.
type Invocation struct {
	Stage   string   // Name used in diagnostics (clean, restore, build, test, ...)
	Program string   // Executable, e.g. dotnet
	Args    []string // Ordered arguments
	Dir     string   // Working directory, empty for the current one
	Capture bool     // Buffer stdout/stderr instead of streaming them
}

// String renders the command line for diagnostics.
func (i Invocation) String() string {
	return strings.TrimSpace(i.Program + " " + strings.Join(i.Args, " "))
}

// Executor runs a single external command to completion.
//
// A non-zero exit is reported through StageResult.ExitCode; the error return
// is reserved for commands that could not be started at all.
type Executor interface {
	Run(ctx context.Context, inv Invocation) (domain.StageResult, error)
}
