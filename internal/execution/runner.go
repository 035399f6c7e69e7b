package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"dotpipe/internal/domain"
)

// Runner executes commands with os/exec, one at a time.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

// NewRunner creates a Runner that streams uncaptured output to the terminal.
func NewRunner(log *zap.Logger) *Runner {
	return NewRunnerWithWriters(os.Stdout, os.Stderr, log)
}

// NewRunnerWithWriters creates a Runner that streams uncaptured output to the given writers.
func NewRunnerWithWriters(stdout, stderr io.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{stdout: stdout, stderr: stderr, log: log}
}

// Run executes inv and waits for it to exit. There is no timeout: a hung
// process blocks until ctx is cancelled.
func (r *Runner) Run(ctx context.Context, inv Invocation) (domain.StageResult, error) {
	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdin = os.Stdin

	var stdout, stderr bytes.Buffer
	if inv.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr
	}

	r.log.Debug("running command",
		zap.String("stage", inv.Stage),
		zap.String("command", inv.String()),
		zap.String("dir", inv.Dir),
		zap.Bool("capture", inv.Capture))

	start := time.Now()
	err := cmd.Run()
	result := domain.StageResult{
		Stage:    inv.Stage,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf("start %s: %w", inv.Program, err)
		}
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode <= 0 {
			// Killed by a signal.
			result.ExitCode = domain.ExitFailure
		}
	}

	r.log.Debug("command finished",
		zap.String("stage", inv.Stage),
		zap.Int("exit_code", result.ExitCode),
		zap.Duration("duration", result.Duration))
	return result, nil
}
