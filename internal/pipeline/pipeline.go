// Package pipeline runs the clean, restore and build stages over the resolved solution.
package pipeline

import (
	"context"
	"path"

	"go.uber.org/zap"

	"dotpipe/internal/domain"
	"dotpipe/internal/dotnet"
	"dotpipe/internal/execution"
	"dotpipe/internal/paths"
	"dotpipe/internal/ui"
)

// Options selects the optional stages. Build always runs.
type Options struct {
	Clean   bool
	Restore bool
	Capture bool // Buffer command output and replay it in diagnostics
}

// Pipeline chains clean → restore → build, stopping at the first failure.
type Pipeline struct {
	resolver         *paths.Resolver
	executor         execution.Executor
	commands         *dotnet.Commands
	reporter         *ui.Reporter
	intermediateDirs []string
	ignoreDirs       []string
	remove           func(dir string) error
	log              *zap.Logger
}

// New creates a Pipeline. intermediateDirs are removed when cleaning; ignoreDirs
// are never entered.
func New(
	resolver *paths.Resolver,
	executor execution.Executor,
	commands *dotnet.Commands,
	reporter *ui.Reporter,
	intermediateDirs, ignoreDirs []string,
	log *zap.Logger,
) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		resolver:         resolver,
		executor:         executor,
		commands:         commands,
		reporter:         reporter,
		intermediateDirs: intermediateDirs,
		ignoreDirs:       ignoreDirs,
		remove:           removeDir,
		log:              log,
	}
}

// Run executes the requested stages. The returned error is a
// *domain.ResolutionError when the solution cannot be found, or a
// *domain.StageError naming the first stage that failed.
func (p *Pipeline) Run(ctx context.Context, opts Options) error {
	solution, err := p.resolver.Require(paths.Solution)
	if err != nil {
		return err
	}
	dir := p.resolver.Abs(path.Dir(solution))
	name := path.Base(solution)

	if opts.Clean {
		if err := p.clean(ctx, dir, opts.Capture); err != nil {
			return err
		}
	}

	if opts.Restore {
		if err := p.RunStage(ctx, p.commands.Restore(dir, opts.Capture)); err != nil {
			return err
		}
	}

	if err := p.RunStage(ctx, p.commands.Build(dir, name, opts.Capture)); err != nil {
		return err
	}

	p.reporter.Success("Built %s", solution)
	return nil
}

func (p *Pipeline) clean(ctx context.Context, dir string, capture bool) error {
	dirs, err := findIntermediateDirs(dir, p.intermediateDirs, p.ignoreDirs)
	if err != nil {
		return &domain.StageError{Stage: dotnet.StageClean, ExitCode: domain.ExitFailure, Cause: err}
	}

	p.reporter.Info("Removing %d build output director(ies) below %s", len(dirs), dir)
	bar := ui.NewProgressBar(len(dirs), "Cleaning", !capture && len(dirs) > 0)
	for _, d := range dirs {
		if err := p.remove(d); err != nil {
			bar.Finish()
			return &domain.StageError{Stage: dotnet.StageClean, ExitCode: domain.ExitFailure, Cause: err}
		}
		p.log.Debug("removed directory", zap.String("dir", d))
		bar.Increment()
	}
	bar.Finish()

	return p.RunStage(ctx, p.commands.Clean(dir, capture))
}

// RunStage runs one command and converts a failed exit into a *domain.StageError.
// Captured output is replayed: stdout as information, stderr on failure.
func (p *Pipeline) RunStage(ctx context.Context, inv execution.Invocation) error {
	p.reporter.Info("→ %s", inv.String())

	result, err := p.executor.Run(ctx, inv)
	if err != nil {
		return &domain.StageError{Stage: inv.Stage, ExitCode: domain.ExitFailure, Cause: err}
	}

	if inv.Capture {
		p.reporter.Output(result.Stdout)
	}
	if !result.Success() {
		if inv.Capture {
			p.reporter.FailureBlock(inv.Stage+" failed", result.Stderr)
		}
		return &domain.StageError{Stage: inv.Stage, ExitCode: result.ExitCode}
	}
	return nil
}
