// Package orchestrator builds the solution and runs its tests, either one
// subprocess per discovered test project or one subprocess for the solution.
package orchestrator

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dotpipe/internal/discovery"
	"dotpipe/internal/domain"
	"dotpipe/internal/dotnet"
	"dotpipe/internal/execution"
	"dotpipe/internal/parser"
	"dotpipe/internal/paths"
	"dotpipe/internal/pipeline"
	"dotpipe/internal/storage"
	"dotpipe/internal/testrun"
	"dotpipe/internal/ui"
)

// Orchestrator runs the build pipeline followed by the tests.
type Orchestrator struct {
	resolver *paths.Resolver
	pipeline *pipeline.Pipeline
	scanner  *discovery.Scanner
	filter   *discovery.Filter
	executor execution.Executor
	commands *dotnet.Commands
	parser   *parser.TestOutputParser
	storage  storage.Storage
	reporter *ui.Reporter
	log      *zap.Logger
}

// New creates an Orchestrator. st may be nil to skip persisting runs.
func New(
	resolver *paths.Resolver,
	pl *pipeline.Pipeline,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor execution.Executor,
	commands *dotnet.Commands,
	outputParser *parser.TestOutputParser,
	st storage.Storage,
	reporter *ui.Reporter,
	log *zap.Logger,
) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		resolver: resolver,
		pipeline: pl,
		scanner:  scanner,
		filter:   filter,
		executor: executor,
		commands: commands,
		parser:   outputParser,
		storage:  st,
		reporter: reporter,
		log:      log,
	}
}

// prepare resolves the solution and, unless skipped, runs clean → restore → build.
// It returns the absolute solution directory and the solution file name.
func (o *Orchestrator) prepare(ctx context.Context, opts testrun.Options) (string, string, error) {
	solution, err := o.resolver.Require(paths.Solution)
	if err != nil {
		return "", "", err
	}

	if !opts.SkipClean {
		err := o.pipeline.Run(ctx, pipeline.Options{Clean: true, Restore: true, Capture: opts.CIMode})
		if err != nil {
			return "", "", err
		}
	}

	return o.resolver.Abs(path.Dir(solution)), path.Base(solution), nil
}

// RunByProject runs the test command once per discovered test project, in
// discovery order. A failing project does not stop the others; once all have
// run, any failures are reported and returned as *domain.TestFailuresError.
func (o *Orchestrator) RunByProject(ctx context.Context, opts testrun.Options) (*domain.AggregateOutcome, error) {
	dir, solution, err := o.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	projects, err := o.scanner.Scan(dir)
	if err != nil {
		return nil, fmt.Errorf("discover test projects: %w", err)
	}
	projects = o.filter.FilterByName(projects, opts.Only)
	if len(projects) == 0 {
		return nil, &domain.NoProjectsError{Root: dir, Pattern: o.scanner.Pattern()}
	}

	o.reporter.Header("Running Tests")
	o.reporter.Info("Found %d test project(s) below %s", len(projects), dir)

	start := time.Now()
	testArgs := dotnet.TestArgs{Coverage: opts.WithCoverage, Filter: opts.Filter}
	results := make([]domain.TestProjectResult, 0, len(projects))
	for i, project := range projects {
		name := relativeTo(dir, project)
		o.reporter.Info("[%d/%d] Testing %s", i+1, len(projects), name)

		inv := o.commands.Test(dir, project, testArgs, opts.CIMode)
		res, err := o.executor.Run(ctx, inv)
		if err != nil {
			o.log.Warn("test command could not start", zap.String("project", name), zap.Error(err))
			res = domain.StageResult{ExitCode: domain.ExitFailure, Stderr: err.Error()}
		}
		if opts.CIMode {
			o.reporter.Output(res.Stdout)
		}

		result := domain.TestProjectResult{
			Project:     name,
			ExitCode:    res.ExitCode,
			Stdout:      res.Stdout,
			Stderr:      res.Stderr,
			Duration:    res.Duration,
			FailedTests: o.parser.ParseFailedTests(res.Stdout),
		}
		if counts, ok := o.parser.ParseCounts(res.Stdout); ok {
			result.Counts = &counts
		}
		results = append(results, result)
	}

	outcome := domain.Aggregate(results)
	o.save(solution, opts, results, outcome, time.Since(start))

	if outcome.Succeeded() {
		o.reporter.Success("All %d test project(s) passed", outcome.TotalProjects)
		return &outcome, nil
	}

	for _, failed := range outcome.Failed {
		if opts.CIMode {
			o.reporter.FailureBlock(
				fmt.Sprintf("%s failed with exit code %d", failed.Project, failed.ExitCode),
				errorStream(failed.Stderr, failed.Stdout))
			continue
		}
		o.reporter.Error("%s failed with exit code %d, scroll up for its output", failed.Project, failed.ExitCode)
	}

	return &outcome, &domain.TestFailuresError{Failed: len(outcome.Failed), Total: outcome.TotalProjects}
}

// RunBySolution runs the test command once for the whole solution and leaves
// per-project aggregation to the test runner.
func (o *Orchestrator) RunBySolution(ctx context.Context, opts testrun.Options) error {
	dir, solution, err := o.prepare(ctx, opts)
	if err != nil {
		return err
	}

	o.reporter.Header("Running Tests")
	inv := o.commands.Test(dir, solution, dotnet.TestArgs{Coverage: opts.WithCoverage, Filter: opts.Filter}, opts.CIMode)
	o.reporter.Info("→ %s", inv.String())

	res, err := o.executor.Run(ctx, inv)
	if err != nil {
		return &domain.StageError{Stage: inv.Stage, ExitCode: domain.ExitFailure, Cause: err}
	}
	if opts.CIMode {
		o.reporter.Output(res.Stdout)
	}
	if !res.Success() {
		if opts.CIMode {
			o.reporter.FailureBlock(fmt.Sprintf("Tests failed with exit code %d", res.ExitCode), errorStream(res.Stderr, res.Stdout))
		}
		return &domain.StageError{Stage: inv.Stage, ExitCode: res.ExitCode}
	}

	o.reporter.Success("All tests in %s passed", solution)
	return nil
}

func (o *Orchestrator) save(solution string, opts testrun.Options, results []domain.TestProjectResult, outcome domain.AggregateOutcome, elapsed time.Duration) {
	if o.storage == nil {
		return
	}
	report := &domain.RunReport{
		Meta: domain.RunReportMeta{
			RunID:           uuid.NewString(),
			Solution:        solution,
			TotalProjects:   outcome.TotalProjects,
			FailedProjects:  len(outcome.Failed),
			PassedProjects:  outcome.TotalProjects - len(outcome.Failed),
			Captured:        opts.CIMode,
			Coverage:        opts.WithCoverage,
			Filter:          opts.Filter,
			Duration:        elapsed.String(),
			DurationSeconds: elapsed.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Projects: results,
	}
	if err := o.storage.Save(report); err != nil {
		o.reporter.Warning("Could not save test results: %v", err)
		return
	}
	o.log.Debug("saved test run", zap.String("run_id", report.Meta.RunID))
}

// errorStream prefers stderr; dotnet test reports assertion failures on stdout,
// so fall back to it when stderr is empty.
func errorStream(stderr, stdout string) string {
	if strings.TrimSpace(stderr) != "" {
		return stderr
	}
	return stdout
}

func relativeTo(dir, p string) string {
	if rel, err := filepath.Rel(dir, p); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(p)
}
