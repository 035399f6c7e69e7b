// Package dotnet builds the dotnet CLI invocations the pipeline runs.
package dotnet

import (
	"dotpipe/internal/execution"
)

// Stage names as they appear in diagnostics.
const (
	StageClean    = "clean"
	StageRestore  = "restore"
	StageBuild    = "build"
	StageTest     = "test"
	StagePublish  = "publish"
	StageRun      = "run"
	StageMigrate  = "migrate"
	StageExecCLI  = "cli"
	ReleaseConfig = "Release"
)

// Commands creates invocations for one dotnet executable.
type Commands struct {
	program        string
	coverageFormat string
}

// NewCommands creates a command builder. An empty program defaults to "dotnet".
func NewCommands(program, coverageFormat string) *Commands {
	if program == "" {
		program = "dotnet"
	}
	if coverageFormat == "" {
		coverageFormat = "opencover"
	}
	return &Commands{program: program, coverageFormat: coverageFormat}
}

// TestArgs holds the optional parts of a test command line.
type TestArgs struct {
	Coverage bool
	Filter   string
}

func (c *Commands) invocation(stage, dir string, capture bool, args ...string) execution.Invocation {
	return execution.Invocation{
		Stage:   stage,
		Program: c.program,
		Args:    args,
		Dir:     dir,
		Capture: capture,
	}
}

// Clean runs `dotnet clean` in dir.
func (c *Commands) Clean(dir string, capture bool) execution.Invocation {
	return c.invocation(StageClean, dir, capture, "clean")
}

// Restore runs `dotnet restore` in dir.
func (c *Commands) Restore(dir string, capture bool) execution.Invocation {
	return c.invocation(StageRestore, dir, capture, "restore")
}

// Build builds the solution; restore always runs as its own stage.
func (c *Commands) Build(dir, solution string, capture bool) execution.Invocation {
	return c.invocation(StageBuild, dir, capture, "build", solution, "--no-restore")
}

// Test runs `dotnet test` against a project or solution. Coverage flags come
// before the positional argument and the filter after it.
func (c *Commands) Test(dir, target string, opts TestArgs, capture bool) execution.Invocation {
	args := []string{"test"}
	if opts.Coverage {
		args = append(args, "-p:CollectCoverage=true", "-p:CoverletOutputFormat="+c.coverageFormat)
	}
	args = append(args, target)
	if opts.Filter != "" {
		args = append(args, "--filter", opts.Filter)
	}
	return c.invocation(StageTest, dir, capture, args...)
}

// Publish publishes a project in Release configuration into output.
func (c *Commands) Publish(dir, project, output string) execution.Invocation {
	return c.invocation(StagePublish, dir, false, "publish", project, "-c", ReleaseConfig, "-o", output)
}

// Run starts a project with `dotnet run`.
func (c *Commands) Run(dir, project string, extra []string) execution.Invocation {
	args := []string{"run", "--project", project}
	if len(extra) > 0 {
		args = append(args, "--")
		args = append(args, extra...)
	}
	return c.invocation(StageRun, dir, false, args...)
}

// EFDatabaseUpdate applies Entity Framework migrations from the data project.
func (c *Commands) EFDatabaseUpdate(dir, dataProject, startupProject string) execution.Invocation {
	return c.invocation(StageMigrate, dir, false,
		"ef", "database", "update", "--project", dataProject, "--startup-project", startupProject)
}

// Exec runs a compiled assembly with `dotnet <assembly> args...`.
func (c *Commands) Exec(dir, assembly string, extra []string) execution.Invocation {
	args := append([]string{assembly}, extra...)
	return c.invocation(StageExecCLI, dir, false, args...)
}
