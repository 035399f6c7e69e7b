package commands

import (
	"github.com/spf13/cobra"

	"dotpipe/internal/dotnet"
	"dotpipe/internal/paths"
	"dotpipe/internal/pipeline"
	"dotpipe/internal/ui"
)

// PublishCommand handles the publish command
type PublishCommand struct {
	resolver *paths.Resolver
	pipeline *pipeline.Pipeline
	dotnet   *dotnet.Commands
	reporter *ui.Reporter
}

// NewPublishCommand creates a new PublishCommand
func NewPublishCommand(resolver *paths.Resolver, pl *pipeline.Pipeline, dotnetCmds *dotnet.Commands, reporter *ui.Reporter) *PublishCommand {
	return &PublishCommand{resolver: resolver, pipeline: pl, dotnet: dotnetCmds, reporter: reporter}
}

// Execute publishes the web project into <solution dir>/release
func (pc *PublishCommand) Execute(cmd *cobra.Command, args []string) error {
	web, err := pc.resolver.Require(paths.WebProject)
	if err != nil {
		return err
	}
	release, ok := pc.resolver.ReleaseDir()
	if !ok {
		_, err := pc.resolver.Require(paths.Solution)
		return err
	}

	inv := pc.dotnet.Publish(pc.resolver.Root(), web, pc.resolver.Abs(release))
	if err := pc.pipeline.RunStage(cmd.Context(), inv); err != nil {
		return err
	}
	pc.reporter.Success("Published %s to %s", web, release)
	return nil
}

// RunCommand handles the run command
type RunCommand struct {
	resolver *paths.Resolver
	pipeline *pipeline.Pipeline
	dotnet   *dotnet.Commands
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(resolver *paths.Resolver, pl *pipeline.Pipeline, dotnetCmds *dotnet.Commands) *RunCommand {
	return &RunCommand{resolver: resolver, pipeline: pl, dotnet: dotnetCmds}
}

// Execute starts the web project, forwarding args to it
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	web, err := rc.resolver.Require(paths.WebProject)
	if err != nil {
		return err
	}
	return rc.pipeline.RunStage(cmd.Context(), rc.dotnet.Run(rc.resolver.Root(), web, args))
}

// CLICommand handles the cli command
type CLICommand struct {
	resolver *paths.Resolver
	pipeline *pipeline.Pipeline
	dotnet   *dotnet.Commands
}

// NewCLICommand creates a new CLICommand
func NewCLICommand(resolver *paths.Resolver, pl *pipeline.Pipeline, dotnetCmds *dotnet.Commands) *CLICommand {
	return &CLICommand{resolver: resolver, pipeline: pl, dotnet: dotnetCmds}
}

// Execute runs the compiled CLI assembly with args
func (cc *CLICommand) Execute(cmd *cobra.Command, args []string) error {
	assembly, err := cc.resolver.Require(paths.CLIAssembly)
	if err != nil {
		return err
	}
	return cc.pipeline.RunStage(cmd.Context(), cc.dotnet.Exec(cc.resolver.Root(), assembly, args))
}
