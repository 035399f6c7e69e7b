package commands

import (
	"github.com/spf13/cobra"

	"dotpipe/internal/cli"
	"dotpipe/internal/config"
	"dotpipe/internal/pipeline"
)

// BuildCommand handles the build command
type BuildCommand struct {
	config   *config.Config
	flags    *cli.Flags
	pipeline *pipeline.Pipeline
}

// NewBuildCommand creates a new BuildCommand
func NewBuildCommand(cfg *config.Config, flags *cli.Flags, pl *pipeline.Pipeline) *BuildCommand {
	return &BuildCommand{config: cfg, flags: flags, pipeline: pl}
}

// Execute runs the command
func (bc *BuildCommand) Execute(cmd *cobra.Command, args []string) error {
	return bc.pipeline.Run(cmd.Context(), bc.flags.BuildOptions(bc.config))
}
