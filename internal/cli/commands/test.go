package commands

import (
	"github.com/spf13/cobra"

	"dotpipe/internal/cli"
	"dotpipe/internal/config"
	"dotpipe/internal/orchestrator"
)

// TestCommand handles the test command
type TestCommand struct {
	config       *config.Config
	flags        *cli.Flags
	orchestrator *orchestrator.Orchestrator
}

// NewTestCommand creates a new TestCommand
func NewTestCommand(cfg *config.Config, flags *cli.Flags, orch *orchestrator.Orchestrator) *TestCommand {
	return &TestCommand{
		config:       cfg,
		flags:        flags,
		orchestrator: orch,
	}
}

// Execute runs the command
func (tc *TestCommand) Execute(cmd *cobra.Command, args []string) error {
	opts := tc.flags.TestOptions(cmd, tc.config)

	if tc.flags.Solution {
		return tc.orchestrator.RunBySolution(cmd.Context(), opts)
	}

	_, err := tc.orchestrator.RunByProject(cmd.Context(), opts)
	return err
}
