package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"dotpipe/internal/cli"
	"dotpipe/internal/storage"
	"dotpipe/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	flags    *cli.Flags
	storage  storage.Storage
	reporter *ui.Reporter
	viewer   *ui.FailureViewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(flags *cli.Flags, st storage.Storage, reporter *ui.Reporter, viewer *ui.FailureViewer) *FailuresCommand {
	return &FailuresCommand{
		flags:    flags,
		storage:  st,
		reporter: reporter,
		viewer:   viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := fc.storage.Load()
	if errors.Is(err, storage.ErrNoRun) {
		fc.reporter.Warning("No stored test run, run `dotpipe test` first")
		return nil
	}
	if err != nil {
		return err
	}

	if fc.flags.SummaryOnly {
		fc.reporter.PrintRunSummary(report)
		return nil
	}
	return fc.viewer.View(report)
}
