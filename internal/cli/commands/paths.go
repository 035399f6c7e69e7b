package commands

import (
	"github.com/spf13/cobra"

	"dotpipe/internal/paths"
	"dotpipe/internal/ui"
)

// PathsCommand handles the paths command
type PathsCommand struct {
	resolver *paths.Resolver
	reporter *ui.Reporter
}

// NewPathsCommand creates a new PathsCommand
func NewPathsCommand(resolver *paths.Resolver, reporter *ui.Reporter) *PathsCommand {
	return &PathsCommand{resolver: resolver, reporter: reporter}
}

// Execute runs the command. Missing targets are reported, not treated as errors.
func (pc *PathsCommand) Execute(cmd *cobra.Command, args []string) error {
	pc.reporter.Info("Root: %s", pc.resolver.Root())
	for _, target := range paths.Targets {
		if p, ok := pc.resolver.Resolve(target); ok {
			pc.reporter.Success("%-13s %s", target.String()+":", p)
			continue
		}
		pc.reporter.Warning("%-13s not found", target.String()+":")
	}

	if dir, ok := pc.resolver.ReleaseDir(); ok {
		pc.reporter.Success("%-13s %s", "release dir:", dir)
	}
	return nil
}
