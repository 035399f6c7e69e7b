package commands

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"dotpipe/internal/cli"
	"dotpipe/internal/discovery"
	"dotpipe/internal/paths"
	"dotpipe/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	flags    *cli.Flags
	resolver *paths.Resolver
	scanner  *discovery.Scanner
	filter   *discovery.Filter
	reporter *ui.Reporter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	flags *cli.Flags,
	resolver *paths.Resolver,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	reporter *ui.Reporter,
) *ListCommand {
	return &ListCommand{
		flags:    flags,
		resolver: resolver,
		scanner:  scanner,
		filter:   filter,
		reporter: reporter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	solution, err := lc.resolver.Require(paths.Solution)
	if err != nil {
		return err
	}
	dir := lc.resolver.Abs(path.Dir(solution))

	projects, err := lc.scanner.Scan(dir)
	if err != nil {
		return fmt.Errorf("discover test projects: %w", err)
	}
	projects = lc.filter.FilterByName(projects, lc.flags.Only)

	if len(projects) == 0 {
		lc.reporter.Warning("No test projects matching %s found below %s", lc.scanner.Pattern(), dir)
		return nil
	}

	names := make([]string, 0, len(projects))
	for _, p := range projects {
		if rel, err := filepath.Rel(dir, p); err == nil {
			p = rel
		}
		names = append(names, filepath.ToSlash(p))
	}
	lc.reporter.PrintList(fmt.Sprintf("Found %d test project(s) in %s:", len(names), solution), names)
	return nil
}
