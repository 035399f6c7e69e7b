package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dotpipe/internal/cli"
	"dotpipe/internal/config"
	"dotpipe/internal/discovery"
	"dotpipe/internal/dotnet"
	"dotpipe/internal/execution"
	"dotpipe/internal/migration"
	"dotpipe/internal/orchestrator"
	"dotpipe/internal/parser"
	"dotpipe/internal/paths"
	"dotpipe/internal/pipeline"
	"dotpipe/internal/storage"
	"dotpipe/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Test     *TestCommand
	Build    *BuildCommand
	List     *ListCommand
	Paths    *PathsCommand
	Failures *FailuresCommand
	Publish  *PublishCommand
	Run      *RunCommand
	Migrate  *MigrateCommand
	CLI      *CLICommand

	flags *cli.Flags
}

// NewCommands creates all commands with dependencies. One resolver is shared
// by every command so each target is searched for at most once per process.
func NewCommands(cfg *config.Config, flags *cli.Flags, executor execution.Executor, reporter *ui.Reporter, log *zap.Logger) *Commands {
	lister := paths.NewDirLister(cfg.WorkDir, cfg.PathsToIgnore)
	resolver := paths.NewResolver(cfg.WorkDir, lister, log)
	dotnetCmds := dotnet.NewCommands(cfg.DotnetPath, cfg.CoverageFormat)
	pl := pipeline.New(resolver, executor, dotnetCmds, reporter, cfg.IntermediateDirs, cfg.PathsToIgnore, log)
	scanner := discovery.NewScanner(cfg.TestProjectPattern, cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	outputParser := parser.NewTestOutputParser()
	orch := orchestrator.New(resolver, pl, scanner, filter, executor, dotnetCmds, outputParser, jsonStorage, reporter, log)
	migrator := migration.NewEFMigrator(resolver, pl, dotnetCmds, reporter)
	viewer := ui.NewFailureViewer(reporter)

	return &Commands{
		Test:     NewTestCommand(cfg, flags, orch),
		Build:    NewBuildCommand(cfg, flags, pl),
		List:     NewListCommand(flags, resolver, scanner, filter, reporter),
		Paths:    NewPathsCommand(resolver, reporter),
		Failures: NewFailuresCommand(flags, jsonStorage, reporter, viewer),
		Publish:  NewPublishCommand(resolver, pl, dotnetCmds, reporter),
		Run:      NewRunCommand(resolver, pl, dotnetCmds),
		Migrate:  NewMigrateCommand(migrator),
		CLI:      NewCLICommand(resolver, pl, dotnetCmds),
		flags:    flags,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command) {
	flags := c.flags

	// Test command
	testCmd := &cobra.Command{
		Use:   "test",
		Short: "Build the solution and run its tests",
		Long: "Clean, restore and build the solution, then run every discovered test project " +
			"in its own process (or the whole solution at once with --solution)",
		Args: cobra.NoArgs,
		RunE: c.Test.Execute,
	}
	testCmd.Flags().BoolVar(&flags.CI, "ci", false, "Capture command output and replay it in failure reports")
	testCmd.Flags().BoolVar(&flags.Coverage, "coverage", false, "Collect code coverage")
	testCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Test filter expression passed to dotnet test")
	testCmd.Flags().BoolVar(&flags.SkipClean, "skip-clean", false, "Skip the clean, restore and build stages")
	testCmd.Flags().BoolVar(&flags.Solution, "solution", false, "Run the tests of the whole solution in one process")
	testCmd.Flags().StringVarP(&flags.Only, "only", "o", "", "Only run test projects whose file name matches (supports wildcards, e.g. '*Api*')")
	rootCmd.AddCommand(testCmd)

	// Build command
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build the solution",
		Long:  "Build the resolved solution, optionally cleaning and restoring first",
		Args:  cobra.NoArgs,
		RunE:  c.Build.Execute,
	}
	buildCmd.Flags().BoolVar(&flags.Clean, "clean", false, "Remove bin/obj directories and run dotnet clean first")
	buildCmd.Flags().BoolVar(&flags.Restore, "restore", false, "Restore packages before building")
	rootCmd.AddCommand(buildCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test projects",
		Long:  "Scan the solution directory and list test projects without running them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.Only, "only", "o", "", "Only list test projects whose file name matches")
	rootCmd.AddCommand(listCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "paths",
		Short: "Show the resolved solution, projects and release directory",
		Args:  cobra.NoArgs,
		RunE:  c.Paths.Execute,
	})

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failed test projects of the last run",
		Long:  "Display the failed test projects of the last per-project run in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
	}
	failuresCmd.Flags().BoolVar(&flags.SummaryOnly, "summary", false, "Print the run summary without opening the viewer")
	rootCmd.AddCommand(failuresCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "publish",
		Short: "Publish the web project into the release directory",
		Args:  cobra.NoArgs,
		RunE:  c.Publish.Execute,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "run [-- args...]",
		Short: "Run the web project",
		RunE:  c.Run.Execute,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply Entity Framework migrations from the data project",
		Args:  cobra.NoArgs,
		RunE:  c.Migrate.Execute,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:                "cli [args...]",
		Short:              "Run the compiled CLI assembly",
		DisableFlagParsing: true,
		RunE:               c.CLI.Execute,
	})
}
