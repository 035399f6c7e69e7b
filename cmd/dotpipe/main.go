package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dotpipe/internal/cli"
	"dotpipe/internal/cli/commands"
	"dotpipe/internal/config"
	"dotpipe/internal/domain"
	"dotpipe/internal/execution"
	"dotpipe/internal/logging"
	"dotpipe/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	reporter := ui.NewReporter()

	wd, err := os.Getwd()
	if err != nil {
		reporter.Error("%v", err)
		return domain.ExitFailure
	}

	// Load config: defaults, .dotpipe.yaml, .env and DOTPIPE_* variables
	cfg, err := config.Load(wd)
	if err != nil {
		reporter.Error("%v", err)
		return domain.ExitFailure
	}

	level := logging.Level(cfg.Verbose)
	log, err := logging.New(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitFailure
	}
	defer func() { _ = log.Sync() }()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	rootCmd := &cobra.Command{
		Use:           "dotpipe",
		Short:         "Build and test .NET solutions",
		Long:          `Locates the .NET solution below the current directory and drives the dotnet toolchain: clean, restore, build, test, publish and migrations.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.Verbose {
				level.SetLevel(zap.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print debug logs")

	executor := execution.NewRunner(log)
	cmds := commands.NewCommands(cfg, &flags, executor, reporter, log)
	cmds.Register(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reporter.Error("%v", err)
		return domain.ExitCode(err)
	}
	return domain.ExitSuccess
}
