// Package cli holds the command-line flag sets shared by the commands.
package cli

import (
	"github.com/spf13/cobra"

	"dotpipe/internal/config"
	"dotpipe/internal/pipeline"
	"dotpipe/internal/testrun"
)

// Flags holds command-line flags
type Flags struct {
	Verbose bool

	// test
	CI        bool
	Coverage  bool
	Filter    string
	SkipClean bool
	Solution  bool
	Only      string

	// build
	Clean   bool
	Restore bool

	// failures
	SummaryOnly bool
}

// TestOptions builds the test run options. Config values are the base; only
// flags the user actually set on cmd override them.
func (f *Flags) TestOptions(cmd *cobra.Command, cfg *config.Config) testrun.Options {
	b := testrun.From(testrun.Options{
		CIMode:       cfg.CIMode,
		Filter:       cfg.Filter,
		SkipClean:    cfg.SkipClean,
		WithCoverage: cfg.Coverage,
	})

	changed := cmd.Flags().Changed
	if changed("ci") {
		b.CIMode(&f.CI)
	}
	if changed("coverage") {
		b.WithCoverage(&f.Coverage)
	}
	if changed("filter") {
		b.Filter(&f.Filter)
	}
	if changed("skip-clean") {
		b.SkipClean(&f.SkipClean)
	}
	if changed("only") {
		b.Only(&f.Only)
	}
	return b.Build()
}

// BuildOptions converts the build flags into pipeline options.
func (f *Flags) BuildOptions(cfg *config.Config) pipeline.Options {
	return pipeline.Options{Clean: f.Clean, Restore: f.Restore, Capture: cfg.CIMode}
}
