package migration

import (
	"context"

	"dotpipe/internal/dotnet"
	"dotpipe/internal/paths"
	"dotpipe/internal/pipeline"
	"dotpipe/internal/ui"
)

// EFMigrator implements Migrator with `dotnet ef database update`
type EFMigrator struct {
	resolver *paths.Resolver
	pipeline *pipeline.Pipeline
	commands *dotnet.Commands
	reporter *ui.Reporter
}

// NewEFMigrator creates a new EFMigrator
func NewEFMigrator(resolver *paths.Resolver, pl *pipeline.Pipeline, commands *dotnet.Commands, reporter *ui.Reporter) *EFMigrator {
	return &EFMigrator{
		resolver: resolver,
		pipeline: pl,
		commands: commands,
		reporter: reporter,
	}
}

// Run applies the data project's migrations, using the web project as the
// startup project. Both must resolve before anything is run.
func (m *EFMigrator) Run(ctx context.Context) error {
	data, err := m.resolver.Require(paths.DataProject)
	if err != nil {
		return err
	}
	web, err := m.resolver.Require(paths.WebProject)
	if err != nil {
		return err
	}

	m.reporter.Header("Running Database Migrations")
	if err := m.pipeline.RunStage(ctx, m.commands.EFDatabaseUpdate(m.resolver.Root(), data, web)); err != nil {
		return err
	}
	m.reporter.Success("Database is up to date")
	return nil
}
