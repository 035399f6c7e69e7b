// Package migration applies database migrations through the dotnet toolchain.
package migration

import "context"

// Migrator runs database migrations
type Migrator interface {
	Run(ctx context.Context) error
}
