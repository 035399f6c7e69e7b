package paths

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openRecorder exposes only Open, so every directory listing goes through it.
type openRecorder struct {
	fsys   fs.FS
	opened []string
}

func (r *openRecorder) Open(name string) (fs.File, error) {
	r.opened = append(r.opened, name)
	return r.fsys.Open(name)
}

func layoutFS() fstest.MapFS {
	return fstest.MapFS{
		"dotnet/Shop.sln":                               {},
		"dotnet/Shop.Web/Shop.Web.csproj":               {},
		"dotnet/Shop.Cli/bin/Debug/net8.0/Shop.Cli.dll": {},
		"dotnet/Shop.Cli/obj/Debug/net8.0/Shop.Cli.dll": {},
		"node_modules/pkg/dotnet/Vendored.sln":          {},
		".git/objects/Stale.sln":                        {},
		"docs/guide/Example.Web.csproj":                 {},
	}
}

func TestFSLister_Glob_NeverEntersIgnoredDirs(t *testing.T) {
	rec := &openRecorder{fsys: layoutFS()}
	lister := NewFSLister(rec, []string{".git", "node_modules"})

	matches, err := lister.Glob("**/*.sln")

	require.NoError(t, err)
	assert.Equal(t, []string{"dotnet/Shop.sln"}, matches)
	assert.NotContains(t, rec.opened, "node_modules")
	assert.NotContains(t, rec.opened, ".git")
	for _, name := range rec.opened {
		assert.NotContains(t, name, "node_modules/")
		assert.NotContains(t, name, ".git/")
	}
}

func TestFSLister_Glob_PrunesUnreachableDirs(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		want       []string
		notEntered []string
	}{
		{
			name:       "root level only",
			pattern:    "*.sln",
			want:       []string{},
			notEntered: []string{"dotnet", "docs"},
		},
		{
			name:       "literal prefix",
			pattern:    "dotnet/*/*.Web.csproj",
			want:       []string{"dotnet/Shop.Web/Shop.Web.csproj"},
			notEntered: []string{"docs", "dotnet/Shop.Cli/bin"},
		},
		{
			name:       "fixed depth below wildcard",
			pattern:    "dotnet/*/bin/Debug/*/*.Cli.dll",
			want:       []string{"dotnet/Shop.Cli/bin/Debug/net8.0/Shop.Cli.dll"},
			notEntered: []string{"dotnet/Shop.Cli/obj", "docs"},
		},
		{
			name:    "recursive",
			pattern: "**/*.Web.csproj",
			want:    []string{"docs/guide/Example.Web.csproj", "dotnet/Shop.Web/Shop.Web.csproj"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &openRecorder{fsys: layoutFS()}
			lister := NewFSLister(rec, []string{".git", "node_modules"})

			matches, err := lister.Glob(tt.pattern)

			require.NoError(t, err)
			assert.Equal(t, tt.want, matches)
			for _, dir := range tt.notEntered {
				assert.NotContains(t, rec.opened, dir)
			}
		})
	}
}
