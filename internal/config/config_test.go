package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultWorkDir, cfg.WorkDir)
	assert.Equal(t, DefaultDotnetPath, cfg.DotnetPath)
	assert.Equal(t, DefaultTestProjectPattern, cfg.TestProjectPattern)
	assert.Equal(t, DefaultPathsToIgnore, cfg.PathsToIgnore)
	assert.False(t, cfg.CIMode)

	// Defaults are copied, not shared.
	cfg.PathsToIgnore[0] = "changed"
	assert.Equal(t, ".git", DefaultPathsToIgnore[0])
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("DOTPIPE_CI", "")
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.WorkDir)
	assert.Equal(t, "dotnet", cfg.DotnetPath)
	assert.Equal(t, "opencover", cfg.CoverageFormat)
	assert.False(t, cfg.CIMode)
	assert.Equal(t, []string{"bin", "obj"}, cfg.IntermediateDirs)
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("DOTPIPE_CI", "")
	dir := t.TempDir()
	content := "coverage: true\nfilter: Category=Smoke\ntest_project_pattern: \"*.Tests.csproj\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dotpipe.yaml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Coverage)
	assert.Equal(t, "Category=Smoke", cfg.Filter)
	assert.Equal(t, "*.Tests.csproj", cfg.TestProjectPattern)
}

func TestLoad_Environment(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		wantCI bool
	}{
		{name: "generic CI variable", env: map[string]string{"CI": "true", "DOTPIPE_CI": ""}, wantCI: true},
		{name: "prefixed variable", env: map[string]string{"CI": "", "DOTPIPE_CI": "1"}, wantCI: true},
		{name: "neither set", env: map[string]string{"CI": "", "DOTPIPE_CI": ""}, wantCI: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, tt.wantCI, cfg.CIMode)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("DOTPIPE_CI", "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOTPIPE_DOTNET_PATH=/opt/dotnet/dotnet\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("DOTPIPE_DOTNET_PATH") })

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/dotnet/dotnet", cfg.DotnetPath)
}

func TestConfig_GetResultsPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "relative results dir",
			config:   &Config{WorkDir: "/project", ResultsDir: ".dotpipe", ResultsFile: "test-results.json"},
			expected: "/project/.dotpipe/test-results.json",
		},
		{
			name:     "absolute results dir",
			config:   &Config{WorkDir: "/project", ResultsDir: "/tmp/results", ResultsFile: "run.json"},
			expected: "/tmp/results/run.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetResultsPath())
		})
	}
}
