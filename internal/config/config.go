package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	WorkDir    string `mapstructure:"work_dir"`
	DotnetPath string `mapstructure:"dotnet_path"`

	// Test settings, used as defaults for the test command flags
	CIMode             bool   `mapstructure:"ci"`
	Coverage           bool   `mapstructure:"coverage"`
	CoverageFormat     string `mapstructure:"coverage_format"`
	Filter             string `mapstructure:"filter"`
	SkipClean          bool   `mapstructure:"skip_clean"`
	TestProjectPattern string `mapstructure:"test_project_pattern"`

	// Output settings
	ResultsDir  string `mapstructure:"results_dir"`
	ResultsFile string `mapstructure:"results_file"`

	// Paths to ignore when searching the tree
	PathsToIgnore    []string `mapstructure:"paths_to_ignore"`
	IntermediateDirs []string `mapstructure:"intermediate_dirs"`

	Verbose bool `mapstructure:"verbose"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		WorkDir:            DefaultWorkDir,
		DotnetPath:         DefaultDotnetPath,
		CoverageFormat:     DefaultCoverageFormat,
		TestProjectPattern: DefaultTestProjectPattern,
		ResultsDir:         DefaultResultsDir,
		ResultsFile:        DefaultResultsFile,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	cfg.IntermediateDirs = make([]string, len(DefaultIntermediateDirs))
	copy(cfg.IntermediateDirs, DefaultIntermediateDirs)
	return cfg
}

// Load builds the config for a work dir. Sources, lowest precedence first:
// defaults, <dir>/.dotpipe.yaml, <dir>/.env, process environment.
func Load(dir string) (*Config, error) {
	// A missing .env is fine; existing environment variables win over it.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	defaults := New()
	v := viper.New()
	v.SetDefault("work_dir", dir)
	v.SetDefault("dotnet_path", defaults.DotnetPath)
	v.SetDefault("ci", false)
	v.SetDefault("coverage", false)
	v.SetDefault("coverage_format", defaults.CoverageFormat)
	v.SetDefault("filter", "")
	v.SetDefault("skip_clean", false)
	v.SetDefault("test_project_pattern", defaults.TestProjectPattern)
	v.SetDefault("results_dir", defaults.ResultsDir)
	v.SetDefault("results_file", defaults.ResultsFile)
	v.SetDefault("paths_to_ignore", defaults.PathsToIgnore)
	v.SetDefault("intermediate_dirs", defaults.IntermediateDirs)
	v.SetDefault("verbose", false)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Most CI providers export CI=true.
	if err := v.BindEnv("ci", EnvPrefix+"_CI", "CI"); err != nil {
		return nil, fmt.Errorf("bind ci env: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// GetResultsPath returns the absolute path of the stored per-project run.
func (c *Config) GetResultsPath() string {
	p := filepath.Join(c.WorkDir, c.ResultsDir, c.ResultsFile)
	if filepath.IsAbs(c.ResultsDir) {
		p = filepath.Join(c.ResultsDir, c.ResultsFile)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
