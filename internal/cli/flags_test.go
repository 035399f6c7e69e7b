package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotpipe/internal/config"
	"dotpipe/internal/testrun"
)

func newTestCmd(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().BoolVar(&flags.CI, "ci", false, "")
	cmd.Flags().BoolVar(&flags.Coverage, "coverage", false, "")
	cmd.Flags().StringVar(&flags.Filter, "filter", "", "")
	cmd.Flags().BoolVar(&flags.SkipClean, "skip-clean", false, "")
	cmd.Flags().StringVar(&flags.Only, "only", "", "")
	return cmd
}

func TestFlags_TestOptions(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*config.Config)
		args []string
		want testrun.Options
	}{
		{
			name: "defaults",
			want: testrun.Options{},
		},
		{
			name: "flags set",
			args: []string{"--ci", "--coverage", "--filter", "Category=Unit", "--skip-clean", "--only", "*Api*"},
			want: testrun.Options{CIMode: true, WithCoverage: true, Filter: "Category=Unit", SkipClean: true, Only: "*Api*"},
		},
		{
			name: "config values survive unset flags",
			cfg: func(c *config.Config) {
				c.CIMode = true
				c.Filter = "Category=Smoke"
			},
			args: []string{"--coverage"},
			want: testrun.Options{CIMode: true, Filter: "Category=Smoke", WithCoverage: true},
		},
		{
			name: "explicit false overrides config",
			cfg:  func(c *config.Config) { c.CIMode = true },
			args: []string{"--ci=false"},
			want: testrun.Options{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			var flags Flags
			cmd := newTestCmd(&flags)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())

			assert.Equal(t, tt.want, flags.TestOptions(cmd, cfg))
		})
	}
}

func TestFlags_BuildOptions(t *testing.T) {
	cfg := config.New()
	cfg.CIMode = true
	flags := Flags{Clean: true}

	opts := flags.BuildOptions(cfg)

	assert.True(t, opts.Clean)
	assert.False(t, opts.Restore)
	assert.True(t, opts.Capture)
}
