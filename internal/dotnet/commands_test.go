package dotnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands_Test(t *testing.T) {
	cmds := NewCommands("", "")

	tests := []struct {
		name     string
		opts     TestArgs
		expected []string
	}{
		{
			name:     "plain",
			expected: []string{"test", "A.Test.csproj"},
		},
		{
			name:     "coverage before positional",
			opts:     TestArgs{Coverage: true},
			expected: []string{"test", "-p:CollectCoverage=true", "-p:CoverletOutputFormat=opencover", "A.Test.csproj"},
		},
		{
			name:     "filter after positional",
			opts:     TestArgs{Filter: "Category=Smoke"},
			expected: []string{"test", "A.Test.csproj", "--filter", "Category=Smoke"},
		},
		{
			name: "coverage and filter",
			opts: TestArgs{Coverage: true, Filter: "FullyQualifiedName~Orders"},
			expected: []string{
				"test", "-p:CollectCoverage=true", "-p:CoverletOutputFormat=opencover",
				"A.Test.csproj", "--filter", "FullyQualifiedName~Orders",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := cmds.Test("dotnet", "A.Test.csproj", tt.opts, true)
			assert.Equal(t, "dotnet", inv.Program)
			assert.Equal(t, StageTest, inv.Stage)
			assert.Equal(t, "dotnet", inv.Dir)
			assert.True(t, inv.Capture)
			assert.Equal(t, tt.expected, inv.Args)
		})
	}
}

func TestCommands_Stages(t *testing.T) {
	cmds := NewCommands("/usr/share/dotnet/dotnet", "cobertura")

	build := cmds.Build("src", "App.sln", false)
	assert.Equal(t, []string{"build", "App.sln", "--no-restore"}, build.Args)
	assert.Equal(t, "/usr/share/dotnet/dotnet", build.Program)

	assert.Equal(t, []string{"clean"}, cmds.Clean("src", false).Args)
	assert.Equal(t, []string{"restore"}, cmds.Restore("src", false).Args)

	cov := cmds.Test("src", "App.sln", TestArgs{Coverage: true}, false)
	assert.Contains(t, cov.Args, "-p:CoverletOutputFormat=cobertura")
}

func TestCommands_Supplemental(t *testing.T) {
	cmds := NewCommands("dotnet", "")

	assert.Equal(t,
		[]string{"publish", "App.Web/App.Web.csproj", "-c", "Release", "-o", "release"},
		cmds.Publish(".", "App.Web/App.Web.csproj", "release").Args)
	assert.Equal(t,
		[]string{"run", "--project", "App.Web.csproj", "--", "--urls", "http://localhost:5000"},
		cmds.Run(".", "App.Web.csproj", []string{"--urls", "http://localhost:5000"}).Args)
	assert.Equal(t, []string{"run", "--project", "App.Web.csproj"}, cmds.Run(".", "App.Web.csproj", nil).Args)
	assert.Equal(t,
		[]string{"ef", "database", "update", "--project", "D.csproj", "--startup-project", "W.csproj"},
		cmds.EFDatabaseUpdate(".", "D.csproj", "W.csproj").Args)
	assert.Equal(t, []string{"App.Cli.dll", "seed", "--all"}, cmds.Exec(".", "App.Cli.dll", []string{"seed", "--all"}).Args)
}
