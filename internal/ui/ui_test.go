package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"dotpipe/internal/domain"
)

func init() {
	color.NoColor = true
}

func TestReporter_Lines(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewReporterWithWriters(&out, &errOut)

	r.Info("building %s", "App.sln")
	r.Success("all %d passed", 2)
	r.Warning("could not save")
	r.Error("build failed")

	assert.Contains(t, out.String(), "building App.sln")
	assert.Contains(t, out.String(), "all 2 passed")
	assert.Contains(t, errOut.String(), "could not save")
	assert.Contains(t, errOut.String(), "build failed")
}

func TestReporter_Output(t *testing.T) {
	var out bytes.Buffer
	r := NewReporterWithWriters(&out, &out)

	r.Output("   \n")
	assert.Empty(t, out.String())

	r.Output("Passed!  - Failed: 0")
	assert.Equal(t, "Passed!  - Failed: 0\n", out.String())
}

func TestReporter_Header(t *testing.T) {
	var out bytes.Buffer
	r := NewReporterWithWriters(&out, &out)

	r.Header("Running Tests")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if assert.Len(t, lines, 3) {
		assert.Contains(t, lines[1], "Running Tests")
	}
}

func TestReporter_FailureBlock(t *testing.T) {
	var errOut bytes.Buffer
	r := NewReporterWithWriters(&bytes.Buffer{}, &errOut)

	r.FailureBlock("B.Test.csproj failed", "Assert.Equal() Failure\n")

	assert.Contains(t, errOut.String(), "B.Test.csproj failed")
	assert.Contains(t, errOut.String(), "Assert.Equal() Failure")
}

func TestReporter_PrintRunSummary(t *testing.T) {
	var out bytes.Buffer
	r := NewReporterWithWriters(&out, &out)

	r.PrintRunSummary(&domain.RunReport{
		Meta: domain.RunReportMeta{RunID: "0123456789abcdef", TotalProjects: 2, PassedProjects: 1, FailedProjects: 1},
		Projects: []domain.TestProjectResult{
			{Project: "A.Test.csproj", Counts: &domain.TestCounts{Passed: 5, Total: 5}},
			{Project: "B.Test.csproj", ExitCode: 1},
		},
	})

	s := out.String()
	assert.Contains(t, s, "Test Projects")
	assert.Contains(t, s, "01234567")
	assert.Contains(t, s, "A.Test.csproj")
	assert.Contains(t, s, "B.Test.csproj (exit code 1)")
	assert.Contains(t, s, "A.Test.csproj 5/5 passed")
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		visible bool
	}{
		{name: "visible", visible: true},
		{name: "hidden", visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w bytes.Buffer
			bar := NewProgressBarWithWriter(&w, 3, "Removing", tt.visible)

			bar.Increment()
			bar.Increment()
			bar.Finish()

			if !tt.visible {
				assert.Empty(t, w.String())
				return
			}
			assert.Contains(t, w.String(), "Removing")
			assert.Contains(t, w.String(), "3/3")
		})
	}
}

func TestFormatProjectDetails(t *testing.T) {
	result := domain.TestProjectResult{
		Project:     "B.Test.csproj",
		ExitCode:    1,
		Stdout:      "Failed Orders_Total [12 ms]",
		Stderr:      "error: [net8.0] test host crashed",
		Duration:    1500 * time.Millisecond,
		Counts:      &domain.TestCounts{Passed: 3, Failed: 1, Total: 4},
		FailedTests: []string{"Shop.Test.Orders_Total"},
	}

	captured := formatProjectDetails(result, true)
	assert.Contains(t, captured, "3 passed, 1 failed, 0 skipped of 4")
	assert.Contains(t, captured, "• Shop.Test.Orders_Total")
	assert.Contains(t, captured, "B.Test.csproj")
	assert.Contains(t, captured, "Failed Orders_Total")
	// Square brackets are escaped so tview does not treat them as color tags.
	assert.Contains(t, captured, "[net8.0[]")

	streamed := formatProjectDetails(result, false)
	assert.Contains(t, streamed, "Rerun with --ci")
	assert.NotContains(t, streamed, "Orders_Total")
}
