package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"dotpipe/internal/domain"
)

const bannerWidth = 61

// Reporter prints human-readable diagnostics
type Reporter struct {
	out io.Writer
	err io.Writer
}

// NewReporter creates a Reporter on stdout/stderr
func NewReporter() *Reporter {
	return NewReporterWithWriters(os.Stdout, os.Stderr)
}

// NewReporterWithWriters creates a Reporter on the given writers
func NewReporterWithWriters(out, err io.Writer) *Reporter {
	return &Reporter{out: out, err: err}
}

// Info prints an informational line
func (r *Reporter) Info(format string, args ...interface{}) {
	color.New(color.FgWhite).Fprintf(r.out, format+"\n", args...)
}

// Success prints a success line
func (r *Reporter) Success(format string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(r.out, "✓ "+format+"\n", args...)
}

// Warning prints a warning line
func (r *Reporter) Warning(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(r.err, "! "+format+"\n", args...)
}

// Error prints an error line
func (r *Reporter) Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(r.err, "✗ "+format+"\n", args...)
}

// Output replays captured subprocess output verbatim
func (r *Reporter) Output(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	fmt.Fprint(r.out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(r.out)
	}
}

// Header prints a boxed section title
func (r *Reporter) Header(title string) {
	c := color.New(color.FgCyan)
	pad := bannerWidth - len([]rune(title))
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	c.Fprintf(r.out, "\n╔%s╗\n", strings.Repeat("═", bannerWidth))
	c.Fprintf(r.out, "║%s%s%s║\n", strings.Repeat(" ", left), title, strings.Repeat(" ", pad-left))
	c.Fprintf(r.out, "╚%s╝\n\n", strings.Repeat("═", bannerWidth))
}

// FailureBlock prints a framed error block with a title and captured output
func (r *Reporter) FailureBlock(title, body string) {
	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("9")).
		Padding(0, 1)

	content := color.RedString("✗ %s", title)
	body = strings.TrimRight(body, "\n")
	if body != "" {
		content += "\n\n" + body
	}
	fmt.Fprintln(r.err, style.Render(content))
}

// PrintRunSummary prints the statistics table for a stored per-project run
func (r *Reporter) PrintRunSummary(report *domain.RunReport) {
	meta := report.Meta
	r.Header("Test Execution Statistics")

	row := func(label string, value interface{}, c *color.Color) {
		fmt.Fprintf(r.out, "│ %-31s │ ", label)
		c.Fprintf(r.out, "%-27v", value)
		fmt.Fprintln(r.out, " │")
	}
	sep := "├─────────────────────────────────┼─────────────────────────────┤"
	white := color.New(color.FgWhite)

	fmt.Fprintln(r.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	row("Test Projects", meta.TotalProjects, white)
	fmt.Fprintln(r.out, sep)
	row("Passed Projects", meta.PassedProjects, color.New(color.FgGreen))
	fmt.Fprintln(r.out, sep)
	row("Failed Projects", meta.FailedProjects, color.New(color.FgRed))
	fmt.Fprintln(r.out, sep)
	row("Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), white)
	fmt.Fprintln(r.out, sep)
	row("Run", shortID(meta.RunID), white)
	fmt.Fprintln(r.out, "└─────────────────────────────────┴─────────────────────────────┘")

	for i, p := range report.Projects {
		connector := "├──"
		if i == len(report.Projects)-1 {
			connector = "└──"
		}
		if p.Success() {
			color.New(color.FgGreen).Fprintf(r.out, "%s ✓ %s%s\n", connector, p.Project, countsSuffix(p.Counts))
		} else {
			color.New(color.FgRed).Fprintf(r.out, "%s ✗ %s (exit code %d)%s\n", connector, p.Project, p.ExitCode, countsSuffix(p.Counts))
		}
	}
}

// PrintList prints a tree of paths
func (r *Reporter) PrintList(title string, items []string) {
	color.New(color.FgGreen).Fprintf(r.out, "%s\n\n", title)
	for i, item := range items {
		connector := "├──"
		if i == len(items)-1 {
			connector = "└──"
		}
		color.New(color.FgCyan).Fprintf(r.out, "%s %s\n", connector, item)
	}
}

func countsSuffix(c *domain.TestCounts) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf(" %d/%d passed", c.Passed, c.Total)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
