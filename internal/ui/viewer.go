package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"dotpipe/internal/domain"
)

// FailureViewer displays the failed projects of a stored run in an interactive TUI
type FailureViewer struct {
	reporter *Reporter
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(reporter *Reporter) *FailureViewer {
	return &FailureViewer{reporter: reporter}
}

// View opens the viewer, or prints a success line when the run had no failures
func (fv *FailureViewer) View(report *domain.RunReport) error {
	failures := report.Failures()
	if len(failures) == 0 {
		fv.reporter.Success("No failed test projects in the last run")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, f := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(f.Project)), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Failed projects (%d of %d) | ↑↓ navigate, → view output, ← back, q to exit ",
			len(failures), report.Meta.TotalProjects))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			detailsView.SetText(formatProjectDetails(failures[index], report.Meta.Captured))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	updateDetails()

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)
	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatProjectDetails renders one failed project using tview color tags
func formatProjectDetails(result domain.TestProjectResult, captured bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", tview.Escape(result.Project))
	fmt.Fprintf(&b, "[cyan]Exit code:[white] %d\n", result.ExitCode)
	fmt.Fprintf(&b, "[cyan]Duration:[white] %s\n", result.Duration.Round(time.Millisecond))
	if c := result.Counts; c != nil {
		fmt.Fprintf(&b, "[cyan]Tests:[white] %d passed, %d failed, %d skipped of %d\n", c.Passed, c.Failed, c.Skipped, c.Total)
	}
	b.WriteString("\n")

	if !captured {
		b.WriteString("[gray]Output was streamed to the terminal during this run. Rerun with --ci to capture it.[white]\n")
		return b.String()
	}

	if len(result.FailedTests) > 0 {
		b.WriteString("[yellow]Failed tests:[white]\n")
		for _, name := range result.FailedTests {
			fmt.Fprintf(&b, "  • %s\n", tview.Escape(name))
		}
		b.WriteString("\n")
	}
	if strings.TrimSpace(result.Stderr) != "" {
		fmt.Fprintf(&b, "[yellow]Error output:[white]\n%s\n\n", tview.Escape(result.Stderr))
	}
	if strings.TrimSpace(result.Stdout) != "" {
		fmt.Fprintf(&b, "[yellow]Output:[white]\n%s\n", tview.Escape(result.Stdout))
	}
	return b.String()
}
