package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps a terminal progress bar
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar on stderr. A hidden bar renders nothing.
func NewProgressBar(count int, description string, visible bool) *ProgressBar {
	return NewProgressBarWithWriter(os.Stderr, count, description, visible)
}

// NewProgressBarWithWriter creates a progress bar on w
func NewProgressBarWithWriter(w io.Writer, count int, description string, visible bool) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionOnCompletion(func() {
			if visible {
				fmt.Fprint(w, "\n")
			}
		}),
	)

	return &ProgressBar{bar: bar}
}

// Increment advances the bar by one step
func (p *ProgressBar) Increment() {
	_ = p.bar.Add(1)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}
