package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// UIManager handles all user interface concerns (status spinners, messages)
type UIManager interface {
	NewSpinner(description string) ProgressBar

	// Status messages, suppressed in quiet mode
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

// ProgressBar interface abstracts progress bar operations
type ProgressBar interface {
	Describe(description string)
	Advance()
	Finish()
}

// StandardUIManager handles normal UI operations
type StandardUIManager struct {
	quiet bool
	out   io.Writer
}

func NewUIManager(quiet bool) UIManager {
	return &StandardUIManager{
		quiet: quiet,
		out:   os.Stderr,
	}
}

// NewSpinner returns an indeterminate spinner on stderr. It is silent in
// quiet mode and when stderr is not a terminal.
func (ui *StandardUIManager) NewSpinner(description string) ProgressBar {
	if ui.quiet || !isatty.IsTerminal(os.Stderr.Fd()) {
		return &SilentProgressBar{}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(ui.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &VisibleProgressBar{bar: bar}
}

func (ui *StandardUIManager) Printf(format string, args ...interface{}) {
	if !ui.quiet {
		fmt.Fprintf(ui.out, format, args...)
	}
}

func (ui *StandardUIManager) Println(args ...interface{}) {
	if !ui.quiet {
		fmt.Fprintln(ui.out, args...)
	}
}

// VisibleProgressBar wraps the actual progress bar
type VisibleProgressBar struct {
	bar *progressbar.ProgressBar
}

func (v *VisibleProgressBar) Describe(description string) {
	v.bar.Describe(description)
}

func (v *VisibleProgressBar) Advance() {
	_ = v.bar.Add(1)
}

func (v *VisibleProgressBar) Finish() {
	_ = v.bar.Finish()
}

// SilentProgressBar implements a silent progress bar
type SilentProgressBar struct{}

func (s *SilentProgressBar) Describe(description string) {}

func (s *SilentProgressBar) Advance() {}

func (s *SilentProgressBar) Finish() {}
