// Package controller renders grading reports and specs for the terminal.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// UI defines how reports, specs and regression diffs are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayReport(ctx context.Context, report m.GradingReport) error
	ViewReport(ctx context.Context, report m.GradingReport) error
	DisplaySpec(ctx context.Context, spec m.GradingSpec) error
	DisplayDiff(ctx context.Context, diff string) error
	DisplaySubmission(ctx context.Context, resp m.FeedbackResponse)
}

// NewUI returns the interactive UI on a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
