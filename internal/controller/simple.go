package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the student-visible parts of a report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.GradingReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderReport(report, renderOptions{}))

	return nil
}

// ViewReport prints a saved report including instructor-only output.
func (s *SimpleUI) ViewReport(ctx context.Context, report m.GradingReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderReport(report, renderOptions{hidden: true}))

	return nil
}

// DisplaySpec prints the parts and units of a grading spec.
func (s *SimpleUI) DisplaySpec(ctx context.Context, spec m.GradingSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSpec(spec))

	return nil
}

// DisplayDiff prints a regression diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderDiff(diff))

	return nil
}

// DisplaySubmission prints the grading service acknowledgement.
func (s *SimpleUI) DisplaySubmission(ctx context.Context, resp m.FeedbackResponse) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Submitted: %s\n", resp.Message)

	if resp.DetailsURL != "" {
		s.printf("Details: %s\n", resp.DetailsURL)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
