package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gradeline.dev/pkg/gradeline/internal/adapter"
	"gradeline.dev/pkg/gradeline/internal/controller"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// GradeRequest contains the arguments of a grade command.
type GradeRequest struct {
	SpecPath      m.Path
	SolutionDir   m.Path
	SubmissionDir m.Path
	WorkspaceDir  m.Path
	ReportPath    m.Path
	// Submit uploads the report once it is saved.
	Submit     bool
	Submission m.SubmissionRequest
}

// SubmitRequest contains the arguments of a submit command.
type SubmitRequest struct {
	ReportPath      m.Path
	Submission      m.SubmissionRequest
	RegressionRunID string
}

// RegressRequest contains the arguments of a regress command.
type RegressRequest struct {
	Grade        GradeRequest
	ExpectedPath m.Path
}

// Workflow ties the grading pipeline to the stores and the UI.
type Workflow interface {
	Grade(ctx context.Context, req GradeRequest) (m.GradingReport, error)
	Submit(ctx context.Context, req SubmitRequest) error
	View(ctx context.Context, reportPath m.Path) error
	Validate(ctx context.Context, specPath m.Path) error
	Regress(ctx context.Context, req RegressRequest) error
}

type workflow struct {
	adapter.SpecStore
	adapter.ReportStore
	controller.UI
	Orchestrator
	submitter Submitter
}

// NewWorkflow creates a Workflow with the provided dependencies. A nil
// submitter disables report uploads.
func NewWorkflow(
	specStore adapter.SpecStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	submitter Submitter,
) Workflow {
	return &workflow{
		SpecStore:    specStore,
		ReportStore:  reportStore,
		UI:           ui,
		Orchestrator: orchestrator,
		submitter:    submitter,
	}
}

// Grade grades a submission and saves the report. When grading cannot
// complete, a failure report is saved and displayed in its place and the
// error is returned as well.
func (w *workflow) Grade(ctx context.Context, req GradeRequest) (m.GradingReport, error) {
	report, gradeErr := w.grade(ctx, req, false)
	if gradeErr != nil {
		slog.Error("Grading failed", "error", gradeErr)
		report = FailureReport(gradeErr)
	}

	if err := w.SaveReport(ctx, req.ReportPath, report); err != nil {
		return report, fmt.Errorf("save report: %w", err)
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return report, fmt.Errorf("display report: %w", err)
	}

	if req.Submit {
		if err := w.submit(ctx, SubmitArgs{Submission: req.Submission, Report: report}); err != nil {
			return report, errors.Join(gradeErr, err)
		}
	}

	return report, gradeErr
}

func (w *workflow) grade(ctx context.Context, req GradeRequest, regression bool) (m.GradingReport, error) {
	spec, err := w.LoadSpec(ctx, req.SpecPath)
	if err != nil {
		return m.GradingReport{}, fmt.Errorf("load grading spec: %w", err)
	}

	return w.Orchestrator.Grade(ctx, GradeArgs{
		Spec:           spec,
		SolutionDir:    req.SolutionDir,
		SubmissionDir:  req.SubmissionDir,
		WorkspaceDir:   req.WorkspaceDir,
		RegressionTest: regression,
	})
}

// Submit uploads a saved report.
func (w *workflow) Submit(ctx context.Context, req SubmitRequest) error {
	report, err := w.LoadReport(ctx, req.ReportPath)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.submit(ctx, SubmitArgs{
		Submission:      req.Submission,
		Report:          report,
		RegressionRunID: req.RegressionRunID,
	})
}

func (w *workflow) submit(ctx context.Context, args SubmitArgs) error {
	if w.submitter == nil {
		return errors.New("grading service is not configured")
	}

	resp, err := w.submitter.Submit(ctx, args)
	if err != nil {
		return err
	}

	w.DisplaySubmission(ctx, resp)

	return nil
}

// View renders a saved report.
func (w *workflow) View(ctx context.Context, reportPath m.Path) error {
	report, err := w.LoadReport(ctx, reportPath)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.ViewReport(ctx, report)
}

// Validate loads a grading spec and prints its structure.
func (w *workflow) Validate(ctx context.Context, specPath m.Path) error {
	spec, err := w.LoadSpec(ctx, specPath)
	if err != nil {
		return fmt.Errorf("load grading spec: %w", err)
	}

	return w.DisplaySpec(ctx, spec)
}

// Regress grades a submission with artifacts suppressed and compares the
// result with an expected report.
func (w *workflow) Regress(ctx context.Context, req RegressRequest) error {
	expected, err := w.LoadReport(ctx, req.ExpectedPath)
	if err != nil {
		return fmt.Errorf("load expected report: %w", err)
	}

	actual, err := w.grade(ctx, req.Grade, true)
	if err != nil {
		return err
	}

	if req.Grade.ReportPath != "" {
		if err := w.SaveReport(ctx, req.Grade.ReportPath, actual); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	diff, err := DiffReports(expected, actual)
	if err != nil {
		return err
	}

	if err := w.DisplayDiff(ctx, diff); err != nil {
		return fmt.Errorf("display diff: %w", err)
	}

	if diff != "" {
		return ErrRegressionMismatch
	}

	return nil
}
