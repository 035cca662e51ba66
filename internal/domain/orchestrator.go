package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gradeline.dev/pkg/gradeline/internal/adapter"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// GradeArgs describes one grading run.
type GradeArgs struct {
	Spec          m.GradingSpec
	SolutionDir   m.Path
	SubmissionDir m.Path
	WorkspaceDir  m.Path
	// RegressionTest suppresses artifacts in the final report.
	RegressionTest bool
}

// Orchestrator runs the grading pipeline: stage, lint, instructor tests,
// student test phases, scoring and artifact collection. Phases run strictly
// in sequence because each one rewrites the shared workspace.
type Orchestrator interface {
	// Grade always returns a well-formed report unless the grading spec is
	// unusable or the workspace cannot be staged, in which case it returns
	// an error.
	Grade(ctx context.Context, args GradeArgs) (m.GradingReport, error)
}

type orchestrator struct {
	fsAdapter adapter.WorkspaceFSAdapter
	builders  adapter.BuilderFactory
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter and builder factory.
func NewOrchestrator(fsAdapter adapter.WorkspaceFSAdapter, builders adapter.BuilderFactory) Orchestrator {
	return &orchestrator{
		fsAdapter: fsAdapter,
		builders:  builders,
	}
}

// studentPhase is what a student-test phase leaves for scoring.
type studentPhase struct {
	ran              bool
	tests            []m.TestResult
	advice           string
	mutants          []m.MutantResult
	mutantsAvailable bool
	coverageSummary  string
}

// gradingRun is the mutable state of a single Grade call.
type gradingRun struct {
	args    GradeArgs
	builder adapter.Builder
	log     *RunLog

	lint                m.LintResult
	instructorTests     []m.TestResult
	studentOnInstructor studentPhase
	studentOnStudent    studentPhase
	derivedArtifacts    []m.ArtifactSpec
}

func (r *gradingRun) spec() m.GradingSpec {
	return r.args.Spec
}

func (r *gradingRun) timeouts() m.Timeouts {
	return r.args.Spec.Build.Timeouts.WithDefaults()
}

func (o *orchestrator) Grade(ctx context.Context, args GradeArgs) (m.GradingReport, error) {
	start := time.Now()

	if err := checkUnits(args.Spec); err != nil {
		slog.Error("Grading spec rejected", "error", err)
		return m.GradingReport{}, err
	}

	builder, err := o.builders(args.WorkspaceDir, args.Spec.Build)
	if err != nil {
		return m.GradingReport{}, err
	}

	run := &gradingRun{
		args:    args,
		builder: builder,
		log:     NewRunLog(),
		lint:    m.LintResult{Status: m.StatusPass, Output: "Linter not run", OutputFormat: m.FormatText},
	}

	report, err := o.runPhases(ctx, run)
	if err != nil {
		slog.Error("Grading run aborted", "error", err)
		return m.GradingReport{}, err
	}

	report.ExecutionTimeMs = time.Since(start).Milliseconds()
	slog.Info("Grading run finished", "score", report.Score, "max_score", report.MaxScore, "duration", time.Since(start))

	return report, nil
}

// checkUnits resolves the max score of every unit so an unusable spec fails
// before any phase touches the workspace.
func checkUnits(spec m.GradingSpec) error {
	for _, part := range spec.Parts {
		for _, unit := range part.Units {
			if _, err := m.MaxScore(unit); err != nil {
				return fmt.Errorf("part %q: %w", part.Name, err)
			}
		}
	}

	return nil
}

func (o *orchestrator) runPhases(ctx context.Context, run *gradingRun) (m.GradingReport, error) {
	spec := run.spec()

	run.log.Visible("Staging submission against the reference solution")

	if _, err := o.resetAndOverlay(ctx, run, spec.SubmissionFiles.Files); err != nil {
		return m.GradingReport{}, fmt.Errorf("stage workspace: %w", err)
	}

	if venv := spec.Build.Venv; venv != nil {
		run.log.Visible("Setting up build environment")

		if err := run.builder.SetupVenv(ctx, venv.Dir, venv.CacheKey); err != nil {
			o.logToolFailure(run, "Environment setup", err)
			return o.degradedReport(run, "Environment setup failed, test not run")
		}
	}

	if stop := o.runLint(ctx, run); stop {
		return o.degradedReport(run, "Linting failed, test not run")
	}

	if spec.Build.InstructorTestsEnabled() {
		if reason, err := o.runInstructorTests(ctx, run); err != nil {
			if m.IsConfigError(err) {
				return m.GradingReport{}, err
			}

			return o.degradedReport(run, reason)
		}
	}

	o.runStudentTestsOnInstructorImpl(ctx, run)
	o.runStudentTestsOnStudentImpl(ctx, run)

	tests, err := o.score(run)
	if err != nil {
		return m.GradingReport{}, err
	}

	artifacts := o.collectArtifacts(ctx, run)

	return m.GradingReport{
		Lint:      run.lint,
		Output:    run.log.Output(),
		Tests:     tests,
		Score:     m.TotalScore(tests),
		MaxScore:  m.TotalMaxScore(tests),
		Artifacts: artifacts,
	}, nil
}

// runLint records the lint result and reports whether the run must stop.
func (o *orchestrator) runLint(ctx context.Context, run *gradingRun) bool {
	policy := run.spec().Build.Linter.Policy
	if policy == m.LinterIgnore {
		run.lint = m.LintResult{Status: m.StatusPass, Output: "Linter disabled", OutputFormat: m.FormatText}
		return false
	}

	run.log.Visible("Linting submission")

	lint, err := run.builder.Lint(ctx)
	if err != nil {
		lint = m.LintResult{Status: m.StatusFail, Output: toolOutput(err), OutputFormat: m.FormatText}
	}

	run.lint = lint

	if lint.Status != m.StatusFail {
		run.log.Visible("Linting passed")
		return false
	}

	if policy == m.LinterFail {
		run.log.Visible("Linting failed and the linter policy is %q, tests will not run", policy)
		return true
	}

	run.log.Warn("Linting failed, continuing because the linter policy is %q", policy)

	return false
}

// runInstructorTests builds the submission against the solution and runs
// the instructor tests. On failure it returns the placeholder text for the
// degraded report.
func (o *orchestrator) runInstructorTests(ctx context.Context, run *gradingRun) (string, error) {
	timeouts := run.timeouts()

	run.log.Visible("Building submission")

	if _, err := o.resetAndOverlay(ctx, run, run.spec().SubmissionFiles.Files); err != nil {
		run.log.Warn("Failed to stage submission: %v", err)
		return "Workspace staging failed, test not run", err
	}

	if err := run.builder.BuildClean(ctx, timeouts.BuildTimeout()); err != nil {
		o.logToolFailure(run, "Build", err)
		return "Build failed, test not run", err
	}

	run.log.Visible("Running instructor tests")

	tests, err := run.builder.Test(ctx, timeouts.InstructorTestsTimeout())
	if err != nil {
		o.logToolFailure(run, "Instructor tests", err)
		return "Instructor tests failed to run, test not run", err
	}

	passed, failed := countTests(tests)
	run.log.Visible("Instructor tests: %d passed, %d failed", passed, failed)
	run.instructorTests = tests

	return "", nil
}

// degradedReport is the terminal report for a run that stopped before
// scoring: every unit is listed with a zero score and the placeholder.
func (o *orchestrator) degradedReport(run *gradingRun, placeholder string) (m.GradingReport, error) {
	tests := make([]m.FeedbackUnit, 0)

	for _, part := range run.spec().Parts {
		for _, unit := range part.Units {
			maxScore, err := m.MaxScore(unit)
			if err != nil {
				return m.GradingReport{}, err
			}

			tests = append(tests, m.FeedbackUnit{
				Name:              unit.UnitName(),
				Output:            placeholder,
				OutputFormat:      m.FormatText,
				Score:             0,
				MaxScore:          maxScore,
				Part:              part.Name,
				HideUntilReleased: part.HideUntilReleased,
			})
		}
	}

	return m.GradingReport{
		Lint:      run.lint,
		Output:    run.log.Output(),
		Tests:     tests,
		Score:     0,
		MaxScore:  m.TotalMaxScore(tests),
		Artifacts: []m.Artifact{},
	}, nil
}

func (o *orchestrator) logToolFailure(run *gradingRun, phase string, err error) {
	var buildErr *m.BuildError
	if errors.As(err, &buildErr) && buildErr.Timeout() {
		run.log.Visible("%s timed out", phase)
	} else {
		run.log.Visible("%s failed: %v", phase, err)
	}

	if output := toolOutput(err); output != "" {
		run.log.Visible("%s", output)
	}
}

// toolOutput extracts captured tool output from a builder error.
func toolOutput(err error) string {
	var buildErr *m.BuildError
	if errors.As(err, &buildErr) && buildErr.Output != "" {
		return buildErr.Output
	}

	if err == nil {
		return ""
	}

	return err.Error()
}

func countTests(tests []m.TestResult) (passed, failed int) {
	for _, test := range tests {
		if test.Passed() {
			passed++
		} else {
			failed++
		}
	}

	return passed, failed
}

func failingTests(tests []m.TestResult) []m.TestResult {
	var failing []m.TestResult

	for _, test := range tests {
		if !test.Passed() {
			failing = append(failing, test)
		}
	}

	return failing
}

// FailureReport is the structured report for a run that could not grade at
// all. It keeps the student-facing layer from ever seeing a bare error.
func FailureReport(err error) m.GradingReport {
	message := fmt.Sprintf("Grading failed: %v\nPlease contact your instructor; this is not a problem with your submission.", err)
	if m.IsConfigError(err) {
		message = fmt.Sprintf("The assignment's grading configuration is invalid: %v\nPlease contact your instructor.", err)
	}

	return m.GradingReport{
		Lint: m.LintResult{Status: m.StatusFail, Output: "Linter not run", OutputFormat: m.FormatText},
		Output: m.ReportOutput{
			m.OutputVisible: {Output: message, OutputFormat: m.FormatText},
			m.OutputHidden:  {Output: message, OutputFormat: m.FormatText},
		},
		Tests:     []m.FeedbackUnit{},
		Artifacts: []m.Artifact{},
	}
}
