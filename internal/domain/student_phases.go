package domain

import (
	"context"
	"errors"
	"log/slog"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

// hasMutationUnits reports whether any unit needs mutation results.
func hasMutationUnits(spec m.GradingSpec) bool {
	for _, part := range spec.Parts {
		for _, unit := range part.Units {
			if unit.Kind() == m.UnitMutation {
				return true
			}
		}
	}

	return false
}

// runStudentTestsOnInstructorImpl runs the student's tests against the
// reference implementation and, when they all pass, mutation tests them.
// Failures here only produce advice.
func (o *orchestrator) runStudentTestsOnInstructorImpl(ctx context.Context, run *gradingRun) {
	spec := run.spec()
	cfg := spec.Build.StudentTests.InstructorImpl
	phase := &run.studentOnInstructor
	runMutation := cfg.RunMutation || hasMutationUnits(spec)

	if len(spec.SubmissionFiles.TestFiles) == 0 {
		if runMutation {
			phase.advice = noTestFilesAdvice
		}

		return
	}

	if !cfg.RunTests && !runMutation {
		return
	}

	timeouts := run.timeouts()
	phase.ran = true

	run.log.Visible("Running your tests against the instructor's implementation")

	copied, err := o.resetAndOverlay(ctx, run, spec.SubmissionFiles.TestFiles)
	if err != nil {
		run.log.Warn("Failed to stage your tests: %v", err)
		phase.advice = stagingAdvice(err)

		return
	}

	if copied == 0 {
		run.log.Warn("No test files matched %v", spec.SubmissionFiles.TestFiles)
		phase.advice = noTestFilesAdvice

		return
	}

	if err := run.builder.BuildClean(ctx, timeouts.BuildTimeout()); err != nil {
		o.logToolFailure(run, "Compiling your tests against the instructor's implementation", err)
		phase.advice = compileFailureAdvice(err)

		return
	}

	tests, err := run.builder.Test(ctx, timeouts.StudentTestsTimeout())
	if err != nil {
		o.logToolFailure(run, "Running your tests against the instructor's implementation", err)
		phase.advice = testRunFailureAdvice(err)

		return
	}

	phase.tests = tests

	passed, failed := countTests(tests)
	run.log.Visible("Your tests on the instructor's implementation: %d passed, %d failed", passed, failed)

	if failed > 0 {
		phase.advice = failingTestsAdvice(failingTests(tests))
		return
	}

	if !runMutation {
		return
	}

	run.log.Visible("Running mutation testing on the instructor's implementation")

	mutants, err := run.builder.MutationTest(ctx, timeouts.MutantsTimeout())
	if err != nil {
		logMutationFailure(run, err)
		phase.advice = mutationFailureAdvice(err)
	} else {
		phase.mutants = mutants
		phase.mutantsAvailable = true
	}

	if cfg.ReportMutationCoverage {
		if dir, ok := run.builder.MutationCoverageReportDir(); ok {
			run.derivedArtifacts = append(run.derivedArtifacts, m.ArtifactSpec{
				Name: "Mutation coverage report (instructor implementation)",
				Path: string(dir),
			})
		}
	}
}

// runStudentTestsOnStudentImpl runs the student's tests against their own
// implementation for coverage and fault-coverage reporting. Failures here
// only produce advice.
func (o *orchestrator) runStudentTestsOnStudentImpl(ctx context.Context, run *gradingRun) {
	spec := run.spec()
	cfg := spec.Build.StudentTests.StudentImpl
	phase := &run.studentOnStudent

	if len(spec.SubmissionFiles.TestFiles) == 0 || !cfg.Enabled() {
		return
	}

	timeouts := run.timeouts()
	phase.ran = true

	run.log.Visible("Running your tests against your implementation")

	copied, err := o.resetAndOverlay(ctx, run, spec.SubmissionFiles.TestFiles, spec.SubmissionFiles.Files)
	if err != nil {
		run.log.Warn("Failed to stage your submission: %v", err)
		phase.advice = stagingAdvice(err)

		return
	}

	if copied == 0 {
		phase.advice = noTestFilesAdvice
		return
	}

	if err := run.builder.BuildClean(ctx, timeouts.BuildTimeout()); err != nil {
		o.logToolFailure(run, "Compiling your tests against your implementation", err)
		phase.advice = compileFailureAdvice(err)

		return
	}

	tests, err := run.builder.Test(ctx, timeouts.StudentTestsTimeout())
	if err != nil {
		o.logToolFailure(run, "Running your tests against your implementation", err)
		phase.advice = testRunFailureAdvice(err)

		return
	}

	phase.tests = tests

	passed, failed := countTests(tests)
	run.log.Visible("Your tests on your implementation: %d passed, %d failed", passed, failed)

	if cfg.ReportBranchCoverage {
		o.collectCoverage(ctx, run)
	}

	if failed > 0 {
		if cfg.RunMutation {
			phase.advice = skippedMutationAdvice
		}

		return
	}

	if cfg.RunMutation {
		run.log.Visible("Running mutation testing on your implementation")

		mutants, err := run.builder.MutationTest(ctx, timeouts.MutantsTimeout())
		if err != nil {
			logMutationFailure(run, err)
		} else {
			phase.mutants = mutants
			phase.mutantsAvailable = true
		}
	}

	if cfg.ReportMutationCoverage {
		if dir, ok := run.builder.MutationCoverageReportDir(); ok {
			run.derivedArtifacts = append(run.derivedArtifacts, m.ArtifactSpec{
				Name: "Mutation coverage report (your implementation)",
				Path: string(dir),
			})
		}
	}
}

func (o *orchestrator) collectCoverage(ctx context.Context, run *gradingRun) {
	summary, err := run.builder.CoverageReport(ctx)
	if err != nil {
		if !errors.Is(err, m.ErrUnsupported) {
			run.log.Warn("Coverage report failed: %v", err)
		}

		return
	}

	run.studentOnStudent.coverageSummary = summary

	if dir, ok := run.builder.CoverageReportDir(); ok {
		run.derivedArtifacts = append(run.derivedArtifacts, m.ArtifactSpec{
			Name: "Coverage report",
			Path: string(dir),
		})
	}
}

func logMutationFailure(run *gradingRun, err error) {
	if errors.Is(err, m.ErrUnsupported) {
		run.log.Warn("Mutation testing is not available for this build preset")
		return
	}

	slog.Error("Mutation testing failed", "error", err)
	run.log.Warn("Mutation testing failed: %v", err)
	run.log.Hidden("%s", toolOutput(err))
}
