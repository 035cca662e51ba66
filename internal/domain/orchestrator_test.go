package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gradeline.dev/pkg/gradeline/internal/adapter"
	adaptermocks "gradeline.dev/pkg/gradeline/internal/adapter/mocks"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

type gradingFixture struct {
	args    GradeArgs
	builder *adaptermocks.MockBuilder
	orch    Orchestrator
}

func newGradingFixture(t *testing.T, spec m.GradingSpec) *gradingFixture {
	t.Helper()

	root := t.TempDir()
	solution := filepath.Join(root, "solution")
	submission := filepath.Join(root, "submission")

	writeFile(t, filepath.Join(solution, "src", "calc.py"), "solution")
	writeFile(t, filepath.Join(solution, "tests", "test_calc.py"), "instructor tests")
	writeFile(t, filepath.Join(submission, "src", "calc.py"), "student")
	writeFile(t, filepath.Join(submission, "student_tests", "test_mine.py"), "student tests")

	builder := adaptermocks.NewMockBuilder(t)
	factory := func(workDir m.Path, _ m.BuildConfig) (adapter.Builder, error) {
		return builder, nil
	}

	return &gradingFixture{
		args: GradeArgs{
			Spec:          spec,
			SolutionDir:   m.Path(solution),
			SubmissionDir: m.Path(submission),
			WorkspaceDir:  m.Path(filepath.Join(root, "workspace")),
		},
		builder: builder,
		orch:    NewOrchestrator(adapter.NewLocalWorkspaceFSAdapter(), factory),
	}
}

func regularSpec() m.GradingSpec {
	return m.GradingSpec{
		Build: m.BuildConfig{
			Preset: m.PresetScript,
			Linter: m.LinterConfig{Policy: m.LinterIgnore},
		},
		Parts: []m.GradedPart{{
			Name: "Part 1",
			Units: []m.GradedUnit{
				m.RegularTestUnit{Name: "Addition", Tests: []string{"test_add"}, Points: 10, TestCount: 3},
				m.RegularTestUnit{Name: "Subtraction", Tests: []string{"test_sub"}, Points: 5, TestCount: 1},
			},
		}},
		SubmissionFiles: m.SubmissionFiles{Files: []string{"src"}},
	}
}

func findUnit(t *testing.T, report m.GradingReport, name string) m.FeedbackUnit {
	t.Helper()

	for _, unit := range report.Tests {
		if unit.Name == name {
			return unit
		}
	}

	require.FailNow(t, fmt.Sprintf("unit %q not in report", name))

	return m.FeedbackUnit{}
}

func TestOrchestrator_FullMarks(t *testing.T) {
	f := newGradingFixture(t, regularSpec())
	ctx := context.Background()

	f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil)
	f.builder.EXPECT().Test(ctx, mock.Anything).Return(passing("test_add_one", "test_add_two", "test_add_three", "test_sub"), nil)

	report, err := f.orch.Grade(ctx, f.args)
	require.NoError(t, err)

	assert.InDelta(t, 15, report.Score, 1e-9)
	assert.InDelta(t, 15, report.MaxScore, 1e-9)
	assert.InDelta(t, 10, findUnit(t, report, "Addition").Score, 1e-9)

	diagnostic := findUnit(t, report, DiagnosticUnitName)
	assert.Zero(t, diagnostic.MaxScore)
	assert.Contains(t, diagnostic.HiddenOutput, "Instructor tests: 4 passed, 0 failed")

	assert.NotNil(t, report.Artifacts)
	assert.Empty(t, report.Artifacts)
	assert.Contains(t, report.Output[m.OutputVisible].Output, "Running instructor tests")
}

func TestOrchestrator_BuildFailureDegradesReport(t *testing.T) {
	f := newGradingFixture(t, regularSpec())
	ctx := context.Background()

	f.builder.EXPECT().BuildClean(ctx, mock.Anything).
		Return(&m.BuildError{Phase: "build", Output: "SyntaxError: invalid syntax", Err: errors.New("exit status 1")})

	report, err := f.orch.Grade(ctx, f.args)
	require.NoError(t, err)

	require.Len(t, report.Tests, 2)

	for _, unit := range report.Tests {
		assert.Equal(t, "Build failed, test not run", unit.Output)
		assert.Zero(t, unit.Score)
		assert.Equal(t, "Part 1", unit.Part)
	}

	assert.Zero(t, report.Score)
	assert.InDelta(t, 15, report.MaxScore, 1e-9)
	assert.Empty(t, report.Artifacts)
	assert.Contains(t, report.Output[m.OutputVisible].Output, "SyntaxError: invalid syntax")
}

func TestOrchestrator_TestTimeoutDegradesReport(t *testing.T) {
	f := newGradingFixture(t, regularSpec())
	ctx := context.Background()

	f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil)
	f.builder.EXPECT().Test(ctx, mock.Anything).
		Return(nil, &m.BuildError{Phase: "test", Err: m.ErrTimeout})

	report, err := f.orch.Grade(ctx, f.args)
	require.NoError(t, err)

	assert.Equal(t, "Instructor tests failed to run, test not run", findUnit(t, report, "Addition").Output)
	assert.Contains(t, report.Output[m.OutputVisible].Output, "Instructor tests timed out")
}

func TestOrchestrator_LintPolicies(t *testing.T) {
	failedLint := m.LintResult{Status: m.StatusFail, Output: "E501 line too long", OutputFormat: m.FormatText}

	t.Run("fail stops the run", func(t *testing.T) {
		spec := regularSpec()
		spec.Build.Linter.Policy = m.LinterFail
		f := newGradingFixture(t, spec)
		ctx := context.Background()

		f.builder.EXPECT().Lint(ctx).Return(failedLint, nil)

		report, err := f.orch.Grade(ctx, f.args)
		require.NoError(t, err)

		assert.Equal(t, failedLint, report.Lint)
		assert.Equal(t, "Linting failed, test not run", findUnit(t, report, "Subtraction").Output)
		assert.Zero(t, report.Score)
	})

	t.Run("warn keeps grading", func(t *testing.T) {
		spec := regularSpec()
		spec.Build.Linter.Policy = m.LinterWarn
		f := newGradingFixture(t, spec)
		ctx := context.Background()

		f.builder.EXPECT().Lint(ctx).Return(failedLint, nil)
		f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil)
		f.builder.EXPECT().Test(ctx, mock.Anything).Return(passing("test_sub"), nil)

		report, err := f.orch.Grade(ctx, f.args)
		require.NoError(t, err)

		assert.Equal(t, m.StatusFail, report.Lint.Status)
		assert.InDelta(t, 5, report.Score, 1e-9)
		assert.Contains(t, report.Output[m.OutputVisible].Output, "WARNING: Linting failed")
	})
}

func TestOrchestrator_ConfigErrorIsFatal(t *testing.T) {
	spec := regularSpec()
	spec.Parts[0].Units = append(spec.Parts[0].Units, m.MutationTestUnit{Name: "Broken", Locations: []string{"src"}})
	f := newGradingFixture(t, spec)

	_, err := f.orch.Grade(context.Background(), f.args)
	require.Error(t, err)
	assert.True(t, m.IsConfigError(err))
	assert.Contains(t, err.Error(), `part "Part 1"`)

	f.builder.AssertNotCalled(t, "BuildClean", mock.Anything, mock.Anything)
	assert.NoDirExists(t, string(f.args.WorkspaceDir))
}

func mutationSpec() m.GradingSpec {
	spec := regularSpec()
	spec.SubmissionFiles.TestFiles = []string{"student_tests"}
	spec.Build.StudentTests.InstructorImpl = m.InstructorImplConfig{RunTests: true, RunMutation: true}
	spec.Parts = append(spec.Parts, m.GradedPart{
		Name: "Testing",
		Units: []m.GradedUnit{
			m.MutationTestUnit{
				Name:        "Fault detection",
				Locations:   []string{"src/calc.py"},
				BreakPoints: []m.BreakPoint{{MinimumMutantsDetected: 2, PointsToAward: 4}},
			},
		},
	})

	return spec
}

func TestOrchestrator_MutationScoring(t *testing.T) {
	f := newGradingFixture(t, mutationSpec())
	ctx := context.Background()

	f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil).Times(2)
	f.builder.EXPECT().Test(ctx, mock.Anything).
		Return(passing("test_add_1", "test_add_2", "test_add_3", "test_sub"), nil).Once()
	f.builder.EXPECT().Test(ctx, mock.Anything).Return(passing("test_mine"), nil).Once()
	f.builder.EXPECT().MutationTest(ctx, mock.Anything).Return(mutants("src/calc.py:3:3", 2, 1), nil)

	report, err := f.orch.Grade(ctx, f.args)
	require.NoError(t, err)

	unit := findUnit(t, report, "Fault detection")
	assert.InDelta(t, 4, unit.Score, 1e-9)
	assert.Equal(t, "Testing", unit.Part)
	assert.InDelta(t, 19, report.Score, 1e-9)

	coverage := findUnit(t, report, "Faults detected on the instructor's implementation")
	assert.Zero(t, coverage.MaxScore)
	assert.Contains(t, coverage.Output, "**Faults detected: 2 / 3")
}

func TestOrchestrator_FailingStudentTestsSkipMutation(t *testing.T) {
	f := newGradingFixture(t, mutationSpec())
	ctx := context.Background()

	f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil).Times(2)
	f.builder.EXPECT().Test(ctx, mock.Anything).
		Return(passing("test_add_1", "test_add_2", "test_add_3", "test_sub"), nil).Once()
	f.builder.EXPECT().Test(ctx, mock.Anything).Return(failing("test_mine"), nil).Once()

	report, err := f.orch.Grade(ctx, f.args)
	require.NoError(t, err)

	unit := findUnit(t, report, "Fault detection")
	assert.Zero(t, unit.Score)
	assert.InDelta(t, 4, unit.MaxScore, 1e-9)
	assert.Contains(t, unit.Output, "test_mine")
	assert.Contains(t, unit.Output, resubmitInstruction)
}

func TestOrchestrator_NoStudentTestFiles(t *testing.T) {
	spec := mutationSpec()
	spec.SubmissionFiles.TestFiles = nil
	f := newGradingFixture(t, spec)
	ctx := context.Background()

	f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil).Once()
	f.builder.EXPECT().Test(ctx, mock.Anything).Return(passing("test_sub"), nil).Once()

	report, err := f.orch.Grade(ctx, f.args)
	require.NoError(t, err)

	assert.Equal(t, noTestFilesAdvice, findUnit(t, report, "Fault detection").Output)
}

func TestOrchestrator_Artifacts(t *testing.T) {
	spec := regularSpec()
	spec.Build.Artifacts = []m.ArtifactSpec{
		{Name: "Solution sources", Path: "src"},
		{Name: "Missing report", Path: "reports/missing.html"},
	}

	t.Run("collects existing artifacts", func(t *testing.T) {
		f := newGradingFixture(t, spec)
		ctx := context.Background()

		f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil)
		f.builder.EXPECT().Test(ctx, mock.Anything).Return(passing("test_sub"), nil)

		report, err := f.orch.Grade(ctx, f.args)
		require.NoError(t, err)

		require.Len(t, report.Artifacts, 1)
		assert.Equal(t, "Solution sources", report.Artifacts[0].Name)
		assert.Equal(t, m.Path(filepath.Join(string(f.args.WorkspaceDir), "src")), report.Artifacts[0].Path)
		assert.Contains(t, report.Output[m.OutputVisible].Output, `WARNING: Artifact "Missing report" not found`)
	})

	t.Run("regression runs suppress artifacts", func(t *testing.T) {
		f := newGradingFixture(t, spec)
		f.args.RegressionTest = true
		ctx := context.Background()

		f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil)
		f.builder.EXPECT().Test(ctx, mock.Anything).Return(passing("test_sub"), nil)

		report, err := f.orch.Grade(ctx, f.args)
		require.NoError(t, err)

		assert.NotNil(t, report.Artifacts)
		assert.Empty(t, report.Artifacts)
	})
}

func TestOrchestrator_StagingFailureIsFatal(t *testing.T) {
	spec := regularSpec()
	spec.SubmissionFiles.Files = []string{"src/[unterminated"}
	f := newGradingFixture(t, spec)

	_, err := f.orch.Grade(context.Background(), f.args)
	require.Error(t, err)
	assert.True(t, m.IsConfigError(err))
}

func TestFailureReport(t *testing.T) {
	report := FailureReport(&m.ConfigError{Reason: "no parts"})

	assert.Contains(t, report.Output[m.OutputVisible].Output, "grading configuration is invalid")
	assert.NotNil(t, report.Tests)
	assert.NotNil(t, report.Artifacts)
	assert.Zero(t, report.MaxScore)
}

func TestOrchestrator_CompileFailureOnInstructorImplBecomesAdvice(t *testing.T) {
	f := newGradingFixture(t, mutationSpec())
	ctx := context.Background()

	f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil).Once()
	f.builder.EXPECT().BuildClean(ctx, mock.Anything).
		Return(&m.BuildError{Phase: "build", Output: "test_mine.py:3: undefined name 'helper'"}).Once()
	f.builder.EXPECT().Test(ctx, mock.Anything).
		Return(passing("test_add_1", "test_add_2", "test_add_3", "test_sub"), nil).Once()

	report, err := f.orch.Grade(ctx, f.args)
	require.NoError(t, err)

	unit := findUnit(t, report, "Fault detection")
	assert.Zero(t, unit.Score)
	assert.InDelta(t, 4, unit.MaxScore, 1e-9)
	assert.Contains(t, unit.Output, "Your tests could not be compiled")
	assert.Contains(t, unit.Output, "undefined name 'helper'")
	assert.InDelta(t, 15, report.Score, 1e-9)

	f.builder.AssertNotCalled(t, "MutationTest", mock.Anything, mock.Anything)
}

func TestOrchestrator_MutationFailureIsNotFatal(t *testing.T) {
	f := newGradingFixture(t, mutationSpec())
	ctx := context.Background()
	mutationErr := &m.BuildError{Phase: "mutation", Err: m.ErrTimeout}

	f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil).Times(2)
	f.builder.EXPECT().Test(ctx, mock.Anything).
		Return(passing("test_add_1", "test_add_2", "test_add_3", "test_sub"), nil).Once()
	f.builder.EXPECT().Test(ctx, mock.Anything).Return(passing("test_mine"), nil).Once()
	f.builder.EXPECT().MutationTest(ctx, mock.Anything).Return(nil, mutationErr)

	report, err := f.orch.Grade(ctx, f.args)
	require.NoError(t, err)

	unit := findUnit(t, report, "Fault detection")
	assert.Zero(t, unit.Score)
	assert.InDelta(t, 4, unit.MaxScore, 1e-9)
	assert.Equal(t, mutationFailureAdvice(mutationErr), unit.Output)
	assert.InDelta(t, 15, report.Score, 1e-9)
	assert.Contains(t, report.Output[m.OutputVisible].Output, "WARNING: Mutation testing failed")
}

func studentImplSpec() m.GradingSpec {
	spec := regularSpec()
	spec.SubmissionFiles.TestFiles = []string{"student_tests"}
	spec.Build.StudentTests.StudentImpl = m.StudentImplConfig{
		RunTests:               true,
		ReportBranchCoverage:   true,
		RunMutation:            true,
		ReportMutationCoverage: true,
	}

	return spec
}

func expectInstructorRun(ctx context.Context, f *gradingFixture) {
	f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil).Once()
	f.builder.EXPECT().Test(ctx, mock.Anything).
		Return(passing("test_add_1", "test_add_2", "test_add_3", "test_sub"), nil).Once()
}

func TestOrchestrator_StudentImplReportsCoverageAndFaults(t *testing.T) {
	f := newGradingFixture(t, studentImplSpec())
	ctx := context.Background()
	coverageDir := t.TempDir()
	mutationDir := t.TempDir()

	expectInstructorRun(ctx, f)
	f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil).Once()
	f.builder.EXPECT().Test(ctx, mock.Anything).Return(passing("test_mine"), nil).Once()
	f.builder.EXPECT().CoverageReport(ctx).Return("src/calc.py   90%\n", nil)
	f.builder.EXPECT().CoverageReportDir().Return(m.Path(coverageDir), true)
	f.builder.EXPECT().MutationTest(ctx, mock.Anything).Return(mutants("src/calc.py:3:3", 1, 1), nil)
	f.builder.EXPECT().MutationCoverageReportDir().Return(m.Path(mutationDir), true)

	report, err := f.orch.Grade(ctx, f.args)
	require.NoError(t, err)

	tests := findUnit(t, report, "Your tests on your implementation")
	assert.Zero(t, tests.MaxScore)
	assert.Contains(t, tests.Output, "All 1 of your tests passed against your implementation")
	assert.Contains(t, tests.Output, "src/calc.py   90%")

	faults := findUnit(t, report, "Faults detected on your implementation")
	assert.Contains(t, faults.Output, "**Faults detected: 1 / 2")

	assert.ElementsMatch(t, []m.Artifact{
		{Name: "Coverage report", Path: m.Path(coverageDir)},
		{Name: "Mutation coverage report (your implementation)", Path: m.Path(mutationDir)},
	}, report.Artifacts)

	diagnostic := findUnit(t, report, DiagnosticUnitName)
	assert.Contains(t, diagnostic.HiddenOutput, "Student tests on student implementation: 1 passed, 0 failed, 1/2 faults detected")
	assert.InDelta(t, 15, report.Score, 1e-9)
}

func TestOrchestrator_StudentImplFailingTestsSkipMutation(t *testing.T) {
	f := newGradingFixture(t, studentImplSpec())
	ctx := context.Background()

	expectInstructorRun(ctx, f)
	f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil).Once()
	f.builder.EXPECT().Test(ctx, mock.Anything).Return(failing("test_mine"), nil).Once()
	f.builder.EXPECT().CoverageReport(ctx).Return("", m.ErrUnsupported)

	report, err := f.orch.Grade(ctx, f.args)
	require.NoError(t, err)

	assert.Contains(t, findUnit(t, report, "Your tests on your implementation").Output,
		"1 of your 1 tests failed against your implementation")
	assert.Equal(t, skippedMutationAdvice, findUnit(t, report, "Faults detected on your implementation").Output)
	assert.Empty(t, report.Artifacts)
	assert.InDelta(t, 15, report.Score, 1e-9)

	f.builder.AssertNotCalled(t, "MutationTest", mock.Anything, mock.Anything)
	f.builder.AssertNotCalled(t, "MutationCoverageReportDir")
}

func TestOrchestrator_StudentImplToolFailuresBecomeAdvice(t *testing.T) {
	tests := []struct {
		name   string
		expect func(ctx context.Context, f *gradingFixture)
		advice string
	}{
		{
			name: "build failure",
			expect: func(ctx context.Context, f *gradingFixture) {
				f.builder.EXPECT().BuildClean(ctx, mock.Anything).
					Return(&m.BuildError{Phase: "build", Output: "SyntaxError: invalid syntax"}).Once()
			},
			advice: "Your tests could not be compiled",
		},
		{
			name: "test run failure",
			expect: func(ctx context.Context, f *gradingFixture) {
				f.builder.EXPECT().BuildClean(ctx, mock.Anything).Return(nil).Once()
				f.builder.EXPECT().Test(ctx, mock.Anything).
					Return(nil, &m.BuildError{Phase: "test", Err: m.ErrTimeout}).Once()
			},
			advice: "Your tests could not be run",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGradingFixture(t, studentImplSpec())
			ctx := context.Background()

			expectInstructorRun(ctx, f)
			tt.expect(ctx, f)

			report, err := f.orch.Grade(ctx, f.args)
			require.NoError(t, err)

			assert.Contains(t, findUnit(t, report, "Your tests on your implementation").Output, tt.advice)
			assert.Contains(t, findUnit(t, report, "Faults detected on your implementation").Output, tt.advice)
			assert.InDelta(t, 15, report.Score, 1e-9)

			f.builder.AssertNotCalled(t, "MutationTest", mock.Anything, mock.Anything)
			f.builder.AssertNotCalled(t, "CoverageReport", mock.Anything)
		})
	}
}
