package domain

import (
	"fmt"
	"strings"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

const (
	// DiagnosticUnitName names the unscored unit appended to every report.
	DiagnosticUnitName = "Grader feedback"

	diagnosticOutput = "This section is not graded. If any of the results in this report look wrong, " +
		"contact your instructor and include a link to this grading run."
)

// score turns the results accumulated by the run into feedback units.
func (o *orchestrator) score(run *gradingRun) ([]m.FeedbackUnit, error) {
	input := ScoringInput{
		Tests:               run.instructorTests,
		Mutants:             run.studentOnInstructor.mutants,
		MutantsAvailable:    run.studentOnInstructor.mutantsAvailable,
		MutantFailureAdvice: run.studentOnInstructor.advice,
	}

	tests := make([]m.FeedbackUnit, 0)

	for _, part := range run.spec().Parts {
		units, err := ScorePart(part, input)
		if err != nil {
			return nil, err
		}

		tests = append(tests, units...)
	}

	tests = append(tests, diagnosticUnit(run))
	tests = append(tests, informationalUnits(run)...)

	return tests, nil
}

func diagnosticUnit(run *gradingRun) m.FeedbackUnit {
	var hidden strings.Builder

	passed, failed := countTests(run.instructorTests)
	fmt.Fprintf(&hidden, "Instructor tests: %d passed, %d failed\n", passed, failed)
	fmt.Fprintf(&hidden, "Lint: %s\n", run.lint.Status)

	for _, phase := range []struct {
		name  string
		state studentPhase
	}{
		{"Student tests on instructor implementation", run.studentOnInstructor},
		{"Student tests on student implementation", run.studentOnStudent},
	} {
		if !phase.state.ran {
			fmt.Fprintf(&hidden, "%s: not run\n", phase.name)
			continue
		}

		passed, failed := countTests(phase.state.tests)
		fmt.Fprintf(&hidden, "%s: %d passed, %d failed", phase.name, passed, failed)

		if phase.state.mutantsAvailable {
			detected, total := faultCoverage(phase.state.mutants)
			fmt.Fprintf(&hidden, ", %d/%d faults detected", detected, total)
		}

		hidden.WriteString("\n")
	}

	return m.FeedbackUnit{
		Name:         DiagnosticUnitName,
		Output:       diagnosticOutput,
		HiddenOutput: hidden.String(),
		OutputFormat: m.FormatMarkdown,
		Score:        0,
		MaxScore:     0,
	}
}

// informationalUnits renders the unscored sections enabled by configuration.
func informationalUnits(run *gradingRun) []m.FeedbackUnit {
	cfg := run.spec().Build.StudentTests

	var units []m.FeedbackUnit

	if run.studentOnInstructor.ran && cfg.InstructorImpl.RunTests {
		units = append(units, infoUnit(
			"Your tests on the instructor's implementation",
			studentTestsSummary(run.studentOnInstructor, "the instructor's implementation"),
		))
	}

	if run.studentOnInstructor.mutantsAvailable && cfg.InstructorImpl.RunMutation {
		units = append(units, infoUnit(
			"Faults detected on the instructor's implementation",
			faultCoverageSummary(run.studentOnInstructor.mutants),
		))
	}

	if run.studentOnStudent.ran && (cfg.StudentImpl.RunTests || cfg.StudentImpl.ReportBranchCoverage) {
		units = append(units, infoUnit(
			"Your tests on your implementation",
			studentTestsSummary(run.studentOnStudent, "your implementation"),
		))
	}

	if run.studentOnStudent.ran && cfg.StudentImpl.RunMutation {
		summary := run.studentOnStudent.advice
		if run.studentOnStudent.mutantsAvailable {
			summary = faultCoverageSummary(run.studentOnStudent.mutants)
		}

		if summary == "" {
			summary = mutationNotRunNotice
		}

		units = append(units, infoUnit("Faults detected on your implementation", summary))
	}

	return units
}

func infoUnit(name, output string) m.FeedbackUnit {
	return m.FeedbackUnit{
		Name:         name,
		Output:       output,
		OutputFormat: m.FormatMarkdown,
		Score:        0,
		MaxScore:     0,
	}
}

func studentTestsSummary(phase studentPhase, target string) string {
	var out strings.Builder

	passed, failed := countTests(phase.tests)

	switch {
	case phase.advice != "" && len(phase.tests) == 0:
		out.WriteString(phase.advice)
	case failed > 0:
		fmt.Fprintf(&out, "**%d of your %d tests failed against %s.**\n", failed, passed+failed, target)

		if phase.advice != "" {
			out.WriteString("\n")
			out.WriteString(phase.advice)
		}
	default:
		fmt.Fprintf(&out, "**All %d of your tests passed against %s.**\n", passed, target)
	}

	if phase.coverageSummary != "" {
		fmt.Fprintf(&out, "\nCoverage summary:\n```\n%s\n```\n", strings.TrimRight(phase.coverageSummary, "\n"))
	}

	return out.String()
}
