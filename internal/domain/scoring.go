package domain

import (
	"fmt"
	"strings"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

const (
	hiddenOutputNotice   = "The output of this test is hidden by your instructor."
	mutationNotRunNotice = "Mutation testing did not run, so no faults could be detected by your tests. Check the other feedback sections for the reason."
	passGlyph            = "✅"
	failGlyph            = "❌"
)

// ScoringInput is what one grading run feeds into the scoring engine.
type ScoringInput struct {
	// Tests are the instructor test results for the submission.
	Tests []m.TestResult
	// Mutants are the mutation results; only meaningful when MutantsAvailable.
	Mutants []m.MutantResult
	// MutantsAvailable is false when the mutation phase was skipped or failed.
	MutantsAvailable bool
	// MutantFailureAdvice explains why mutants are unavailable.
	MutantFailureAdvice string
}

// ScorePart scores every unit of part.
func ScorePart(part m.GradedPart, input ScoringInput) ([]m.FeedbackUnit, error) {
	units := make([]m.FeedbackUnit, 0, len(part.Units))

	for _, unit := range part.Units {
		feedback, err := ScoreUnit(unit, input)
		if err != nil {
			return nil, fmt.Errorf("score part %q: %w", part.Name, err)
		}

		feedback.Part = part.Name
		feedback.HideUntilReleased = part.HideUntilReleased
		units = append(units, feedback)
	}

	return units, nil
}

// ScoreUnit scores a single unit against the run's results.
func ScoreUnit(unit m.GradedUnit, input ScoringInput) (m.FeedbackUnit, error) {
	switch u := unit.(type) {
	case m.RegularTestUnit:
		return scoreRegularUnit(u, input.Tests), nil
	case m.MutationTestUnit:
		return scoreMutationUnit(u, input)
	default:
		return m.FeedbackUnit{}, &m.ConfigError{Reason: fmt.Sprintf("unrecognized graded unit %T", unit)}
	}
}

func relevantTests(unit m.RegularTestUnit, results []m.TestResult) []m.TestResult {
	var relevant []m.TestResult

	for _, result := range results {
		for _, prefix := range unit.Tests {
			if strings.HasPrefix(result.Name, prefix) {
				relevant = append(relevant, result)
				break
			}
		}
	}

	return relevant
}

// scoreRegularUnit compares passing tests against the configured TestCount,
// not the number of matched results: a test that never registered counts
// as not passing.
func scoreRegularUnit(unit m.RegularTestUnit, results []m.TestResult) m.FeedbackUnit {
	relevant := relevantTests(unit, results)

	passing := 0
	for _, result := range relevant {
		if result.Passed() {
			passing++
		}
	}

	score := 0.0

	switch {
	case unit.AllowPartialCredit && unit.TestCount > 0:
		score = float64(passing) / float64(unit.TestCount) * unit.Points
	case passing == unit.TestCount:
		score = unit.Points
	}

	listing := renderTestListing(unit, relevant, passing)

	feedback := m.FeedbackUnit{
		Name:         unit.Name,
		Output:       listing,
		OutputFormat: m.FormatMarkdown,
		Score:        clampScore(score, unit.Points),
		MaxScore:     unit.Points,
	}

	if unit.HideOutput {
		feedback.Output = hiddenOutputNotice
		feedback.HiddenOutput = listing
	}

	return feedback
}

func renderTestListing(unit m.RegularTestUnit, relevant []m.TestResult, passing int) string {
	var out strings.Builder

	fmt.Fprintf(&out, "**Tests passed: %d / %d**\n", passing, unit.TestCount)

	if len(relevant) != unit.TestCount {
		fmt.Fprintf(&out, "\nExpected %d tests but %d were reported.\n", unit.TestCount, len(relevant))
	}

	for _, result := range relevant {
		glyph := failGlyph
		if result.Passed() {
			glyph = passGlyph
		}

		fmt.Fprintf(&out, "\n%s %s\n", glyph, result.Name)

		if output := strings.TrimRight(result.Output, "\n"); output != "" {
			fmt.Fprintf(&out, "```\n%s\n```\n", output)
		}
	}

	return out.String()
}

func scoreMutationUnit(unit m.MutationTestUnit, input ScoringInput) (m.FeedbackUnit, error) {
	maxMutantsToDetect, maxScore, err := unit.Resolve()
	if err != nil {
		return m.FeedbackUnit{}, err
	}

	if !input.MutantsAvailable {
		output := input.MutantFailureAdvice
		if output == "" {
			output = mutationNotRunNotice
		}

		return m.FeedbackUnit{
			Name:         unit.Name,
			Output:       output,
			OutputFormat: m.FormatMarkdown,
			Score:        0,
			MaxScore:     maxScore,
		}, nil
	}

	relevant := 0
	detected := 0

	for _, mutant := range input.Mutants {
		if !matchesAnyLocation(mutant.Location, unit.Locations) {
			continue
		}

		relevant++

		if mutant.Detected() {
			detected++
		}
	}

	var (
		score float64
		out   strings.Builder
	)

	fmt.Fprintf(&out, "**Faults detected: %d / %d**\n", detected, relevant)

	if len(unit.BreakPoints) > 0 {
		score = breakPointScore(unit.BreakPoints, detected)
		fmt.Fprintf(&out, "\nDetect at least %d faults for full credit.\n", maxMutantsToDetect)
	} else {
		score = float64(detected) / float64(unit.LinearScoring.TotalFaults) * unit.LinearScoring.Points
	}

	return m.FeedbackUnit{
		Name:         unit.Name,
		Output:       out.String(),
		OutputFormat: m.FormatMarkdown,
		Score:        clampScore(score, maxScore),
		MaxScore:     maxScore,
	}, nil
}

// breakPointScore awards the first breakpoint, in declared order, whose
// threshold is met. Breakpoints are not sorted: an ascending list awards the
// lowest satisfied tier.
func breakPointScore(breakPoints []m.BreakPoint, detected int) float64 {
	for _, breakPoint := range breakPoints {
		if breakPoint.MinimumMutantsDetected <= detected {
			return breakPoint.PointsToAward
		}
	}

	return 0
}

func clampScore(score, maxScore float64) float64 {
	if score < 0 {
		return 0
	}

	if score > maxScore {
		return maxScore
	}

	return score
}
