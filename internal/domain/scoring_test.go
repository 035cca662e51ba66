package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

func passing(names ...string) []m.TestResult {
	results := make([]m.TestResult, 0, len(names))
	for _, name := range names {
		results = append(results, m.TestResult{Name: name, Status: m.StatusPass})
	}

	return results
}

func failing(names ...string) []m.TestResult {
	results := make([]m.TestResult, 0, len(names))
	for _, name := range names {
		results = append(results, m.TestResult{Name: name, Status: m.StatusFail, Output: "assertion failed"})
	}

	return results
}

func mutants(location string, detected, survived int) []m.MutantResult {
	var results []m.MutantResult

	for i := 0; i < detected; i++ {
		results = append(results, m.MutantResult{Name: "killed", Location: location, Status: m.StatusPass})
	}

	for i := 0; i < survived; i++ {
		results = append(results, m.MutantResult{Name: "survived", Location: location, Status: m.StatusFail})
	}

	return results
}

func TestScoreUnit_RegularAllOrNothing(t *testing.T) {
	unit := m.RegularTestUnit{Name: "Addition", Tests: []string{"TestAdd"}, Points: 10, TestCount: 3}

	feedback, err := ScoreUnit(unit, ScoringInput{Tests: passing("TestAdd/one", "TestAdd/two", "TestAdd/three", "TestSub")})
	require.NoError(t, err)
	assert.InDelta(t, 10, feedback.Score, 1e-9)
	assert.InDelta(t, 10, feedback.MaxScore, 1e-9)
	assert.Contains(t, feedback.Output, "**Tests passed: 3 / 3**")
	assert.NotContains(t, feedback.Output, "TestSub")

	results := append(passing("TestAdd/one", "TestAdd/two"), failing("TestAdd/three")...)
	feedback, err = ScoreUnit(unit, ScoringInput{Tests: results})
	require.NoError(t, err)
	assert.Zero(t, feedback.Score)
	assert.Contains(t, feedback.Output, "❌ TestAdd/three")
	assert.Contains(t, feedback.Output, "assertion failed")
}

func TestScoreUnit_RegularPartialCredit(t *testing.T) {
	unit := m.RegularTestUnit{Name: "Addition", Tests: []string{"TestAdd"}, Points: 9, TestCount: 3, AllowPartialCredit: true}
	results := append(passing("TestAdd/one", "TestAdd/two"), failing("TestAdd/three")...)

	feedback, err := ScoreUnit(unit, ScoringInput{Tests: results})
	require.NoError(t, err)
	assert.InDelta(t, 6, feedback.Score, 1e-9)
}

func TestScoreUnit_RegularMissingTestsDoNotCount(t *testing.T) {
	unit := m.RegularTestUnit{Name: "Addition", Tests: []string{"TestAdd"}, Points: 10, TestCount: 3}

	feedback, err := ScoreUnit(unit, ScoringInput{Tests: passing("TestAdd/one", "TestAdd/two")})
	require.NoError(t, err)
	assert.Zero(t, feedback.Score)
	assert.Contains(t, feedback.Output, "Expected 3 tests but 2 were reported.")
}

func TestScoreUnit_RegularHiddenOutput(t *testing.T) {
	unit := m.RegularTestUnit{Name: "Secret", Tests: []string{"TestSecret"}, Points: 1, TestCount: 1, HideOutput: true}

	feedback, err := ScoreUnit(unit, ScoringInput{Tests: failing("TestSecret")})
	require.NoError(t, err)
	assert.Equal(t, hiddenOutputNotice, feedback.Output)
	assert.Contains(t, feedback.HiddenOutput, "TestSecret")
}

func TestScoreUnit_MutationBreakPoints(t *testing.T) {
	unit := m.MutationTestUnit{
		Name:      "Faults",
		Locations: []string{"src/calc.py"},
		BreakPoints: []m.BreakPoint{
			{MinimumMutantsDetected: 4, PointsToAward: 10},
			{MinimumMutantsDetected: 2, PointsToAward: 5},
		},
	}

	tests := []struct {
		name     string
		detected int
		want     float64
	}{
		{"all tiers", 5, 10},
		{"top tier exactly", 4, 10},
		{"second tier", 3, 5},
		{"no tier", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback, err := ScoreUnit(unit, ScoringInput{
				Mutants:          mutants("src/calc.py:1:2", tt.detected, 5-tt.detected),
				MutantsAvailable: true,
			})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, feedback.Score, 1e-9)
			assert.InDelta(t, 10, feedback.MaxScore, 1e-9)
			assert.Contains(t, feedback.Output, "Detect at least 4 faults for full credit.")
		})
	}
}

func TestScoreUnit_MutationBreakPointsUseDeclaredOrder(t *testing.T) {
	unit := m.MutationTestUnit{
		Name:      "Faults",
		Locations: []string{"src/"},
		BreakPoints: []m.BreakPoint{
			{MinimumMutantsDetected: 1, PointsToAward: 2},
			{MinimumMutantsDetected: 3, PointsToAward: 6},
		},
	}

	feedback, err := ScoreUnit(unit, ScoringInput{Mutants: mutants("src/a.py", 3, 0), MutantsAvailable: true})
	require.NoError(t, err)
	assert.InDelta(t, 2, feedback.Score, 1e-9)
	assert.InDelta(t, 2, feedback.MaxScore, 1e-9)
}

func TestScoreUnit_MutationLinear(t *testing.T) {
	unit := m.MutationTestUnit{
		Name:          "Faults",
		Locations:     []string{"src/calc.py-1-50"},
		LinearScoring: &m.LinearScoring{TotalFaults: 4, Points: 8},
	}

	tests := []struct {
		name     string
		detected int
		want     float64
	}{
		{"none", 0, 0},
		{"half", 2, 4},
		{"all", 4, 8},
		{"more than total is capped", 6, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := ScoringInput{
				Mutants:          append(mutants("src/calc.py:10:11", tt.detected, 1), mutants("src/other.py:1:1", 3, 0)...),
				MutantsAvailable: true,
			}

			feedback, err := ScoreUnit(unit, input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, feedback.Score, 1e-9)
			assert.NotContains(t, feedback.Output, "for full credit")
		})
	}
}

func TestScoreUnit_MutationUnavailable(t *testing.T) {
	unit := m.MutationTestUnit{
		Name:          "Faults",
		Locations:     []string{"src/"},
		LinearScoring: &m.LinearScoring{TotalFaults: 4, Points: 8},
	}

	feedback, err := ScoreUnit(unit, ScoringInput{MutantFailureAdvice: "fix your tests"})
	require.NoError(t, err)
	assert.Zero(t, feedback.Score)
	assert.InDelta(t, 8, feedback.MaxScore, 1e-9)
	assert.Equal(t, "fix your tests", feedback.Output)

	feedback, err = ScoreUnit(unit, ScoringInput{})
	require.NoError(t, err)
	assert.Equal(t, mutationNotRunNotice, feedback.Output)
}

func TestScoreUnit_MutationEmptyResultsScoreZero(t *testing.T) {
	unit := m.MutationTestUnit{
		Name:        "Faults",
		Locations:   []string{"src/"},
		BreakPoints: []m.BreakPoint{{MinimumMutantsDetected: 1, PointsToAward: 3}},
	}

	feedback, err := ScoreUnit(unit, ScoringInput{Mutants: []m.MutantResult{}, MutantsAvailable: true})
	require.NoError(t, err)
	assert.Zero(t, feedback.Score)
	assert.Contains(t, feedback.Output, "**Faults detected: 0 / 0**")
}

func TestScoreUnit_MutationConfigError(t *testing.T) {
	unit := m.MutationTestUnit{Name: "Broken", Locations: []string{"src/"}}

	_, err := ScoreUnit(unit, ScoringInput{MutantsAvailable: true})
	require.Error(t, err)
	assert.True(t, m.IsConfigError(err))
}

func TestScorePart_AnnotatesUnits(t *testing.T) {
	part := m.GradedPart{
		Name:              "Part 1",
		HideUntilReleased: true,
		Units: []m.GradedUnit{
			m.RegularTestUnit{Name: "A", Tests: []string{"TestA"}, Points: 1, TestCount: 1},
			m.RegularTestUnit{Name: "B", Tests: []string{"TestB"}, Points: 2, TestCount: 1},
		},
	}

	units, err := ScorePart(part, ScoringInput{Tests: passing("TestA", "TestB")})
	require.NoError(t, err)
	require.Len(t, units, 2)

	for _, unit := range units {
		assert.Equal(t, "Part 1", unit.Part)
		assert.True(t, unit.HideUntilReleased)
		assert.LessOrEqual(t, unit.Score, unit.MaxScore)
	}

	assert.InDelta(t, 3, m.TotalScore(units), 1e-9)
}
