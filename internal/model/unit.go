package model

import "fmt"

// UnitKind tags the GradedUnit variants.
type UnitKind string

const (
	// UnitRegular scores a group of instructor tests.
	UnitRegular UnitKind = "regular"
	// UnitMutation scores student tests by the mutants they detect.
	UnitMutation UnitKind = "mutation"
)

// GradedUnit is a single scored item inside a GradedPart. It is a closed set:
// RegularTestUnit and MutationTestUnit are the only implementations.
type GradedUnit interface {
	UnitName() string
	Kind() UnitKind
	gradedUnit()
}

// RegularTestUnit awards points for instructor tests whose names start with
// one of Tests.
type RegularTestUnit struct {
	Name               string   `yaml:"name" validate:"required"`
	Tests              []string `yaml:"tests" validate:"required,min=1"`
	Points             float64  `yaml:"points" validate:"gte=0"`
	TestCount          int      `yaml:"testCount" validate:"gte=1"`
	AllowPartialCredit bool     `yaml:"allow_partial_credit"`
	HideOutput         bool     `yaml:"hide_output"`
}

// UnitName implements GradedUnit.
func (u RegularTestUnit) UnitName() string { return u.Name }

// Kind implements GradedUnit.
func (u RegularTestUnit) Kind() UnitKind { return UnitRegular }

func (RegularTestUnit) gradedUnit() {}

// BreakPoint awards PointsToAward once MinimumMutantsDetected is reached.
type BreakPoint struct {
	MinimumMutantsDetected int     `yaml:"minimumMutantsDetected" validate:"gte=0"`
	PointsToAward          float64 `yaml:"pointsToAward" validate:"gte=0"`
}

// LinearScoring awards Points proportionally to TotalFaults.
type LinearScoring struct {
	TotalFaults int     `yaml:"total_faults" validate:"gte=0"`
	Points      float64 `yaml:"points" validate:"gte=0"`
}

// MutationTestUnit awards points for mutants detected inside Locations.
// Exactly one of BreakPoints and LinearScoring must be set.
type MutationTestUnit struct {
	Name          string         `yaml:"name" validate:"required"`
	Locations     []string       `yaml:"locations" validate:"required,min=1"`
	BreakPoints   []BreakPoint   `yaml:"breakPoints" validate:"dive"`
	LinearScoring *LinearScoring `yaml:"linearScoring"`
}

// UnitName implements GradedUnit.
func (u MutationTestUnit) UnitName() string { return u.Name }

// Kind implements GradedUnit.
func (u MutationTestUnit) Kind() UnitKind { return UnitMutation }

func (MutationTestUnit) gradedUnit() {}

// Resolve returns the number of mutants needed for full credit and the
// maximum score. Breakpoint mode uses the first declared breakpoint.
func (u MutationTestUnit) Resolve() (maxMutantsToDetect int, maxScore float64, err error) {
	hasBreakPoints := len(u.BreakPoints) > 0
	hasLinear := u.LinearScoring != nil

	switch {
	case hasBreakPoints && hasLinear:
		return 0, 0, &ConfigError{Unit: u.Name, Reason: "both breakPoints and linearScoring are configured"}
	case hasBreakPoints:
		maxMutantsToDetect = u.BreakPoints[0].MinimumMutantsDetected
		maxScore = u.BreakPoints[0].PointsToAward
	case hasLinear:
		maxMutantsToDetect = u.LinearScoring.TotalFaults
		maxScore = u.LinearScoring.Points
	default:
		return 0, 0, &ConfigError{Unit: u.Name, Reason: "neither breakPoints nor linearScoring is configured"}
	}

	if maxMutantsToDetect == 0 || maxScore == 0 {
		return 0, 0, &ConfigError{
			Unit:   u.Name,
			Reason: fmt.Sprintf("unit resolves to %d mutants and %g points, both must be nonzero", maxMutantsToDetect, maxScore),
		}
	}

	return maxMutantsToDetect, maxScore, nil
}

// MaxScore returns the maximum score a unit can award.
func MaxScore(unit GradedUnit) (float64, error) {
	switch u := unit.(type) {
	case RegularTestUnit:
		return u.Points, nil
	case MutationTestUnit:
		_, maxScore, err := u.Resolve()
		return maxScore, err
	default:
		return 0, &ConfigError{Reason: fmt.Sprintf("unrecognized graded unit %T", unit)}
	}
}
