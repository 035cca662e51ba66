package model

import "time"

// BuildPreset selects the Builder implementation for a grading run.
type BuildPreset string

const (
	// PresetScript runs instructor-provided shell commands.
	PresetScript BuildPreset = "script"
	// PresetGo drives the Go toolchain.
	PresetGo BuildPreset = "go"
)

// LinterPolicy controls how a failing lint affects the run.
type LinterPolicy string

const (
	// LinterFail stops the run with a zero score when lint fails.
	LinterFail LinterPolicy = "fail"
	// LinterWarn reports lint output but keeps grading.
	LinterWarn LinterPolicy = "warn"
	// LinterIgnore skips the lint phase entirely.
	LinterIgnore LinterPolicy = "ignore"
)

// Default phase timeouts, in seconds.
const (
	DefaultBuildTimeout           = 600
	DefaultStudentTestsTimeout    = 300
	DefaultInstructorTestsTimeout = 300
	DefaultMutantsTimeout         = 1800
)

// GradingSpec is the immutable configuration for one grading run.
type GradingSpec struct {
	Build           BuildConfig     `yaml:"build" validate:"required"`
	Parts           []GradedPart    `yaml:"gradedParts" validate:"dive"`
	SubmissionFiles SubmissionFiles `yaml:"submissionFiles"`
}

// BuildConfig describes how the submission is built and tested.
type BuildConfig struct {
	Preset             BuildPreset        `yaml:"preset" validate:"required"`
	Timeouts           Timeouts           `yaml:"timeouts"`
	Linter             LinterConfig       `yaml:"linter"`
	Artifacts          []ArtifactSpec     `yaml:"artifacts" validate:"dive"`
	StudentTests       StudentTestsConfig `yaml:"student_tests"`
	Venv               *VenvConfig        `yaml:"venv,omitempty"`
	Script             ScriptConfig       `yaml:"script"`
	Go                 GoConfig           `yaml:"go"`
	RunInstructorTests *bool              `yaml:"run_instructor_tests,omitempty"`
}

// InstructorTestsEnabled reports whether instructor tests run against the
// submission. It defaults to true.
func (b BuildConfig) InstructorTestsEnabled() bool {
	return b.RunInstructorTests == nil || *b.RunInstructorTests
}

// Timeouts holds per-phase timeouts in seconds.
type Timeouts struct {
	Build           int `yaml:"build" validate:"gte=0"`
	StudentTests    int `yaml:"student_tests" validate:"gte=0"`
	InstructorTests int `yaml:"instructor_tests" validate:"gte=0"`
	Mutants         int `yaml:"mutants" validate:"gte=0"`
}

// WithDefaults fills zero timeouts with the defaults.
func (t Timeouts) WithDefaults() Timeouts {
	if t.Build == 0 {
		t.Build = DefaultBuildTimeout
	}

	if t.StudentTests == 0 {
		t.StudentTests = DefaultStudentTestsTimeout
	}

	if t.InstructorTests == 0 {
		t.InstructorTests = DefaultInstructorTestsTimeout
	}

	if t.Mutants == 0 {
		t.Mutants = DefaultMutantsTimeout
	}

	return t
}

// BuildTimeout returns the build timeout as a duration.
func (t Timeouts) BuildTimeout() time.Duration {
	return time.Duration(t.Build) * time.Second
}

// StudentTestsTimeout returns the student test timeout as a duration.
func (t Timeouts) StudentTestsTimeout() time.Duration {
	return time.Duration(t.StudentTests) * time.Second
}

// InstructorTestsTimeout returns the instructor test timeout as a duration.
func (t Timeouts) InstructorTestsTimeout() time.Duration {
	return time.Duration(t.InstructorTests) * time.Second
}

// MutantsTimeout returns the mutation testing timeout as a duration.
func (t Timeouts) MutantsTimeout() time.Duration {
	return time.Duration(t.Mutants) * time.Second
}

// LinterConfig selects the linter and its policy.
type LinterConfig struct {
	Preset string       `yaml:"preset"`
	Policy LinterPolicy `yaml:"policy" validate:"omitempty,oneof=fail warn ignore"`
}

// ArtifactSpec declares a file or directory to collect after grading.
type ArtifactSpec struct {
	Name string `yaml:"name" validate:"required"`
	Path string `yaml:"path" validate:"required"`
}

// VenvConfig describes the environment to prepare before building.
type VenvConfig struct {
	Dir      string `yaml:"dir"`
	CacheKey string `yaml:"cache_key"`
}

// StudentTestsConfig toggles the phases that evaluate student-written tests.
type StudentTestsConfig struct {
	InstructorImpl InstructorImplConfig `yaml:"instructor_impl"`
	StudentImpl    StudentImplConfig    `yaml:"student_impl"`
}

// InstructorImplConfig toggles running student tests on the instructor implementation.
type InstructorImplConfig struct {
	RunTests               bool `yaml:"run_tests"`
	RunMutation            bool `yaml:"run_mutation"`
	ReportMutationCoverage bool `yaml:"report_mutation_coverage"`
}

// StudentImplConfig toggles running student tests on the student implementation.
type StudentImplConfig struct {
	RunTests               bool `yaml:"run_tests"`
	ReportBranchCoverage   bool `yaml:"report_branch_coverage"`
	RunMutation            bool `yaml:"run_mutation"`
	ReportMutationCoverage bool `yaml:"report_mutation_coverage"`
}

// Enabled reports whether any student-implementation sub-step is on.
func (c StudentImplConfig) Enabled() bool {
	return c.RunTests || c.ReportBranchCoverage || c.RunMutation || c.ReportMutationCoverage
}

// ScriptConfig holds the commands used by the script preset.
type ScriptConfig struct {
	Setup               string `yaml:"setup"`
	Lint                string `yaml:"lint"`
	Build               string `yaml:"build"`
	Test                string `yaml:"test"`
	TestResults         string `yaml:"test_results"`
	Mutation            string `yaml:"mutation"`
	MutationResults     string `yaml:"mutation_results"`
	Coverage            string `yaml:"coverage"`
	CoverageDir         string `yaml:"coverage_dir"`
	MutationCoverageDir string `yaml:"mutation_coverage_dir"`
}

// GoConfig holds options for the go preset.
// Without a mutation command the built-in generator applies
// MutationOperators, or all operators when empty.
type GoConfig struct {
	Packages            string   `yaml:"packages"`
	MutationCommand     string   `yaml:"mutation_command"`
	MutationCoverageDir string   `yaml:"mutation_coverage_dir"`
	MutationOperators   []string `yaml:"mutation_operators" validate:"dive,oneof=arithmetic comparison boolean logical branch"`
	MutationWorkers     int      `yaml:"mutation_workers" validate:"gte=0"`
}

// SubmissionFiles lists the glob patterns a submission provides.
type SubmissionFiles struct {
	Files     []string `yaml:"files"`
	TestFiles []string `yaml:"testFiles"`
}

// GradedPart is a named group of graded units.
type GradedPart struct {
	Name              string       `yaml:"name" validate:"required"`
	HideUntilReleased bool         `yaml:"hide_until_released"`
	Units             []GradedUnit `yaml:"-"`
}
