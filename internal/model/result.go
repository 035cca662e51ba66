package model

// Status is the outcome of a single test or mutant.
type Status string

const (
	// StatusPass means the test passed, or the mutant was detected.
	StatusPass Status = "pass"
	// StatusFail means the test failed, or the mutant survived.
	StatusFail Status = "fail"
)

// TestResult is produced by the Builder for each test in a run.
type TestResult struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Output string `json:"output,omitempty"`
}

// Passed reports whether the test passed.
func (r TestResult) Passed() bool {
	return r.Status == StatusPass
}

// MutantResult is produced by the Builder for each mutant in a mutation run.
type MutantResult struct {
	Name      string   `json:"name"`
	ShortName string   `json:"short_name,omitempty"`
	Prompt    string   `json:"prompt,omitempty"`
	Location  string   `json:"location"`
	Status    Status   `json:"status"`
	Tests     []string `json:"tests,omitempty"`
}

// Detected reports whether at least one test killed the mutant.
func (r MutantResult) Detected() bool {
	return r.Status == StatusPass
}

// DisplayName prefers the short name when one is set.
func (r MutantResult) DisplayName() string {
	if r.ShortName != "" {
		return r.ShortName
	}

	return r.Name
}

// LintResult is the outcome of the lint phase.
type LintResult struct {
	Status       Status `json:"status"`
	Output       string `json:"output"`
	OutputFormat string `json:"output_format,omitempty"`
}
