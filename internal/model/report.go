package model

// Output formats understood by the feedback renderer.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// FeedbackUnit is a scored (or informational) entry in the final report.
type FeedbackUnit struct {
	Name              string  `json:"name"`
	Output            string  `json:"output"`
	HiddenOutput      string  `json:"hidden_output,omitempty"`
	OutputFormat      string  `json:"output_format"`
	Score             float64 `json:"score"`
	MaxScore          float64 `json:"max_score"`
	Part              string  `json:"part,omitempty"`
	HideUntilReleased bool    `json:"hide_until_released"`
}

// OutputVisibility selects who can read a section of captured output.
type OutputVisibility string

const (
	// OutputVisible is shown to the student.
	OutputVisible OutputVisibility = "visible"
	// OutputHidden is shown to instructors only.
	OutputHidden OutputVisibility = "hidden"
)

// OutputSection is one visibility slice of the captured run output.
type OutputSection struct {
	Output       string `json:"output"`
	OutputFormat string `json:"output_format"`
}

// ReportOutput is the full captured process output keyed by visibility.
type ReportOutput map[OutputVisibility]OutputSection

// Artifact is a collected file or directory inside the workspace.
type Artifact struct {
	Name string `json:"name"`
	Path Path   `json:"path"`
}

// GradingReport is the terminal artifact of a grading run.
type GradingReport struct {
	Lint            LintResult     `json:"lint"`
	Output          ReportOutput   `json:"output"`
	Tests           []FeedbackUnit `json:"tests"`
	Score           float64        `json:"score"`
	MaxScore        float64        `json:"max_score"`
	Artifacts       []Artifact     `json:"artifacts"`
	ExecutionTimeMs int64          `json:"execution_time_ms"`
}

// TotalScore sums the scores of all feedback units.
func TotalScore(units []FeedbackUnit) float64 {
	total := 0.0
	for _, unit := range units {
		total += unit.Score
	}

	return total
}

// TotalMaxScore sums the maximum scores of all feedback units.
func TotalMaxScore(units []FeedbackUnit) float64 {
	total := 0.0
	for _, unit := range units {
		total += unit.MaxScore
	}

	return total
}
