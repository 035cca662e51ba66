package model

// SubmissionRequest registers a graded submission with the grading service.
type SubmissionRequest struct {
	Repository string `json:"repository"`
	SHA        string `json:"sha"`
	RunID      string `json:"run_id"`
	RunAttempt int    `json:"run_attempt,omitempty"`
}

// SubmissionResponse identifies the submission record created remotely.
type SubmissionResponse struct {
	SubmissionID int64  `json:"submission_id"`
	Message      string `json:"message,omitempty"`
}

// FeedbackRequest carries a finished report to the grading service.
type FeedbackRequest struct {
	SubmissionID    int64         `json:"submission_id"`
	Report          GradingReport `json:"feedback"`
	RegressionRunID string        `json:"-"`
}

// FeedbackResponse acknowledges submitted feedback.
type FeedbackResponse struct {
	Message    string `json:"message"`
	DetailsURL string `json:"details_url,omitempty"`
}

// ServiceError is the error object returned by the grading service.
type ServiceError struct {
	Message     string `json:"message"`
	Details     string `json:"details,omitempty"`
	Recoverable bool   `json:"recoverable"`
}

func (e *ServiceError) Error() string {
	if e.Details == "" {
		return "grading service: " + e.Message
	}

	return "grading service: " + e.Message + ": " + e.Details
}
