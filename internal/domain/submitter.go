package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gradeline.dev/pkg/gradeline/internal/adapter"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// SubmitArgs describes one report upload.
type SubmitArgs struct {
	Submission m.SubmissionRequest
	Report     m.GradingReport
	// RegressionRunID routes the report to a regression run. No submission
	// record is created for regression runs.
	RegressionRunID string
}

// Submitter uploads finished reports to the grading service.
type Submitter interface {
	Submit(ctx context.Context, args SubmitArgs) (m.FeedbackResponse, error)
}

type submitter struct {
	client adapter.GradingServiceClient
	opts   []RetryOption
	newKey func() string
}

// NewSubmitter returns a Submitter that retries every call with opts.
func NewSubmitter(client adapter.GradingServiceClient, opts ...RetryOption) Submitter {
	return &submitter{
		client: client,
		opts:   opts,
		newKey: uuid.NewString,
	}
}

func (s *submitter) Submit(ctx context.Context, args SubmitArgs) (m.FeedbackResponse, error) {
	feedback := m.FeedbackRequest{
		Report:          args.Report,
		RegressionRunID: args.RegressionRunID,
	}

	if args.RegressionRunID == "" {
		submission, err := s.createSubmission(ctx, args.Submission)
		if err != nil {
			return m.FeedbackResponse{}, fmt.Errorf("create submission: %w", err)
		}

		feedback.SubmissionID = submission.SubmissionID
	}

	resp, err := s.submitFeedback(ctx, feedback)
	if err != nil {
		return m.FeedbackResponse{}, fmt.Errorf("submit feedback: %w", err)
	}

	return resp, nil
}

// The idempotency key is drawn once per call so every attempt reuses it.
func (s *submitter) createSubmission(ctx context.Context, req m.SubmissionRequest) (m.SubmissionResponse, error) {
	key := s.newKey()
	slog.Info("Creating submission", "repository", req.Repository, "sha", req.SHA, "idempotency_key", key)

	return Retry(ctx, func(ctx context.Context) (m.SubmissionResponse, error) {
		return s.client.CreateSubmission(ctx, req, key)
	}, s.opts...)
}

func (s *submitter) submitFeedback(ctx context.Context, req m.FeedbackRequest) (m.FeedbackResponse, error) {
	key := s.newKey()
	slog.Info("Submitting feedback", "submission_id", req.SubmissionID, "regression_run_id", req.RegressionRunID, "idempotency_key", key)

	return Retry(ctx, func(ctx context.Context) (m.FeedbackResponse, error) {
		return s.client.SubmitFeedback(ctx, req, key)
	}, s.opts...)
}
