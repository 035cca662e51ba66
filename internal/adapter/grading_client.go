package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

const (
	createSubmissionPath = "/submissions"
	submitFeedbackPath   = "/submissions/feedback"
	idempotencyHeader    = "Idempotency-Key"
	defaultClientTimeout = time.Minute
	maxResponseBytes     = 4 << 20
)

// GradingServiceClient talks to the remote grading service. Implementations
// must return a *model.NonRetriableError for failures that retrying cannot fix.
type GradingServiceClient interface {
	CreateSubmission(ctx context.Context, req m.SubmissionRequest, idempotencyKey string) (m.SubmissionResponse, error)
	SubmitFeedback(ctx context.Context, req m.FeedbackRequest, idempotencyKey string) (m.FeedbackResponse, error)
}

// HTTPGradingClient is the JSON-over-HTTP GradingServiceClient.
type HTTPGradingClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPGradingClient constructs a client for the service at baseURL.
func NewHTTPGradingClient(baseURL, token string, httpClient *http.Client) *HTTPGradingClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultClientTimeout}
	}

	return &HTTPGradingClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  httpClient,
	}
}

// envelope is the service response: a success payload or an error object.
type envelope struct {
	Error *m.ServiceError `json:"error,omitempty"`
}

// CreateSubmission registers the submission being graded.
func (c *HTTPGradingClient) CreateSubmission(ctx context.Context, req m.SubmissionRequest, idempotencyKey string) (m.SubmissionResponse, error) {
	var resp m.SubmissionResponse

	err := c.post(ctx, createSubmissionPath, req, idempotencyKey, &resp)

	return resp, err
}

// SubmitFeedback uploads the grading report. A regression run id routes the
// report to the regression run instead of the student's submission.
func (c *HTTPGradingClient) SubmitFeedback(ctx context.Context, req m.FeedbackRequest, idempotencyKey string) (m.FeedbackResponse, error) {
	path := submitFeedbackPath
	if req.RegressionRunID != "" {
		path += "?" + url.Values{"regression_run_id": {req.RegressionRunID}}.Encode()
	}

	var resp m.FeedbackResponse

	err := c.post(ctx, path, req, idempotencyKey, &resp)

	return resp, err
}

func (c *HTTPGradingClient) post(ctx context.Context, path string, body any, idempotencyKey string, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return m.NonRetriable(fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return m.NonRetriable(fmt.Errorf("build request: %w", err))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	if idempotencyKey != "" {
		httpReq.Header.Set(idempotencyHeader, idempotencyKey)
	}

	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response from %s: %w", path, err)
	}

	var env envelope
	if len(data) > 0 {
		if err := json.Unmarshal(data, &env); err != nil && httpResp.StatusCode < 300 {
			return fmt.Errorf("decode response from %s: %w", path, err)
		}
	}

	if env.Error != nil {
		if !env.Error.Recoverable {
			return m.NonRetriable(env.Error)
		}

		return env.Error
	}

	if httpResp.StatusCode >= 300 {
		statusErr := fmt.Errorf("POST %s: unexpected status %s", path, httpResp.Status)
		if isPermanentStatus(httpResp.StatusCode) {
			return m.NonRetriable(statusErr)
		}

		return statusErr
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}

	return nil
}

func isPermanentStatus(code int) bool {
	if code == http.StatusRequestTimeout || code == http.StatusTooManyRequests {
		return false
	}

	return code >= 400 && code < 500
}
