package adapter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradeline.dev/pkg/gradeline/internal/adapter"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

func TestHTTPGradingClient_CreateSubmission(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submissions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req m.SubmissionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, m.SubmissionRequest{Repository: "org/repo", SHA: "abc", RunID: "42", RunAttempt: 2}, req)

		_, _ = w.Write([]byte(`{"submission_id": 7, "message": "created"}`))
	}))
	defer server.Close()

	client := adapter.NewHTTPGradingClient(server.URL+"/", "secret", server.Client())

	resp, err := client.CreateSubmission(context.Background(), m.SubmissionRequest{
		Repository: "org/repo",
		SHA:        "abc",
		RunID:      "42",
		RunAttempt: 2,
	}, "key-1")
	require.NoError(t, err)
	assert.Equal(t, m.SubmissionResponse{SubmissionID: 7, Message: "created"}, resp)
}

func TestHTTPGradingClient_SubmitFeedback(t *testing.T) {
	t.Run("regression run id goes in the query", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/submissions/feedback", r.URL.Path)
			assert.Equal(t, "run-9", r.URL.Query().Get("regression_run_id"))
			assert.Empty(t, r.Header.Get("Authorization"))

			var body map[string]json.RawMessage
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Contains(t, body, "feedback")
			assert.NotContains(t, body, "RegressionRunID")

			_, _ = w.Write([]byte(`{"message": "stored", "details_url": "https://grades.example/runs/9"}`))
		}))
		defer server.Close()

		client := adapter.NewHTTPGradingClient(server.URL, "", server.Client())

		resp, err := client.SubmitFeedback(context.Background(), m.FeedbackRequest{
			Report:          m.GradingReport{Score: 3, MaxScore: 5},
			RegressionRunID: "run-9",
		}, "key-2")
		require.NoError(t, err)
		assert.Equal(t, "stored", resp.Message)
		assert.Equal(t, "https://grades.example/runs/9", resp.DetailsURL)
	})

	tests := []struct {
		name         string
		status       int
		body         string
		nonRetriable bool
		message      string
	}{
		{name: "bad request is permanent", status: http.StatusBadRequest, nonRetriable: true, message: "400"},
		{name: "request timeout is retriable", status: http.StatusRequestTimeout, message: "408"},
		{name: "rate limit is retriable", status: http.StatusTooManyRequests, message: "429"},
		{name: "server error is retriable", status: http.StatusInternalServerError, message: "500"},
		{
			name:         "unrecoverable envelope",
			status:       http.StatusConflict,
			body:         `{"error": {"message": "submission closed", "recoverable": false}}`,
			nonRetriable: true,
			message:      "submission closed",
		},
		{
			name:    "recoverable envelope",
			status:  http.StatusServiceUnavailable,
			body:    `{"error": {"message": "try later", "recoverable": true}}`,
			message: "try later",
		},
		{name: "malformed success body", status: http.StatusOK, body: "not json", message: "decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := adapter.NewHTTPGradingClient(server.URL, "token", server.Client())

			_, err := client.SubmitFeedback(context.Background(), m.FeedbackRequest{SubmissionID: 1}, "key")
			require.Error(t, err)
			assert.Equal(t, tt.nonRetriable, m.IsNonRetriable(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestHTTPGradingClient_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.NewHTTPGradingClient(server.URL, "", nil).CreateSubmission(ctx, m.SubmissionRequest{}, "")
	require.Error(t, err)
	assert.False(t, m.IsNonRetriable(err))
	assert.ErrorIs(t, err, context.Canceled)
}
