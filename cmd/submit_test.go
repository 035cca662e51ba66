package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gradeline.dev/pkg/gradeline/internal/domain"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

func TestSubmitCmd_SubmitsSavedReport(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	t.Setenv("GRADELINE_SUBMISSION_RUN_ID", "1234")

	mockWorkflow.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(req domain.SubmitRequest) bool {
		return req.ReportPath == m.Path("out/report.json") &&
			req.RegressionRunID == "" &&
			req.Submission.RunID == "1234"
	})).Return(nil)

	cmd, _ := newTestRoot(newSubmitCmd())
	cmd.SetArgs([]string{"submit", "-o", "out/report.json"})

	require.NoError(t, cmd.Execute())
}

func TestSubmitCmd_RegressionRun(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(req domain.SubmitRequest) bool {
		return req.ReportPath == defaultReportPath && req.RegressionRunID == "run-7"
	})).Return(errors.New("grading service is not configured"))

	cmd, _ := newTestRoot(newSubmitCmd())
	cmd.SetArgs([]string{"submit", "--regression-run", "run-7"})

	require.EqualError(t, cmd.Execute(), "grading service is not configured")
}
