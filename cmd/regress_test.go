package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gradeline.dev/pkg/gradeline/internal/domain"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

func TestRegressCmd_RequiresExpected(t *testing.T) {
	useMockWorkflow(t)

	cmd, _ := newTestRoot(newRegressCmd())
	cmd.SetArgs([]string{"regress"})

	require.EqualError(t, cmd.Execute(), "--expected is required")
}

func TestRegressCmd_ComparesWithExpected(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Regress(mock.Anything, mock.MatchedBy(func(req domain.RegressRequest) bool {
		return req.ExpectedPath == m.Path("testdata/expected.json") &&
			req.Grade.SubmissionDir == m.Path("testdata/submission") &&
			req.Grade.SpecPath == defaultSpecPath &&
			!req.Grade.Submit
	})).Return(domain.ErrRegressionMismatch)

	cmd, _ := newTestRoot(newRegressCmd())
	cmd.SetArgs([]string{"regress", "--expected", "testdata/expected.json", "--submission", "testdata/submission"})

	require.ErrorIs(t, cmd.Execute(), domain.ErrRegressionMismatch)
}
