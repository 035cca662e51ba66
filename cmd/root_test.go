package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainmocks "gradeline.dev/pkg/gradeline/internal/domain/mocks"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// useMockWorkflow swaps the package workflow for a mock and keeps logs out
// of the package directory.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	t.Setenv("GRADELINE_LOG_FILENAME", filepath.Join(t.TempDir(), "gradeline.log"))

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestRoot(sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	cmd := newRootCmd()
	cmd.AddCommand(sub...)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "gradeline", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup(outputFlagName))
	assert.NotNil(t, cmd.PersistentFlags().ShorthandLookup("v"))
}

func TestRootCmd_HelpOutput(t *testing.T) {
	useMockWorkflow(t)

	cmd, out := newTestRoot()
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "grading service")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, specStore)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, commandRunner)
	assert.NotNil(t, orchestrator)

	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"grade", "submit", "view", "validate", "regress", "init", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestNewWorkflow(t *testing.T) {
	cmd, _ := newTestRoot()

	assert.NotNil(t, newWorkflow(cmd))

	t.Setenv("GRADELINE_SERVICE_URL", "http://127.0.0.1:1")
	assert.NotNil(t, newWorkflow(cmd))
}

func TestSubmissionFromConfig(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "org/assignment")
	t.Setenv("GITHUB_SHA", "ci-sha")
	t.Setenv("GITHUB_RUN_ID", "99")
	t.Setenv("GITHUB_RUN_ATTEMPT", "2")
	t.Setenv("GRADELINE_SUBMISSION_SHA", "override-sha")

	assert.Equal(t, m.SubmissionRequest{
		Repository: "org/assignment",
		SHA:        "override-sha",
		RunID:      "99",
		RunAttempt: 2,
	}, submissionFromConfig())
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	rootCmd = &cobra.Command{
		Use: "test",
		RunE: func(_ *cobra.Command, _ []string) error {
			return errors.New("command failed")
		},
	}
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	require.Error(t, rootCmd.Execute())
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		rootCmd = &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if cmd.Context() == nil {
					return errors.New("missing context")
				}

				fmt.Println("success")

				return nil
			},
		}
		rootCmd.SetArgs([]string{})

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		rootCmd = &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				return errors.New("command failed")
			},
		}
		rootCmd.SetArgs([]string{})

		Execute()

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")

	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "output: %s", output)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(output), "command failed")
}
