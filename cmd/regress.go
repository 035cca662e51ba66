package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"gradeline.dev/pkg/gradeline/internal/domain"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

var regressExpectedFlag string

// regressCmd represents the regress command.
var regressCmd = newRegressCmd()

func newRegressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Check a submission still grades as expected",
		Long: `Grade a known submission and compare the result with an expected report.
Artifacts are not collected. Exits non-zero and prints a unified diff when the
scores or feedback differ.`,
		Args:    cobra.NoArgs,
		PreRunE: bindGradingFlags,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if regressExpectedFlag == "" {
				return errors.New("--expected is required")
			}

			return workflow.Regress(cmd.Context(), domain.RegressRequest{
				Grade:        gradeRequestFromConfig(false),
				ExpectedPath: m.Path(regressExpectedFlag),
			})
		},
	}

	configureGradingFlags(cmd)
	cmd.Flags().StringVar(&regressExpectedFlag, expectedFlagName, "", "expected grading report")

	return cmd
}

func init() {
	rootCmd.AddCommand(regressCmd)
}
