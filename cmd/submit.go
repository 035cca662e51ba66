package cmd

import (
	"github.com/spf13/cobra"

	"gradeline.dev/pkg/gradeline/internal/domain"
)

var submitRegressionRunFlag string

// submitCmd represents the submit command.
var submitCmd = newSubmitCmd()

func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a saved report to the grading service",
		Long: `Upload the report at the --output path to the grading service configured
by service.url. Failed requests are retried with exponential backoff.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Submit(cmd.Context(), domain.SubmitRequest{
				ReportPath:      reportPath(),
				Submission:      submissionFromConfig(),
				RegressionRunID: submitRegressionRunFlag,
			})
		},
	}

	cmd.Flags().StringVar(&submitRegressionRunFlag, regressionFlagName, "", "attach the report to this regression run")

	return cmd
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
