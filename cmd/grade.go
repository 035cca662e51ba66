package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gradeline.dev/pkg/gradeline/internal/domain"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

const gradeLongDescription = `Grade a submission against the instructor's reference solution.

The submission files named by the grading spec are copied over a fresh copy
of the solution in the workspace directory. The report is written to the
--output path even when grading fails, so the student always receives
feedback.`

var gradeSpecFlag string
var gradeSolutionFlag string
var gradeSubmissionFlag string
var gradeWorkspaceFlag string
var gradeSubmitFlag bool

// gradeCmd represents the grade command.
var gradeCmd = newGradeCmd()

func newGradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "grade",
		Short:   "Grade a submission",
		Long:    gradeLongDescription,
		Args:    cobra.NoArgs,
		PreRunE: bindGradingFlags,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.Grade(cmd.Context(), gradeRequestFromConfig(gradeSubmitFlag))
			return err
		},
	}

	configureGradingFlags(cmd)
	cmd.Flags().BoolVar(&gradeSubmitFlag, submitFlagName, false, "submit the report to the grading service")

	return cmd
}

func init() {
	rootCmd.AddCommand(gradeCmd)
}

// configureGradingFlags adds the flags that locate the grading inputs.
func configureGradingFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&gradeSpecFlag, specFlagName, "c", viper.GetString(specConfigKey), "grading spec file")
	cmd.Flags().StringVar(&gradeSolutionFlag, solutionFlagName, viper.GetString(solutionConfigKey), "reference solution directory")
	cmd.Flags().StringVar(&gradeSubmissionFlag, submissionFlagName, viper.GetString(submissionConfigKey), "student submission directory")
	cmd.Flags().StringVarP(&gradeWorkspaceFlag, workspaceFlagName, "w", viper.GetString(workspaceConfigKey), "scratch directory the submission is built in")
}

// bindGradingFlags binds the grading flags of the running command. grade and
// regress share config keys, so binding happens at run time rather than at
// construction.
func bindGradingFlags(cmd *cobra.Command, _ []string) error {
	bindFlagToConfig(cmd.Flags().Lookup(specFlagName), specConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(solutionFlagName), solutionConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(submissionFlagName), submissionConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(workspaceFlagName), workspaceConfigKey)

	return nil
}

func gradeRequestFromConfig(submit bool) domain.GradeRequest {
	return domain.GradeRequest{
		SpecPath:      m.Path(viper.GetString(specConfigKey)),
		SolutionDir:   m.Path(viper.GetString(solutionConfigKey)),
		SubmissionDir: m.Path(viper.GetString(submissionConfigKey)),
		WorkspaceDir:  m.Path(viper.GetString(workspaceConfigKey)),
		ReportPath:    reportPath(),
		Submit:        submit,
		Submission:    submissionFromConfig(),
	}
}
