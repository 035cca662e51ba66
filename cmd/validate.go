package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

// validateCmd represents the validate command.
var validateCmd = newValidateCmd()

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [spec]",
		Short: "Validate a grading spec",
		Long:  "Load and validate a grading spec and print its graded parts and units. Defaults to grading.spec.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := m.Path(viper.GetString(specConfigKey))
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.Validate(cmd.Context(), path)
		},
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
