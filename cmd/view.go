package cmd

import (
	"github.com/spf13/cobra"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously generated grading report",
		Long:  "View a grading report, including instructor-only output. Defaults to the --output path.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := reportPath()
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), path)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
