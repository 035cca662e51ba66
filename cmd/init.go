package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const withSpecFlagName = "with-spec"

// starterSpec is the grading spec written by `init --with-spec`.
const starterSpec = `build:
  preset: go
  timeouts:
    build: 600
    student_tests: 300
    instructor_tests: 300
    mutants: 1800
  linter:
    policy: warn
  go:
    packages: ./...
    mutation_operators: [arithmetic, comparison, branch]
  student_tests:
    student_impl:
      run_tests: true
      run_mutation: true
gradedParts:
  - name: Basics
    gradedUnits:
      - name: Addition
        tests: [TestAdd]
        points: 10
        testCount: 1
      - name: Find the bug
        locations: [calc.go]
        breakPoints:
          - minimumMutantsDetected: 3
            pointsToAward: 10
          - minimumMutantsDetected: 1
            pointsToAward: 5
submissionFiles:
  files: ["*.go"]
  testFiles: ["*_test.go"]
`

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default gradeline.yaml configuration file",
		Long: `Create a gradeline.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually. With --with-spec a starter
grading spec is written to the configured grading.spec path as well.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			withSpec, _ := cmd.Flags().GetBool(withSpecFlagName)
			if !withSpec {
				return nil
			}

			return writeStarterSpec(viper.GetString(specConfigKey))
		},
	}

	cmd.Flags().Bool(withSpecFlagName, false, "also write a starter grading spec")

	return cmd
}

// writeStarterSpec refuses to overwrite an existing spec.
func writeStarterSpec(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("grading spec %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("check grading spec: %w", err)
	}

	if err := os.WriteFile(path, []byte(starterSpec), 0o600); err != nil {
		return fmt.Errorf("failed to write grading spec: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
