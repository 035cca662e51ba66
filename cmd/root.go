// Package cmd provides the root command and CLI setup for gradeline.
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gradeline.dev/pkg/gradeline/internal/adapter"
	"gradeline.dev/pkg/gradeline/internal/controller"
	"gradeline.dev/pkg/gradeline/internal/domain"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

var specStore adapter.SpecStore
var reportStore adapter.ReportStore
var fsAdapter adapter.WorkspaceFSAdapter
var commandRunner adapter.CommandRunner
var orchestrator domain.Orchestrator

// workflow is built lazily once flags and config are resolved.
var workflow domain.Workflow

// reportPathFlag is a root-level flag shared by commands that read/write reports.
var reportPathFlag string

var verboseFlag bool

func init() {
	specStore = adapter.NewYAMLSpecStore()
	reportStore = adapter.NewReportStore()
	fsAdapter = adapter.NewLocalWorkspaceFSAdapter()
	commandRunner = adapter.NewLocalCommandRunner()
	orchestrator = domain.NewOrchestrator(fsAdapter, adapter.NewBuilderFactory(commandRunner))
}

const rootLongDescription = `Gradeline grades programming assignments. It stages a student submission
over the instructor's reference solution, builds and tests it, runs the
student's own tests against both implementations, scores every graded unit
and writes a JSON feedback report that can be submitted to a grading service.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gradeline",
		Short:        "Autograder for programming assignments",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger("", verboseFlag || viper.GetBool(logVerboseKey))

			if workflow == nil {
				workflow = newWorkflow(cmd)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportPathFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"path of the JSON grading report",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// newWorkflow wires the workflow for the command being executed. The
// grading service client is only created when a service URL is configured.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	var submitter domain.Submitter

	if url := viper.GetString(serviceURLKey); url != "" {
		client := adapter.NewHTTPGradingClient(url, viper.GetString(serviceTokenKey), &http.Client{Timeout: serviceTimeout()})
		submitter = domain.NewSubmitter(client,
			domain.WithMaxAttempts(viper.GetInt(serviceMaxAttemptsKey)),
			domain.WithBaseDelay(serviceBaseDelay()),
		)
	}

	return domain.NewWorkflow(
		specStore,
		reportStore,
		controller.NewUI(cmd, controller.IsTTY(os.Stdout)),
		orchestrator,
		submitter,
	)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// submissionFromConfig reads the identity of the graded commit.
func submissionFromConfig() m.SubmissionRequest {
	return m.SubmissionRequest{
		Repository: viper.GetString(repositoryKey),
		SHA:        viper.GetString(shaKey),
		RunID:      viper.GetString(runIDKey),
		RunAttempt: viper.GetInt(runAttemptKey),
	}
}

// reportPath resolves the report location shared by all commands.
func reportPath() m.Path {
	return m.Path(viper.GetString(outputFlagName))
}
