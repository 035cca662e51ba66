package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"gradeline.dev/pkg/gradeline/internal/adapter"
	"gradeline.dev/pkg/gradeline/internal/domain/mutagens"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the gradeline version and supported build presets",
		Long: `Displays the gradeline build version and source revision, the Go version used
to build it, and the build presets and mutation operators this binary supports.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()

			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines describes the binary. info may be nil when build
// information is unavailable.
func versionLines(info *debug.BuildInfo) []string {
	version, revision, goVersion := unknownVersion, unknownVersion, runtime.Version()

	if info != nil {
		if info.Main.Version != "" {
			version = info.Main.Version
		}

		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				revision = setting.Value
			}
		}
	}

	presets := make([]string, 0)
	for _, preset := range adapter.Presets() {
		presets = append(presets, string(preset))
	}

	operators := make([]string, 0)
	for _, op := range mutagens.AllOperators() {
		operators = append(operators, string(op))
	}

	return []string{
		fmt.Sprintf("gradeline version\t%s", version),
		fmt.Sprintf("revision\t%s", revision),
		fmt.Sprintf("go version\t%s", goVersion),
		fmt.Sprintf("build presets\t%s", strings.Join(presets, ", ")),
		fmt.Sprintf("mutation operators\t%s", strings.Join(operators, ", ")),
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
