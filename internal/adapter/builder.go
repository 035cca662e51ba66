package adapter

import (
	"context"
	"fmt"
	"sort"
	"time"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

// Builder is the capability the orchestrator needs from a language toolchain.
// Every operation works on the workspace the builder was created for.
type Builder interface {
	// SetupVenv prepares the environment the build runs in.
	SetupVenv(ctx context.Context, dirName, cacheKey string) error

	// Lint runs the configured linter. A failing lint is reported through
	// the result status, not as an error.
	Lint(ctx context.Context) (m.LintResult, error)

	// BuildClean builds from scratch. A non-zero tool exit or timeout returns
	// a *model.BuildError.
	BuildClean(ctx context.Context, timeout time.Duration) error

	// Test runs the test suite. Failed assertions are reported as fail
	// statuses; timeouts and invocation failures return an error.
	Test(ctx context.Context, timeout time.Duration) ([]m.TestResult, error)

	// MutationTest runs mutation analysis with the same failure contract as Test.
	MutationTest(ctx context.Context, timeout time.Duration) ([]m.MutantResult, error)

	// CoverageReport returns a text coverage summary.
	CoverageReport(ctx context.Context) (string, error)

	// CoverageReportDir returns the coverage report directory, if one was produced.
	CoverageReportDir() (m.Path, bool)

	// MutationCoverageReportDir returns the mutation report directory, if one was produced.
	MutationCoverageReportDir() (m.Path, bool)
}

// BuilderFactory creates the Builder for a workspace.
type BuilderFactory func(workDir m.Path, cfg m.BuildConfig) (Builder, error)

type builderConstructor func(workDir m.Path, cfg m.BuildConfig, runner CommandRunner) Builder

var builderPresets = map[m.BuildPreset]builderConstructor{
	m.PresetScript: func(workDir m.Path, cfg m.BuildConfig, runner CommandRunner) Builder {
		return NewScriptBuilder(workDir, cfg.Script, runner)
	},
	m.PresetGo: func(workDir m.Path, cfg m.BuildConfig, runner CommandRunner) Builder {
		return NewGoBuilder(workDir, cfg.Go, runner)
	},
}

// Presets returns the registered build presets in name order.
func Presets() []m.BuildPreset {
	presets := make([]m.BuildPreset, 0, len(builderPresets))
	for preset := range builderPresets {
		presets = append(presets, preset)
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i] < presets[j] })

	return presets
}

// IsKnownPreset reports whether preset selects a registered Builder.
func IsKnownPreset(preset m.BuildPreset) bool {
	_, ok := builderPresets[preset]
	return ok
}

// NewBuilder returns the Builder registered for cfg.Preset.
func NewBuilder(workDir m.Path, cfg m.BuildConfig, runner CommandRunner) (Builder, error) {
	constructor, ok := builderPresets[cfg.Preset]
	if !ok {
		return nil, &m.ConfigError{Reason: fmt.Sprintf("unrecognized build preset %q", cfg.Preset)}
	}

	return constructor(workDir, cfg, runner), nil
}

// NewBuilderFactory binds NewBuilder to a CommandRunner.
func NewBuilderFactory(runner CommandRunner) BuilderFactory {
	return func(workDir m.Path, cfg m.BuildConfig) (Builder, error) {
		return NewBuilder(workDir, cfg, runner)
	}
}

// toolFailure converts a command outcome into the Builder failure contract.
func toolFailure(phase string, result CommandResult, err error) error {
	if err != nil {
		return &m.BuildError{Phase: phase, Output: result.Output(), Err: err}
	}

	if !result.Success() {
		return &m.BuildError{
			Phase:  phase,
			Output: result.Output(),
			Err:    fmt.Errorf("exit status %d", result.ExitCode),
		}
	}

	return nil
}
