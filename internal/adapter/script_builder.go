package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

// ScriptBuilder runs instructor-provided shell commands. Test and mutation
// commands report their results as JSON arrays, either on stdout or in the
// configured results file.
type ScriptBuilder struct {
	workDir m.Path
	cfg     m.ScriptConfig
	runner  CommandRunner
}

// NewScriptBuilder constructs a ScriptBuilder for workDir.
func NewScriptBuilder(workDir m.Path, cfg m.ScriptConfig, runner CommandRunner) *ScriptBuilder {
	return &ScriptBuilder{workDir: workDir, cfg: cfg, runner: runner}
}

// SetupVenv runs the setup command, exposing the venv directory and cache key.
func (b *ScriptBuilder) SetupVenv(ctx context.Context, dirName, cacheKey string) error {
	if b.cfg.Setup == "" {
		return nil
	}

	result, err := b.runner.Run(ctx, ShellCommand(string(b.workDir), b.cfg.Setup, 0,
		"GRADELINE_VENV_DIR="+dirName,
		"GRADELINE_CACHE_KEY="+cacheKey,
	))

	return toolFailure("setup", result, err)
}

// Lint runs the lint command; a non-zero exit is a failing lint.
func (b *ScriptBuilder) Lint(ctx context.Context) (m.LintResult, error) {
	if b.cfg.Lint == "" {
		return m.LintResult{Status: m.StatusPass, Output: "No linter configured", OutputFormat: m.FormatText}, nil
	}

	result, err := b.runner.Run(ctx, ShellCommand(string(b.workDir), b.cfg.Lint, 0))
	if err != nil {
		return m.LintResult{}, &m.BuildError{Phase: "lint", Output: result.Output(), Err: err}
	}

	status := m.StatusPass
	if !result.Success() {
		status = m.StatusFail
	}

	return m.LintResult{Status: status, Output: result.Output(), OutputFormat: m.FormatText}, nil
}

// BuildClean runs the build command.
func (b *ScriptBuilder) BuildClean(ctx context.Context, timeout time.Duration) error {
	if b.cfg.Build == "" {
		return nil
	}

	result, err := b.runner.Run(ctx, ShellCommand(string(b.workDir), b.cfg.Build, timeout))

	return toolFailure("build", result, err)
}

// Test runs the test command and decodes its results.
func (b *ScriptBuilder) Test(ctx context.Context, timeout time.Duration) ([]m.TestResult, error) {
	if b.cfg.Test == "" {
		return nil, &m.ConfigError{Reason: "script preset requires a test command"}
	}

	b.removeStale(b.cfg.TestResults)

	result, err := b.runner.Run(ctx, ShellCommand(string(b.workDir), b.cfg.Test, timeout))
	if err != nil {
		return nil, &m.BuildError{Phase: "test", Output: result.Output(), Err: err}
	}

	var tests []m.TestResult
	if err := b.decodeResults(b.cfg.TestResults, result, &tests); err != nil {
		return nil, &m.BuildError{Phase: "test", Output: result.Output(), Err: err}
	}

	return tests, nil
}

// MutationTest runs the mutation command and decodes its results.
func (b *ScriptBuilder) MutationTest(ctx context.Context, timeout time.Duration) ([]m.MutantResult, error) {
	if b.cfg.Mutation == "" {
		return nil, m.ErrUnsupported
	}

	b.removeStale(b.cfg.MutationResults)

	result, err := b.runner.Run(ctx, ShellCommand(string(b.workDir), b.cfg.Mutation, timeout))
	if err != nil {
		return nil, &m.BuildError{Phase: "mutation test", Output: result.Output(), Err: err}
	}

	var mutants []m.MutantResult
	if err := b.decodeResults(b.cfg.MutationResults, result, &mutants); err != nil {
		return nil, &m.BuildError{Phase: "mutation test", Output: result.Output(), Err: err}
	}

	return mutants, nil
}

// CoverageReport runs the coverage command and returns its output.
func (b *ScriptBuilder) CoverageReport(ctx context.Context) (string, error) {
	if b.cfg.Coverage == "" {
		return "", m.ErrUnsupported
	}

	result, err := b.runner.Run(ctx, ShellCommand(string(b.workDir), b.cfg.Coverage, 0))
	if failure := toolFailure("coverage", result, err); failure != nil {
		return "", failure
	}

	return result.Stdout, nil
}

// CoverageReportDir returns the configured coverage directory.
func (b *ScriptBuilder) CoverageReportDir() (m.Path, bool) {
	return b.resolve(b.cfg.CoverageDir)
}

// MutationCoverageReportDir returns the configured mutation report directory.
func (b *ScriptBuilder) MutationCoverageReportDir() (m.Path, bool) {
	return b.resolve(b.cfg.MutationCoverageDir)
}

func (b *ScriptBuilder) resolve(path string) (m.Path, bool) {
	if path == "" {
		return "", false
	}

	if filepath.IsAbs(path) {
		return m.Path(path), true
	}

	return m.Path(filepath.Join(string(b.workDir), path)), true
}

func (b *ScriptBuilder) removeStale(resultsFile string) {
	path, ok := b.resolve(resultsFile)
	if !ok {
		return
	}

	if err := os.Remove(string(path)); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove stale results file", "path", path, "error", err)
	}
}

func (b *ScriptBuilder) decodeResults(resultsFile string, result CommandResult, target any) error {
	data := []byte(strings.TrimSpace(result.Stdout))

	if path, ok := b.resolve(resultsFile); ok {
		// #nosec G304 - results path comes from the grading spec
		content, err := os.ReadFile(string(path))
		if err != nil {
			return fmt.Errorf("read results file %s: %w", path, err)
		}

		data = content
	}

	if len(data) == 0 {
		return fmt.Errorf("no results reported (exit status %d)", result.ExitCode)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode results: %w", err)
	}

	return nil
}
