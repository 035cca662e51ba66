package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

const (
	defaultGoPackages = "./..."
	coverProfileName  = "coverage.out"
	coverReportDir    = "coverage"
)

// GoBuilder drives the Go toolchain inside the workspace.
type GoBuilder struct {
	workDir     m.Path
	cfg         m.GoConfig
	runner      CommandRunner
	coverageDir m.Path
}

// NewGoBuilder constructs a GoBuilder for workDir.
func NewGoBuilder(workDir m.Path, cfg m.GoConfig, runner CommandRunner) *GoBuilder {
	return &GoBuilder{workDir: workDir, cfg: cfg, runner: runner}
}

func (b *GoBuilder) packages() string {
	if b.cfg.Packages == "" {
		return defaultGoPackages
	}

	return b.cfg.Packages
}

func (b *GoBuilder) goCmd(timeout time.Duration, args ...string) Command {
	return Command{Dir: string(b.workDir), Name: "go", Args: args, Timeout: timeout}
}

// SetupVenv downloads module dependencies. The cache key is ignored because
// the Go module cache is content addressed.
func (b *GoBuilder) SetupVenv(ctx context.Context, _, _ string) error {
	result, err := b.runner.Run(ctx, b.goCmd(0, "mod", "download"))
	return toolFailure("setup", result, err)
}

// Lint checks formatting with gofmt and runs go vet.
func (b *GoBuilder) Lint(ctx context.Context) (m.LintResult, error) {
	var output strings.Builder

	status := m.StatusPass

	gofmt, err := b.runner.Run(ctx, Command{Dir: string(b.workDir), Name: "gofmt", Args: []string{"-l", "."}})
	if err != nil {
		return m.LintResult{}, &m.BuildError{Phase: "lint", Output: gofmt.Output(), Err: err}
	}

	if unformatted := strings.TrimSpace(gofmt.Stdout); unformatted != "" || !gofmt.Success() {
		status = m.StatusFail

		output.WriteString("Files not formatted with gofmt:\n")
		output.WriteString(gofmt.Output())
		output.WriteString("\n")
	}

	vet, err := b.runner.Run(ctx, b.goCmd(0, "vet", b.packages()))
	if err != nil {
		return m.LintResult{}, &m.BuildError{Phase: "lint", Output: vet.Output(), Err: err}
	}

	if !vet.Success() {
		status = m.StatusFail

		output.WriteString(vet.Output())
	}

	if status == m.StatusPass {
		output.WriteString("gofmt and go vet reported no issues")
	}

	return m.LintResult{Status: status, Output: output.String(), OutputFormat: m.FormatText}, nil
}

// BuildClean compiles packages and their tests without running them.
func (b *GoBuilder) BuildClean(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	result, err := b.runner.Run(ctx, b.goCmd(timeout, "build", b.packages()))
	if failure := toolFailure("build", result, err); failure != nil {
		return failure
	}

	remaining := time.Until(deadline)
	if timeout > 0 && remaining <= 0 {
		return &m.BuildError{Phase: "build", Err: m.ErrTimeout}
	}

	if timeout <= 0 {
		remaining = 0
	}

	result, err = b.runner.Run(ctx, b.goCmd(remaining, "test", "-count=1", "-run", "^$", b.packages()))

	return toolFailure("build", result, err)
}

// testEvent mirrors the records printed by go test -json.
type testEvent struct {
	Action  string `json:"Action"`
	Package string `json:"Package"`
	Test    string `json:"Test"`
	Output  string `json:"Output"`
}

// Test runs go test -json and reports one result per test.
func (b *GoBuilder) Test(ctx context.Context, timeout time.Duration) ([]m.TestResult, error) {
	result, err := b.runner.Run(ctx, b.goCmd(timeout, "test", "-json", "-count=1", b.packages()))
	if err != nil {
		return nil, &m.BuildError{Phase: "test", Output: result.Output(), Err: err}
	}

	tests, err := ParseGoTestJSON(result.Stdout)
	if err != nil {
		return nil, &m.BuildError{Phase: "test", Output: result.Output(), Err: err}
	}

	if len(tests) == 0 && !result.Success() {
		return nil, &m.BuildError{
			Phase:  "test",
			Output: result.Output(),
			Err:    fmt.Errorf("go test exited with status %d without reporting tests", result.ExitCode),
		}
	}

	return tests, nil
}

// ParseGoTestJSON converts go test -json output into test results. Lines
// that are not JSON events are ignored.
func ParseGoTestJSON(stdout string) ([]m.TestResult, error) {
	outputs := map[string]*strings.Builder{}

	var tests []m.TestResult

	scanner := bufio.NewScanner(strings.NewReader(stdout))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || line[0] != '{' {
			continue
		}

		var event testEvent
		if err := json.Unmarshal(line, &event); err != nil {
			continue
		}

		if event.Test == "" {
			continue
		}

		key := event.Package + "\x00" + event.Test

		switch event.Action {
		case "output":
			builder, ok := outputs[key]
			if !ok {
				builder = &strings.Builder{}
				outputs[key] = builder
			}

			builder.WriteString(event.Output)
		case "pass", "fail", "skip":
			// A skipped test verified nothing, so it does not count as passing.
			status := m.StatusFail
			if event.Action == "pass" {
				status = m.StatusPass
			}

			output := ""
			if builder, ok := outputs[key]; ok {
				output = builder.String()
			}

			tests = append(tests, m.TestResult{Name: event.Test, Status: status, Output: output})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read go test output: %w", err)
	}

	return tests, nil
}

// MutationTest runs the configured mutation command, which prints a JSON
// array of mutant results. Without a command the built-in generator is used.
func (b *GoBuilder) MutationTest(ctx context.Context, timeout time.Duration) ([]m.MutantResult, error) {
	if b.cfg.MutationCommand == "" {
		return b.builtinMutationTest(ctx, timeout)
	}

	result, err := b.runner.Run(ctx, ShellCommand(string(b.workDir), b.cfg.MutationCommand, timeout))
	if failure := toolFailure("mutation test", result, err); failure != nil {
		return nil, failure
	}

	var mutants []m.MutantResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(result.Stdout)), &mutants); err != nil {
		return nil, &m.BuildError{Phase: "mutation test", Output: result.Output(), Err: fmt.Errorf("decode results: %w", err)}
	}

	return mutants, nil
}

// CoverageReport collects a cover profile, renders it as HTML into the
// coverage directory and returns the per-function summary.
func (b *GoBuilder) CoverageReport(ctx context.Context) (string, error) {
	profile := filepath.Join(string(b.workDir), coverProfileName)

	result, err := b.runner.Run(ctx, b.goCmd(0, "test", "-count=1", "-covermode=atomic", "-coverprofile="+profile, b.packages()))
	if err != nil {
		return "", &m.BuildError{Phase: "coverage", Output: result.Output(), Err: err}
	}

	if _, statErr := os.Stat(profile); statErr != nil {
		return "", &m.BuildError{Phase: "coverage", Output: result.Output(), Err: errors.New("no cover profile produced")}
	}

	summary, err := b.runner.Run(ctx, b.goCmd(0, "tool", "cover", "-func="+profile))
	if failure := toolFailure("coverage", summary, err); failure != nil {
		return "", failure
	}

	dir := filepath.Join(string(b.workDir), coverReportDir)
	if err := os.MkdirAll(dir, 0o750); err == nil {
		html, htmlErr := b.runner.Run(ctx, b.goCmd(0, "tool", "cover", "-html="+profile, "-o", filepath.Join(dir, "index.html")))
		if toolFailure("coverage", html, htmlErr) == nil {
			b.coverageDir = m.Path(dir)
		}
	}

	return summary.Stdout, nil
}

// CoverageReportDir returns the HTML coverage directory once CoverageReport produced it.
func (b *GoBuilder) CoverageReportDir() (m.Path, bool) {
	return b.coverageDir, b.coverageDir != ""
}

// MutationCoverageReportDir returns the configured mutation report directory.
func (b *GoBuilder) MutationCoverageReportDir() (m.Path, bool) {
	if b.cfg.MutationCoverageDir == "" {
		return "", false
	}

	if filepath.IsAbs(b.cfg.MutationCoverageDir) {
		return m.Path(b.cfg.MutationCoverageDir), true
	}

	return m.Path(filepath.Join(string(b.workDir), b.cfg.MutationCoverageDir)), true
}
