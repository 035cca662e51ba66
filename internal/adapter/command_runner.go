package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	m "gradeline.dev/pkg/gradeline/internal/model"
)

// Command describes a single external tool invocation.
type Command struct {
	Dir     string
	Name    string
	Args    []string
	Env     []string
	Timeout time.Duration
}

// ShellCommand wraps a shell snippet so it runs through sh -c.
func ShellCommand(dir, script string, timeout time.Duration, env ...string) Command {
	return Command{
		Dir:     dir,
		Name:    "sh",
		Args:    []string{"-c", script},
		Env:     env,
		Timeout: timeout,
	}
}

// CommandResult holds the captured output of a finished command.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Output returns stdout followed by stderr.
func (r CommandResult) Output() string {
	return r.Stdout + r.Stderr
}

// Success reports whether the command exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner abstracts process execution for the builders.
type CommandRunner interface {
	// Run executes cmd and waits for it. A non-zero exit is reported through
	// CommandResult.ExitCode, not as an error. Exceeding cmd.Timeout returns
	// an error wrapping model.ErrTimeout.
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}

// LocalCommandRunner provides a concrete implementation using os/exec.
type LocalCommandRunner struct{}

// NewLocalCommandRunner constructs a LocalCommandRunner.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{}
}

// Run executes the command in its working directory.
func (r *LocalCommandRunner) Run(ctx context.Context, cmd Command) (CommandResult, error) {
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	// #nosec G204 - commands come from the instructor's grading spec
	execCmd := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	execCmd.Dir = cmd.Dir

	if len(cmd.Env) > 0 {
		execCmd.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer

	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()

	result := CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.ExitCode = -1
		return result, fmt.Errorf("%s exceeded %s: %w", cmd.Name, cmd.Timeout, m.ErrTimeout)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}

		return result, fmt.Errorf("failed to run %s: %w", cmd.Name, err)
	}

	return result, nil
}
