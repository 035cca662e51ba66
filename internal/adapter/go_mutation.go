package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"gradeline.dev/pkg/gradeline/internal/domain/mutagens"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

const (
	mutationReportName = "mutants.json"
	// A mutant that runs longer than this is assumed to hang and counts as detected.
	defaultMutantTimeout = time.Minute
)

// overlay is the file format accepted by go test -overlay.
type overlay struct {
	Replace map[string]string `json:"Replace"`
}

// builtinMutationTest generates mutants for every non-test Go file in the
// configured packages and runs go test once per mutant.
func (b *GoBuilder) builtinMutationTest(ctx context.Context, timeout time.Duration) ([]m.MutantResult, error) {
	operators, err := b.mutationOperators()
	if err != nil {
		return nil, &m.BuildError{Phase: "mutation test", Err: err}
	}

	files, err := b.mutableFiles()
	if err != nil {
		return nil, &m.BuildError{Phase: "mutation test", Err: err}
	}

	var mutants []mutagens.Mutant

	for _, rel := range files {
		content, err := os.ReadFile(filepath.Join(string(b.workDir), filepath.FromSlash(rel)))
		if err != nil {
			return nil, &m.BuildError{Phase: "mutation test", Err: err}
		}

		generated, err := mutagens.Generate(rel, content, operators...)
		if err != nil {
			return nil, &m.BuildError{Phase: "mutation test", Err: err}
		}

		mutants = append(mutants, generated...)
	}

	scratch, err := os.MkdirTemp("", "gradeline-mutants-")
	if err != nil {
		return nil, &m.BuildError{Phase: "mutation test", Err: err}
	}
	defer os.RemoveAll(scratch)

	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	results := make([]*m.MutantResult, len(mutants))

	group, groupCtx := errgroup.WithContext(runCtx)
	group.SetLimit(b.mutationWorkers())

	for i, mutant := range mutants {
		i, mutant := i, mutant
		group.Go(func() error {
			result, err := b.runMutant(groupCtx, scratch, i, mutant)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, &m.BuildError{Phase: "mutation test", Err: fmt.Errorf("mutants exceeded %s: %w", timeout, m.ErrTimeout)}
		}

		return nil, &m.BuildError{Phase: "mutation test", Err: err}
	}

	viable := make([]m.MutantResult, 0, len(results))

	for _, result := range results {
		if result != nil {
			viable = append(viable, *result)
		}
	}

	if err := b.writeMutationReport(viable); err != nil {
		return nil, &m.BuildError{Phase: "mutation test", Err: err}
	}

	return viable, nil
}

// runMutant tests one mutant. It returns nil for a mutant that does not compile.
func (b *GoBuilder) runMutant(ctx context.Context, scratch string, index int, mutant mutagens.Mutant) (*m.MutantResult, error) {
	source := filepath.Join(string(b.workDir), filepath.FromSlash(mutant.File))
	replacement := filepath.Join(scratch, fmt.Sprintf("mutant-%d.go", index))

	if err := os.WriteFile(replacement, mutant.Code, 0o600); err != nil {
		return nil, err
	}

	data, err := json.Marshal(overlay{Replace: map[string]string{source: replacement}})
	if err != nil {
		return nil, err
	}

	overlayPath := filepath.Join(scratch, fmt.Sprintf("mutant-%d.json", index))
	if err := os.WriteFile(overlayPath, data, 0o600); err != nil {
		return nil, err
	}

	pkg := "."
	if dir := path.Dir(mutant.File); dir != "." {
		pkg = "./" + dir
	}

	result, err := b.runner.Run(ctx, b.goCmd(defaultMutantTimeout, "test", "-count=1", "-failfast", "-json", "-overlay="+overlayPath, pkg))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	status := m.StatusPass

	switch {
	case errors.Is(err, m.ErrTimeout):
	case err != nil:
		return nil, err
	case isBuildFailure(result.Output()):
		return nil, nil
	case result.Success():
		status = m.StatusFail
	}

	mutantResult := &m.MutantResult{
		Name:      mutant.ID,
		ShortName: mutant.Description,
		Location:  mutant.Location(),
		Status:    status,
	}

	if status == m.StatusPass {
		mutantResult.Tests = failedTests(result.Stdout)
	}

	if status == m.StatusFail {
		mutantResult.Prompt = fmt.Sprintf("No test failed after the code at %s was changed (%s).", mutant.Location(), mutant.Description)
	}

	return mutantResult, nil
}

// failedTests lists the tests go test -json reported as failing, in the
// order they finished. Skipped tests are not failures here.
func failedTests(stdout string) []string {
	var names []string

	for _, line := range strings.Split(stdout, "\n") {
		if !strings.HasPrefix(line, "{") {
			continue
		}

		var event testEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue
		}

		if event.Action == "fail" && event.Test != "" {
			names = append(names, event.Test)
		}
	}

	return names
}

func isBuildFailure(output string) bool {
	return strings.Contains(output, "[build failed]") || strings.Contains(output, "[setup failed]")
}

func (b *GoBuilder) mutationOperators() ([]mutagens.Operator, error) {
	operators := make([]mutagens.Operator, 0, len(b.cfg.MutationOperators))

	for _, name := range b.cfg.MutationOperators {
		op, err := mutagens.ParseOperator(name)
		if err != nil {
			return nil, err
		}

		operators = append(operators, op)
	}

	return operators, nil
}

func (b *GoBuilder) mutationWorkers() int {
	if b.cfg.MutationWorkers > 0 {
		return b.cfg.MutationWorkers
	}

	return runtime.NumCPU()
}

// mutableFiles lists non-test Go files under the package patterns as
// workspace-relative slash paths.
func (b *GoBuilder) mutableFiles() ([]string, error) {
	root := string(b.workDir)
	seen := map[string]bool{}

	var files []string

	for _, pattern := range strings.Fields(b.packages()) {
		dir, recursive := strings.CutSuffix(pattern, "/...")
		if pattern == "..." {
			dir, recursive = ".", true
		}

		start := filepath.Join(root, filepath.FromSlash(dir))

		err := filepath.WalkDir(start, func(current string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if current == start {
					return nil
				}

				if !recursive || skipMutationDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
				return nil
			}

			rel, err := filepath.Rel(root, current)
			if err != nil {
				return err
			}

			rel = filepath.ToSlash(rel)
			if !seen[rel] {
				seen[rel] = true
				files = append(files, rel)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("list packages %s: %w", pattern, err)
		}
	}

	return files, nil
}

func skipMutationDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "vendor" || name == "testdata" || name == coverReportDir
}

func (b *GoBuilder) writeMutationReport(results []m.MutantResult) error {
	dir, ok := b.MutationCoverageReportDir()
	if !ok {
		return nil
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create mutation report dir: %w", err)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mutation report: %w", err)
	}

	return os.WriteFile(filepath.Join(string(dir), mutationReportName), data, 0o600)
}
