package domain

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// dedupeNested drops every path that lives under another path in the list,
// so a matched directory is copied once instead of file by file.
func dedupeNested(paths []m.Path) []m.Path {
	sorted := make([]string, 0, len(paths))
	for _, path := range paths {
		sorted = append(sorted, strings.TrimSuffix(filepath.ToSlash(string(path)), "/"))
	}

	sort.Strings(sorted)

	kept := make([]m.Path, 0, len(sorted))

	for _, path := range sorted {
		nested := false

		for _, parent := range kept {
			if path == string(parent) || strings.HasPrefix(path, string(parent)+"/") {
				nested = true
				break
			}
		}

		if !nested {
			kept = append(kept, m.Path(path))
		}
	}

	return kept
}

// resetToSolution replaces the workspace with a fresh copy of the solution.
func (o *orchestrator) resetToSolution(ctx context.Context, run *gradingRun) error {
	if err := o.fsAdapter.RemoveAll(ctx, run.args.WorkspaceDir); err != nil {
		return fmt.Errorf("clear workspace: %w", err)
	}

	if err := o.fsAdapter.MkdirAll(ctx, run.args.WorkspaceDir); err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}

	if err := o.fsAdapter.CopyDir(ctx, run.args.SolutionDir, run.args.WorkspaceDir); err != nil {
		return fmt.Errorf("copy solution: %w", err)
	}

	return nil
}

// overlay copies the submission paths matching patterns over the workspace.
// Every workspace path matching patterns is deleted first, including
// solution files the submission does not contain, so the staged tree holds
// only submitted versions. It returns the number of paths copied.
func (o *orchestrator) overlay(ctx context.Context, run *gradingRun, patterns []string) (int, error) {
	if len(patterns) == 0 {
		return 0, nil
	}

	matches, err := o.fsAdapter.Glob(ctx, run.args.SubmissionDir, patterns)
	if err != nil {
		return 0, err
	}

	staged, err := o.fsAdapter.Glob(ctx, run.args.WorkspaceDir, patterns)
	if err != nil {
		return 0, err
	}

	paths := dedupeNested(matches)
	removals := dedupeNested(append(append([]m.Path{}, staged...), matches...))

	deletes, deleteCtx := errgroup.WithContext(ctx)
	for _, path := range removals {
		target := o.fsAdapter.JoinPath(string(run.args.WorkspaceDir), filepath.FromSlash(string(path)))

		deletes.Go(func() error {
			if err := o.fsAdapter.RemoveAll(deleteCtx, target); err != nil {
				return fmt.Errorf("remove %s: %w", target, err)
			}

			return nil
		})
	}

	if err := deletes.Wait(); err != nil {
		return 0, err
	}

	copies, copyCtx := errgroup.WithContext(ctx)
	for _, path := range paths {
		path := path
		src := o.fsAdapter.JoinPath(string(run.args.SubmissionDir), filepath.FromSlash(string(path)))
		dst := o.fsAdapter.JoinPath(string(run.args.WorkspaceDir), filepath.FromSlash(string(path)))

		copies.Go(func() error {
			if err := o.fsAdapter.CopyPath(copyCtx, src, dst); err != nil {
				return fmt.Errorf("copy %s: %w", path, err)
			}

			return nil
		})
	}

	if err := copies.Wait(); err != nil {
		return 0, err
	}

	run.log.Hidden("Copied %d submission path(s) matching %s", len(paths), strings.Join(patterns, ", "))

	return len(paths), nil
}

// resetAndOverlay restores the solution and overlays each pattern group in order.
func (o *orchestrator) resetAndOverlay(ctx context.Context, run *gradingRun, groups ...[]string) (int, error) {
	if err := o.resetToSolution(ctx, run); err != nil {
		return 0, err
	}

	total := 0

	for _, patterns := range groups {
		copied, err := o.overlay(ctx, run, patterns)
		if err != nil {
			return total, err
		}

		total += copied
	}

	return total, nil
}
