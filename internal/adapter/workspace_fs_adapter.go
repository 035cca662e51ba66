// Package adapter contains the infrastructure adapters for the gradeline CLI:
// builders, filesystem access, spec loading, report storage and the grading
// service client.
package adapter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// WorkspaceFSAdapter abstracts the filesystem operations the orchestrator
// performs on the grading workspace. It hides direct `os` access so the
// pipeline can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps orchestration decoupled from os/fs.
type WorkspaceFSAdapter interface {
	// Glob expands patterns relative to root and returns the matched paths,
	// relative to root and in slash form. Patterns support `**`.
	Glob(ctx context.Context, root m.Path, patterns []string) ([]m.Path, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Exists reports whether path exists.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// RemoveAll removes a file or directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// CopyDir recursively copies a directory tree.
	CopyDir(ctx context.Context, src, dst m.Path) error

	// CopyPath copies a single file or a whole directory.
	CopyPath(ctx context.Context, src, dst m.Path) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(ctx context.Context, path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalWorkspaceFSAdapter is the os-backed WorkspaceFSAdapter.
type LocalWorkspaceFSAdapter struct{}

// NewLocalWorkspaceFSAdapter constructs a LocalWorkspaceFSAdapter.
func NewLocalWorkspaceFSAdapter() *LocalWorkspaceFSAdapter {
	return &LocalWorkspaceFSAdapter{}
}

// Glob expands every pattern against root.
func (a *LocalWorkspaceFSAdapter) Glob(ctx context.Context, root m.Path, patterns []string) ([]m.Path, error) {
	fsys := os.DirFS(string(root))
	seen := map[string]bool{}

	var matches []m.Path

	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")
		if !doublestar.ValidatePattern(pattern) {
			return nil, &m.ConfigError{Reason: fmt.Sprintf("invalid submission file pattern %q", pattern)}
		}

		found, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q in %s: %w", pattern, root, err)
		}

		for _, match := range found {
			if seen[match] {
				continue
			}

			seen[match] = true
			matches = append(matches, m.Path(match))
		}
	}

	return matches, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalWorkspaceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path exists.
func (a *LocalWorkspaceFSAdapter) Exists(_ context.Context, path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// RemoveAll removes a directory and all its contents.
func (a *LocalWorkspaceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// MkdirAll creates path and any missing parents.
func (a *LocalWorkspaceFSAdapter) MkdirAll(_ context.Context, path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// CopyPath copies a file, or a directory tree when src is a directory.
func (a *LocalWorkspaceFSAdapter) CopyPath(ctx context.Context, src, dst m.Path) error {
	info, err := os.Stat(string(src))
	if err != nil {
		return err
	}

	if info.IsDir() {
		return a.CopyDir(ctx, src, dst)
	}

	return a.copyFile(string(src), string(dst), info.Mode())
}

// CopyDir recursively copies a directory tree.
func (a *LocalWorkspaceFSAdapter) CopyDir(ctx context.Context, src, dst m.Path) error {
	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		// Skip version control metadata
		if info.IsDir() && filepath.Base(path) == ".git" {
			return filepath.SkipDir
		}

		targetPath := filepath.Join(string(dst), relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode()|0o700)
		}

		return a.copyFile(path, targetPath, info.Mode())
	})
}

// copyFile copies a single file.
func (a *LocalWorkspaceFSAdapter) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src is a workspace or submission path, not user input
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is internal destination path, not user input
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// JoinPath joins path elements into a single path.
func (a *LocalWorkspaceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
