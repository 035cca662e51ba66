package domain

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

// collectArtifacts verifies every declared and derived artifact. Missing
// artifacts are dropped with a warning. Regression runs report none.
func (o *orchestrator) collectArtifacts(ctx context.Context, run *gradingRun) []m.Artifact {
	if run.args.RegressionTest {
		run.log.Hidden("Regression run, artifacts suppressed")
		return []m.Artifact{}
	}

	specs := make([]m.ArtifactSpec, 0, len(run.spec().Build.Artifacts)+len(run.derivedArtifacts))
	specs = append(specs, run.spec().Build.Artifacts...)
	specs = append(specs, run.derivedArtifacts...)

	found := make([]*m.Artifact, len(specs))

	var group errgroup.Group

	for i, spec := range specs {
		i, spec := i, spec
		path := m.Path(spec.Path)
		if !filepath.IsAbs(spec.Path) {
			path = o.fsAdapter.JoinPath(string(run.args.WorkspaceDir), spec.Path)
		}

		group.Go(func() error {
			exists, err := o.fsAdapter.Exists(ctx, path)
			if err != nil {
				run.log.Warn("Could not check artifact %q at %s: %v", spec.Name, path, err)
				return nil
			}

			if !exists {
				run.log.Warn("Artifact %q not found at %s", spec.Name, path)
				return nil
			}

			found[i] = &m.Artifact{Name: spec.Name, Path: path}

			return nil
		})
	}

	_ = group.Wait()

	artifacts := make([]m.Artifact, 0, len(specs))

	for _, artifact := range found {
		if artifact != nil {
			artifacts = append(artifacts, *artifact)
		}
	}

	return artifacts
}
