package adapter_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gradeline.dev/pkg/gradeline/internal/adapter"
	adaptermocks "gradeline.dev/pkg/gradeline/internal/adapter/mocks"
	m "gradeline.dev/pkg/gradeline/internal/model"
)

func shellScript(cmd adapter.Command) string {
	if cmd.Name != "sh" || len(cmd.Args) != 2 {
		return ""
	}

	return cmd.Args[1]
}

func TestScriptBuilder_Test(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes results from stdout", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		runner.EXPECT().Run(ctx, mock.MatchedBy(func(cmd adapter.Command) bool {
			return shellScript(cmd) == "pytest --json" && cmd.Timeout == 5*time.Second && cmd.Dir == "/work"
		})).Return(adapter.CommandResult{
			Stdout:   `[{"name":"test_add","status":"pass"},{"name":"test_sub","status":"fail","output":"assert 1 == 2"}]`,
			ExitCode: 1,
		}, nil)

		builder := adapter.NewScriptBuilder("/work", m.ScriptConfig{Test: "pytest --json"}, runner)

		tests, err := builder.Test(ctx, 5*time.Second)
		require.NoError(t, err)
		require.Len(t, tests, 2)
		assert.True(t, tests[0].Passed())
		assert.Equal(t, m.StatusFail, tests[1].Status)
		assert.Equal(t, "assert 1 == 2", tests[1].Output)
	})

	t.Run("reads the results file and removes stale copies first", func(t *testing.T) {
		dir := t.TempDir()
		results := filepath.Join(dir, "results.json")
		require.NoError(t, os.WriteFile(results, []byte("stale"), 0o600))

		runner := adaptermocks.NewMockCommandRunner(t)
		runner.EXPECT().Run(ctx, mock.Anything).RunAndReturn(func(context.Context, adapter.Command) (adapter.CommandResult, error) {
			_, statErr := os.Stat(results)
			assert.True(t, os.IsNotExist(statErr), "stale results should be removed before the run")

			return adapter.CommandResult{}, os.WriteFile(results, []byte(`[{"name":"test_ok","status":"pass"}]`), 0o600)
		})

		builder := adapter.NewScriptBuilder(m.Path(dir), m.ScriptConfig{Test: "make test", TestResults: "results.json"}, runner)

		tests, err := builder.Test(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, []m.TestResult{{Name: "test_ok", Status: m.StatusPass}}, tests)
	})

	t.Run("timeout becomes a BuildError", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		runner.EXPECT().Run(ctx, mock.Anything).Return(adapter.CommandResult{ExitCode: -1}, m.ErrTimeout)

		builder := adapter.NewScriptBuilder("/work", m.ScriptConfig{Test: "make test"}, runner)

		_, err := builder.Test(ctx, time.Second)

		var buildErr *m.BuildError
		require.ErrorAs(t, err, &buildErr)
		assert.True(t, buildErr.Timeout())
		assert.Equal(t, "test", buildErr.Phase)
	})

	t.Run("empty output is a BuildError", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		runner.EXPECT().Run(ctx, mock.Anything).Return(adapter.CommandResult{ExitCode: 2}, nil)

		builder := adapter.NewScriptBuilder("/work", m.ScriptConfig{Test: "make test"}, runner)

		_, err := builder.Test(ctx, 0)

		var buildErr *m.BuildError
		require.ErrorAs(t, err, &buildErr)
		assert.Contains(t, buildErr.Error(), "no results reported (exit status 2)")
	})

	t.Run("missing test command is a config error", func(t *testing.T) {
		builder := adapter.NewScriptBuilder("/work", m.ScriptConfig{}, adaptermocks.NewMockCommandRunner(t))

		_, err := builder.Test(ctx, 0)

		var configErr *m.ConfigError
		assert.ErrorAs(t, err, &configErr)
	})
}

func TestScriptBuilder_Lint(t *testing.T) {
	ctx := context.Background()

	t.Run("no linter passes", func(t *testing.T) {
		builder := adapter.NewScriptBuilder("/work", m.ScriptConfig{}, adaptermocks.NewMockCommandRunner(t))

		result, err := builder.Lint(ctx)
		require.NoError(t, err)
		assert.Equal(t, m.StatusPass, result.Status)
	})

	t.Run("non-zero exit fails lint without error", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		runner.EXPECT().Run(ctx, mock.Anything).Return(adapter.CommandResult{Stdout: "E501 line too long", ExitCode: 1}, nil)

		builder := adapter.NewScriptBuilder("/work", m.ScriptConfig{Lint: "flake8"}, runner)

		result, err := builder.Lint(ctx)
		require.NoError(t, err)
		assert.Equal(t, m.StatusFail, result.Status)
		assert.Equal(t, "E501 line too long", result.Output)
	})
}

func TestScriptBuilder_SetupAndBuild(t *testing.T) {
	ctx := context.Background()

	runner := adaptermocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(ctx, mock.MatchedBy(func(cmd adapter.Command) bool {
		return shellScript(cmd) == "./setup.sh"
	})).Run(func(_ context.Context, cmd adapter.Command) {
		assert.ElementsMatch(t, []string{"GRADELINE_VENV_DIR=.venv", "GRADELINE_CACHE_KEY=key-1"}, cmd.Env)
	}).Return(adapter.CommandResult{}, nil)
	runner.EXPECT().Run(ctx, mock.MatchedBy(func(cmd adapter.Command) bool {
		return shellScript(cmd) == "make"
	})).Return(adapter.CommandResult{Stderr: "syntax error", ExitCode: 2}, nil)

	builder := adapter.NewScriptBuilder("/work", m.ScriptConfig{Setup: "./setup.sh", Build: "make"}, runner)

	require.NoError(t, builder.SetupVenv(ctx, ".venv", "key-1"))

	err := builder.BuildClean(ctx, time.Minute)

	var buildErr *m.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "syntax error", buildErr.Output)
	assert.False(t, buildErr.Timeout())
}

func TestScriptBuilder_Unsupported(t *testing.T) {
	ctx := context.Background()
	builder := adapter.NewScriptBuilder("/work", m.ScriptConfig{MutationCoverageDir: "mutants", CoverageDir: "/abs/cov"}, adaptermocks.NewMockCommandRunner(t))

	_, err := builder.MutationTest(ctx, 0)
	assert.True(t, errors.Is(err, m.ErrUnsupported))

	_, err = builder.CoverageReport(ctx)
	assert.True(t, errors.Is(err, m.ErrUnsupported))

	dir, ok := builder.MutationCoverageReportDir()
	assert.True(t, ok)
	assert.Equal(t, m.Path(filepath.Join("/work", "mutants")), dir)

	dir, ok = builder.CoverageReportDir()
	assert.True(t, ok)
	assert.Equal(t, m.Path("/abs/cov"), dir)
}

func TestNewBuilder(t *testing.T) {
	runner := adaptermocks.NewMockCommandRunner(t)

	builder, err := adapter.NewBuilder("/work", m.BuildConfig{Preset: m.PresetGo}, runner)
	require.NoError(t, err)
	assert.IsType(t, &adapter.GoBuilder{}, builder)

	factory := adapter.NewBuilderFactory(runner)

	builder, err = factory("/work", m.BuildConfig{Preset: m.PresetScript})
	require.NoError(t, err)
	assert.IsType(t, &adapter.ScriptBuilder{}, builder)

	_, err = adapter.NewBuilder("/work", m.BuildConfig{Preset: "gradle"}, runner)

	var configErr *m.ConfigError
	assert.ErrorAs(t, err, &configErr)
	assert.False(t, adapter.IsKnownPreset("gradle"))
	assert.Equal(t, []m.BuildPreset{m.PresetGo, m.PresetScript}, adapter.Presets())
}
