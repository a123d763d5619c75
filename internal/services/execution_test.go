package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hackcheck/internal/domain"
	portsmocks "github.com/renato0307/hackcheck/internal/ports/mocks"
)

func TestExecutor_Gate(t *testing.T) {
	tests := []struct {
		name      string
		toolchain *domain.ToolchainVersion
		require   uint32
		wantSkip  bool
	}{
		{"unpinned ignores requirement", nil, 60, false},
		{"no requirement", pinned(38), 0, false},
		{"requirement met", pinned(41), 41, false},
		{"requirement unmet", pinned(38), 41, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExecutor(nil, nil, NewToolchainSelector(tt.toolchain, nil))
			outcome, skip := e.Gate(tt.require)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantSkip, outcome.IsSkipped())
			if skip {
				assert.Contains(t, outcome.SkipReason(), "1.41")
			}
		})
	}
}

func TestExecutor_Run_SkipsWithoutSpawning(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	e := NewExecutor(nil, runner, NewToolchainSelector(pinned(38), nil))

	outcome, err := e.Run(context.Background(), domain.Invocation{Program: "cargo-hack"}, "/tmp", 41)
	require.NoError(t, err)
	assert.True(t, outcome.IsSkipped())
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecutor_Run_Captures(t *testing.T) {
	inv := domain.Invocation{Program: "cargo-hack", Args: []string{"hack", "check"}}
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, inv, "/work").
		Return(domain.CapturedOutput{Stdout: "Compiling foo", ExitCode: 0}, nil).Once()
	e := NewExecutor(nil, runner, NewToolchainSelector(nil, nil))

	outcome, err := e.Run(context.Background(), inv, "/work", 0)
	require.NoError(t, err)

	out, ok := outcome.Output()
	require.True(t, ok)
	assert.Equal(t, "Compiling foo", out.Stdout)
}

func TestExecutor_Run_SpawnFailure(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.CapturedOutput{}, domain.ErrSpawn).Once()
	e := NewExecutor(nil, runner, NewToolchainSelector(nil, nil))

	outcome, err := e.Run(context.Background(), domain.Invocation{}, "/work", 0)
	assert.ErrorIs(t, err, domain.ErrSpawn)
	assert.False(t, outcome.IsSkipped())
}

func TestExecutor_Execute_RemovesProject(t *testing.T) {
	root := filepath.Join(t.TempDir(), "test_project0")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "member1"), 0755))
	project := domain.NewMaterializedProject(root, domain.FixtureModel{Template: "real", Subdir: "member1"})

	fixtures := portsmocks.NewMockFixtureMaterializer(t)
	fixtures.EXPECT().Materialize("real/member1").Return(project, nil).Once()
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything, project.WorkDir).
		Return(domain.CapturedOutput{ExitCode: 1}, nil).Once()
	e := NewExecutor(fixtures, runner, NewToolchainSelector(nil, nil))

	outcome, err := e.Execute(context.Background(), domain.Invocation{}, "real/member1", 0)
	require.NoError(t, err)
	out, ok := outcome.Output()
	require.True(t, ok)
	assert.False(t, out.Success())

	_, err = os.Stat(root)
	assert.True(t, os.IsNotExist(err), "project should be removed after the run")
}

func TestExecutor_Execute_SkipDoesNotMaterialize(t *testing.T) {
	fixtures := portsmocks.NewMockFixtureMaterializer(t)
	runner := portsmocks.NewMockCommandRunner(t)
	e := NewExecutor(fixtures, runner, NewToolchainSelector(pinned(38), nil))

	outcome, err := e.Execute(context.Background(), domain.Invocation{}, "real", 41)
	require.NoError(t, err)
	assert.True(t, outcome.IsSkipped())
}

func TestExecutor_Execute_MaterializeFailure(t *testing.T) {
	fixtures := portsmocks.NewMockFixtureMaterializer(t)
	fixtures.EXPECT().Materialize("a/b/c").Return(nil, domain.ErrMalformedFixture).Once()
	e := NewExecutor(fixtures, portsmocks.NewMockCommandRunner(t), NewToolchainSelector(nil, nil))

	outcome, err := e.Execute(context.Background(), domain.Invocation{}, "a/b/c", 0)
	assert.ErrorIs(t, err, domain.ErrMalformedFixture)
	assert.False(t, outcome.IsSkipped())
}

func TestExecutor_Execute_PropagatesRunnerError(t *testing.T) {
	root := t.TempDir()
	fixtures := portsmocks.NewMockFixtureMaterializer(t)
	fixtures.EXPECT().Materialize("real").
		Return(domain.NewMaterializedProject(root, domain.FixtureModel{Template: "real"}), nil).Once()
	runner := portsmocks.NewMockCommandRunner(t)
	boom := errors.New("boom")
	runner.EXPECT().Run(mock.Anything, mock.Anything, root).Return(domain.CapturedOutput{}, boom).Once()
	e := NewExecutor(fixtures, runner, NewToolchainSelector(nil, nil))

	_, err := e.Execute(context.Background(), domain.Invocation{}, "real", 0)
	assert.ErrorIs(t, err, boom)
}
