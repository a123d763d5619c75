package services

import (
	"context"
	"fmt"

	"github.com/renato0307/hackcheck/internal/domain"
	"github.com/renato0307/hackcheck/internal/logging"
	"github.com/renato0307/hackcheck/internal/ports"
)

// Executor runs invocations inside materialized fixtures
type Executor struct {
	fixtures  ports.FixtureMaterializer
	runner    ports.CommandRunner
	toolchain *ToolchainSelector
}

// NewExecutor creates an Executor
func NewExecutor(
	fixtures ports.FixtureMaterializer,
	runner ports.CommandRunner,
	toolchain *ToolchainSelector,
) *Executor {
	return &Executor{
		fixtures:  fixtures,
		runner:    runner,
		toolchain: toolchain,
	}
}

// Gate reports whether an invocation requiring toolchain 1.<require> must be
// skipped. require 0 means no requirement. Without a pinned toolchain nothing
// is skipped.
func (e *Executor) Gate(require uint32) (domain.Outcome, bool) {
	v, ok := e.toolchain.Resolve()
	if !ok || require == 0 || v.Satisfies(require) {
		return domain.Outcome{}, false
	}
	reason := fmt.Sprintf("requires toolchain 1.%d, running %s", require, v)
	logging.Logger.Info("Skipping invocation", "reason", reason)
	return domain.Skipped(reason), true
}

// Run executes inv in workDir unless the requirement gate skips it
func (e *Executor) Run(ctx context.Context, inv domain.Invocation, workDir string, require uint32) (domain.Outcome, error) {
	if skipped, skip := e.Gate(require); skip {
		return skipped, nil
	}

	output, err := e.runner.Run(ctx, inv, workDir)
	if err != nil {
		return domain.Outcome{}, err
	}
	return domain.Captured(output), nil
}

// Execute materializes modelID, runs inv in it and removes the project.
// Skipped invocations never touch the filesystem.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation, modelID string, require uint32) (domain.Outcome, error) {
	if skipped, skip := e.Gate(require); skip {
		return skipped, nil
	}

	project, err := e.fixtures.Materialize(modelID)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("failed to materialize fixture %q: %w", modelID, err)
	}
	defer func() {
		if err := project.Remove(); err != nil {
			logging.Logger.Warn("Failed to remove project", "root", project.Root, "error", err)
		}
	}()

	return e.Run(ctx, inv, project.WorkDir, require)
}
