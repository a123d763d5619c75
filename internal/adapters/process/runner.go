package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/renato0307/hackcheck/internal/domain"
	"github.com/renato0307/hackcheck/internal/logging"
	"github.com/renato0307/hackcheck/internal/ports"
)

// ExecRunner implements CommandRunner with os/exec
type ExecRunner struct {
	timeout time.Duration
}

// Compile-time interface verification
var _ ports.CommandRunner = (*ExecRunner)(nil)

// NewExecRunner creates a runner. A zero timeout waits for the process forever.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{timeout: timeout}
}

// Run executes inv in dir and captures both streams
func (r *ExecRunner) Run(ctx context.Context, inv domain.Invocation, dir string) (domain.CapturedOutput, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Logger.Debug("Running command", "command", inv.String(), "dir", dir)
	start := time.Now()
	err := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.CapturedOutput{}, fmt.Errorf("%s: timed out after %v: %w", inv, r.timeout, ctx.Err())
	}

	exitCode := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		return domain.CapturedOutput{}, fmt.Errorf("%w: %s: %w", domain.ErrSpawn, inv, err)
	}

	logging.Logger.Debug("Command finished",
		"command", inv.String(),
		"exit_code", exitCode,
		"duration", time.Since(start))

	return domain.CapturedOutput{
		ExitCode: exitCode,
		Stderr:   decode(stderr.Bytes()),
		Stdout:   decode(stdout.Bytes()),
	}, nil
}

// decode converts output to text, replacing invalid UTF-8 with U+FFFD
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
