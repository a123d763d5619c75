package ports

import (
	"context"

	"github.com/renato0307/hackcheck/internal/domain"
)

// CommandRunner spawns an invocation and waits for it to exit
type CommandRunner interface {
	// Run executes inv in dir. A non-zero exit status is not an error;
	// failing to start the process is, and wraps domain.ErrSpawn.
	Run(ctx context.Context, inv domain.Invocation, dir string) (domain.CapturedOutput, error)
}
