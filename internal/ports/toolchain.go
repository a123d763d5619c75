package ports

import (
	"context"

	"github.com/renato0307/hackcheck/internal/domain"
)

// ToolchainInstaller installs a pinned Rust toolchain
type ToolchainInstaller interface {
	Install(ctx context.Context, version domain.ToolchainVersion) error
}
