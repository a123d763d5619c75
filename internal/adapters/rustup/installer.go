package rustup

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/renato0307/hackcheck/internal/domain"
	"github.com/renato0307/hackcheck/internal/logging"
	"github.com/renato0307/hackcheck/internal/ports"
)

// execCommand builds the rustup command; overridden in tests
var execCommand = exec.CommandContext

// Installer installs toolchains with `rustup toolchain install`
type Installer struct {
	lockDir string
	rustup  string
}

// Compile-time interface verification
var _ ports.ToolchainInstaller = (*Installer)(nil)

// NewInstaller creates an installer. Concurrent installs of the same
// toolchain from different processes are serialized with a lock file in lockDir.
func NewInstaller(lockDir string) *Installer {
	return &Installer{lockDir: lockDir, rustup: "rustup"}
}

// Install runs `rustup toolchain install 1.N --no-self-update`
func (i *Installer) Install(ctx context.Context, version domain.ToolchainVersion) error {
	if err := os.MkdirAll(i.lockDir, 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	lockPath := filepath.Join(i.lockDir, fmt.Sprintf("toolchain-%s.lock", version))
	unlock, err := acquireLock(lockPath)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", lockPath, err)
	}
	defer unlock()

	logging.Logger.Info("Installing toolchain", "toolchain", version.String())

	cmd := execCommand(ctx, i.rustup, "toolchain", "install", version.String(), "--no-self-update")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("rustup toolchain install %s failed: %w\nOutput: %s", version, err, output)
	}

	logging.Logger.Debug("Toolchain installed", "toolchain", version.String())
	return nil
}
