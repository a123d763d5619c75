package services

import (
	"context"
	"sync"

	"github.com/renato0307/hackcheck/internal/domain"
	"github.com/renato0307/hackcheck/internal/logging"
	"github.com/renato0307/hackcheck/internal/ports"
)

// ToolchainSelector exposes the pinned toolchain, installing it on first use
type ToolchainSelector struct {
	installer ports.ToolchainInstaller
	once      sync.Once
	version   *domain.ToolchainVersion
}

// NewToolchainSelector creates a selector. A nil version disables pinning;
// a nil installer skips installation.
func NewToolchainSelector(version *domain.ToolchainVersion, installer ports.ToolchainInstaller) *ToolchainSelector {
	return &ToolchainSelector{
		installer: installer,
		version:   version,
	}
}

// Resolve returns the pinned toolchain, if any. The first call installs it;
// concurrent callers wait for that single attempt. Install failures are
// logged and otherwise ignored.
func (s *ToolchainSelector) Resolve() (domain.ToolchainVersion, bool) {
	if s.version == nil {
		return 0, false
	}
	s.once.Do(func() {
		if s.installer == nil {
			return
		}
		if err := s.installer.Install(context.Background(), *s.version); err != nil {
			logging.Logger.Warn("Toolchain installation failed, continuing without it",
				"toolchain", s.version.String(),
				"error", err)
		}
	})
	return *s.version, true
}

// Suffix returns " +1.N" for a pinned toolchain and "" otherwise, ready to be
// appended to an invocation marker in expected output.
func (s *ToolchainSelector) Suffix() string {
	v, ok := s.Resolve()
	if !ok {
		return ""
	}
	return " " + v.Selector()
}
