package services

import (
	"github.com/renato0307/hackcheck/internal/domain"
	"github.com/renato0307/hackcheck/internal/logging"
)

// HackSubcommand is the cargo subcommand implemented by the tool under test
const HackSubcommand = "hack"

// CommandBuilder builds invocations of the tool under test
type CommandBuilder struct {
	binary    string
	toolchain *ToolchainSelector
}

// NewCommandBuilder creates a builder for binary
func NewCommandBuilder(binary string, toolchain *ToolchainSelector) *CommandBuilder {
	return &CommandBuilder{
		binary:    binary,
		toolchain: toolchain,
	}
}

// Build returns `<binary> hack [--version-range=1.N..1.N] args...`.
// The range is only injected when a toolchain is pinned and the caller did
// not pass a --version-range of its own.
func (b *CommandBuilder) Build(args ...string) domain.Invocation {
	built := make([]string, 0, len(args)+2)
	built = append(built, HackSubcommand)

	if v, ok := b.toolchain.Resolve(); ok && !domain.HasArgPrefix(args, domain.VersionRangeFlag) {
		built = append(built, v.VersionRange())
	}
	built = append(built, args...)

	inv := domain.Invocation{Program: b.binary, Args: built}
	logging.Logger.Debug("Built invocation", "command", inv.String())
	return inv
}
