package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// VersionRangeFlag is the cargo-hack flag that constrains the toolchain range.
const VersionRangeFlag = "--version-range"

// ToolchainVersion is the minor component of a 1.x Rust toolchain (38 in 1.38).
type ToolchainVersion uint32

// ParseToolchainVersion parses a minor version such as "38".
func ParseToolchainVersion(s string) (ToolchainVersion, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidToolchain, s)
	}
	return ToolchainVersion(n), nil
}

// String returns the full toolchain name, e.g. "1.38".
func (v ToolchainVersion) String() string {
	return fmt.Sprintf("1.%d", uint32(v))
}

// Selector returns the rustup toolchain selector, e.g. "+1.38".
func (v ToolchainVersion) Selector() string {
	return "+" + v.String()
}

// VersionRange returns a --version-range argument pinning exactly this version.
func (v ToolchainVersion) VersionRange() string {
	return fmt.Sprintf("%s=%s..%s", VersionRangeFlag, v, v)
}

// Satisfies reports whether v is at least the required minor version.
func (v ToolchainVersion) Satisfies(require uint32) bool {
	return uint32(v) >= require
}
