// Package harness provides utilities for integration testing the hackcheck CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - HACKCHECK_*, CARGO_HACK_*: cleared so the host configuration never leaks in
//   - HACKCHECK_TMPDIR: isolated per test (temp directory)
//   - HACKCHECK_FIXTURES: the module's test/fixtures directory
//   - PATH: prefixed with a per-test bin directory holding fake tools
package harness
