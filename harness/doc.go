// Package harness runs the cargo-hack binary against fixture projects from
// go test and asserts on what it prints.
//
//	func TestEachFeature(t *testing.T) {
//		harness.CargoHack(t, "check", "--each-feature").
//			AssertSuccess("real").
//			StderrContains("running `cargo check` on real")
//	}
//
// Every invocation runs in a fresh copy of a fixture under test/fixtures.
// When CARGO_HACK_TEST_TOOLCHAIN=N is set, the 1.N toolchain is installed
// once per process, every invocation receives --version-range=1.N..1.N and
// "`cargo" in expected patterns is read as "`cargo +1.N".
//
// Environment variables:
//   - CARGO_HACK_BIN: binary under test (default cargo-hack from PATH)
//   - CARGO_HACK_TEST_TOOLCHAIN: minor version of the pinned toolchain
//   - HACKCHECK_FIXTURES: fixtures root (default <module root>/test/fixtures)
//   - HACKCHECK_TMPDIR: where projects are materialized
package harness
