package harness

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/renato0307/hackcheck/internal/adapters/fixture"
	"github.com/renato0307/hackcheck/internal/adapters/process"
	"github.com/renato0307/hackcheck/internal/adapters/rustup"
	"github.com/renato0307/hackcheck/internal/config"
	"github.com/renato0307/hackcheck/internal/platform"
	"github.com/renato0307/hackcheck/internal/ports"
	"github.com/renato0307/hackcheck/internal/services"
)

// TB is the part of testing.TB the harness needs
type TB interface {
	Errorf(format string, args ...any)
	FailNow()
	Helper()
	Logf(format string, args ...any)
}

// Harness builds and runs invocations of the tool under test
type Harness struct {
	builder   *services.CommandBuilder
	executor  *services.Executor
	toolchain *services.ToolchainSelector
}

// New wires a harness from settings
func New(settings *config.Settings) *Harness {
	var installer ports.ToolchainInstaller
	if settings.Toolchain != nil {
		installer = rustup.NewInstaller(filepath.Join(settings.TempRoot, "hackcheck"))
	}
	return newHarness(settings, installer)
}

func newHarness(settings *config.Settings, installer ports.ToolchainInstaller) *Harness {
	toolchain := services.NewToolchainSelector(settings.Toolchain, installer)
	return &Harness{
		builder: services.NewCommandBuilder(settings.Binary, toolchain),
		executor: services.NewExecutor(
			fixture.NewMaterializer(settings.FixturesRoot, settings.TempRoot),
			// A hung tool hangs its test; go test -timeout bounds the run
			process.NewExecRunner(0),
			toolchain,
		),
		toolchain: toolchain,
	}
}

// hostTriple resolves the running platform; overridden in tests
var hostTriple = platform.HostTriple

var loadDefault = sync.OnceValues(loadHarness)

func loadHarness() (*Harness, error) {
	if _, err := hostTriple(); err != nil {
		return nil, fmt.Errorf("cannot run cargo-hack tests here: %w", err)
	}
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load harness settings: %w", err)
	}
	return New(settings), nil
}

// Default returns the process-wide harness configured from the environment.
// It fails on platforms TargetTriple does not support.
func Default() (*Harness, error) {
	return loadDefault()
}

// CargoHack prepares `cargo-hack hack args...` on the default harness. A
// broken environment fails tb immediately.
func CargoHack(tb TB, args ...string) *Command {
	tb.Helper()
	h, err := Default()
	if err != nil {
		fatal(tb, err.Error())
		return &Command{tb: tb, aborted: true}
	}
	return h.CargoHack(tb, args...)
}

// CargoHack prepares `cargo-hack hack args...`
func (h *Harness) CargoHack(tb TB, args ...string) *Command {
	return &Command{
		harness:    h,
		invocation: h.builder.Build(args...),
		tb:         tb,
	}
}

// Toolchain returns the pinned toolchain minor version, installing it on
// first use.
func (h *Harness) Toolchain() (uint32, bool) {
	v, ok := h.toolchain.Resolve()
	return uint32(v), ok
}
