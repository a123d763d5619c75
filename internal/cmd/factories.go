package cmd

import (
	"path/filepath"

	"github.com/renato0307/hackcheck/internal/adapters/editor"
	"github.com/renato0307/hackcheck/internal/adapters/fixture"
	"github.com/renato0307/hackcheck/internal/adapters/process"
	"github.com/renato0307/hackcheck/internal/adapters/rustup"
	"github.com/renato0307/hackcheck/internal/config"
	"github.com/renato0307/hackcheck/internal/ports"
	"github.com/renato0307/hackcheck/internal/scenario"
	"github.com/renato0307/hackcheck/internal/services"
)

// Adapter constructors replaced in tests
var (
	newEditor = func() ports.EditorOpener {
		return editor.NewOpener()
	}
	newInstaller = func(lockDir string) ports.ToolchainInstaller {
		return rustup.NewInstaller(lockDir)
	}
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Editor   ports.EditorOpener
	Fixtures *fixture.Materializer

	// Services
	CommandBuilder    *services.CommandBuilder
	Executor          *services.Executor
	ScenarioRunner    *scenario.Runner
	ToolchainSelector *services.ToolchainSelector

	Settings *config.Settings
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) *Container {
	// Create adapters
	var installer ports.ToolchainInstaller
	if settings.Toolchain != nil {
		installer = newInstaller(filepath.Join(settings.TempRoot, "hackcheck"))
	}
	materializer := fixture.NewMaterializer(settings.FixturesRoot, settings.TempRoot)
	runner := process.NewExecRunner(settings.Timeout)

	// Create services
	toolchain := services.NewToolchainSelector(settings.Toolchain, installer)
	builder := services.NewCommandBuilder(settings.Binary, toolchain)
	executor := services.NewExecutor(materializer, runner, toolchain)

	return &Container{
		CommandBuilder:    builder,
		Editor:            newEditor(),
		Executor:          executor,
		Fixtures:          materializer,
		ScenarioRunner:    scenario.NewRunner(builder, executor, toolchain, settings.Jobs),
		Settings:          settings,
		ToolchainSelector: toolchain,
	}
}
