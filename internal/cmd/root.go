package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"

	"github.com/renato0307/hackcheck/internal/config"
	"github.com/renato0307/hackcheck/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Bin       string        `help:"cargo-hack binary under test (overrides $CARGO_HACK_BIN)"`
	Fixtures  string        `help:"Fixtures root directory (overrides $HACKCHECK_FIXTURES)" type:"path"`
	Jobs      int           `help:"Scenario cases to run in parallel (overrides $HACKCHECK_JOBS)" short:"j"`
	Timeout   time.Duration `help:"Kill the tool after this long (overrides $HACKCHECK_TIMEOUT, 0 = wait forever)"`
	Toolchain string        `help:"Toolchain minor version to pin, e.g. 70 (overrides $CARGO_HACK_TEST_TOOLCHAIN)"`

	Check        CheckCmd       `cmd:"check" help:"Run YAML scenario files"`
	Command      CommandCmd     `cmd:"command" help:"Print the invocation built for the given arguments"`
	Materialize  MaterializeCmd `cmd:"materialize" help:"Copy a fixture into a new temporary project and print its working directory"`
	Run          RunCmd         `cmd:"run" help:"Run cargo-hack in a fixture and pass its output through"`
	ToolchainCmd ToolchainCmd   `cmd:"toolchain" help:"Install the pinned toolchain and print its version"`
	Triple       TripleCmd      `cmd:"triple" help:"Print the target triple of this platform"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
	stdout    io.Writer  `kong:"-"`
	stderr    io.Writer  `kong:"-"`
}

// AfterApply initializes logging after CLI parsing, then loads settings with
// precedence CLI flags > env vars > defaults.
func (c *CLI) AfterApply() error {
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Subprocesses append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("HACKCHECK_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("HACKCHECK_DEBUG_FILE", logFilePath)
		}
	}

	settings, err := config.LoadFrom(c.lookupEnv)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	logging.Logger.Debug("Settings loaded",
		"binary", settings.Binary,
		"fixtures", settings.FixturesRoot,
		"jobs", settings.Jobs,
		"timeout", settings.Timeout)

	// Create container AFTER logging is initialized
	c.Container = NewContainer(settings)
	return nil
}

// lookupEnv resolves a setting from its flag first, then the environment
func (c *CLI) lookupEnv(key string) (string, bool) {
	var flag string
	switch key {
	case config.EnvBinary:
		flag = c.Bin
	case config.EnvFixtures:
		flag = c.Fixtures
	case config.EnvToolchain:
		flag = c.Toolchain
	case config.EnvTimeout:
		if c.Timeout > 0 {
			flag = c.Timeout.String()
		}
	case config.EnvJobs:
		if c.Jobs > 0 {
			flag = strconv.Itoa(c.Jobs)
		}
	}
	if flag != "" {
		return flag, true
	}
	return os.LookupEnv(key)
}

// Stdout returns where commands print their results
func (c *CLI) Stdout() io.Writer {
	if c.stdout == nil {
		return os.Stdout
	}
	return c.stdout
}

// Stderr returns where commands print diagnostics
func (c *CLI) Stderr() io.Writer {
	if c.stderr == nil {
		return os.Stderr
	}
	return c.stderr
}

// SetOutput redirects command output
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
}

// ExitError carries the exit status a command wants the process to end with
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
