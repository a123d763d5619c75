package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/renato0307/hackcheck/internal/domain"
)

// Environment variables read by Load
const (
	EnvBinary       = "CARGO_HACK_BIN"
	EnvFixtures     = "HACKCHECK_FIXTURES"
	EnvJobs         = "HACKCHECK_JOBS"
	EnvTempRoot     = "HACKCHECK_TMPDIR"
	EnvTimeout      = "HACKCHECK_TIMEOUT"
	EnvToolchain    = "CARGO_HACK_TEST_TOOLCHAIN"
	EnvToolchainAlt = "HACKCHECK_TOOLCHAIN"
)

// Defaults used when neither a flag nor the environment provides a value
const (
	DefaultBinary      = "cargo-hack"
	DefaultFixturesDir = "test/fixtures"
)

// Settings is the harness configuration
type Settings struct {
	Binary       string
	FixturesRoot string
	Jobs         int
	TempRoot     string
	Timeout      time.Duration            // 0 waits forever
	Toolchain    *domain.ToolchainVersion // nil means no pinning
}

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Load reads settings from the process environment.
func Load() (*Settings, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads settings using lookup. A malformed toolchain, timeout or
// job count is an error; missing values fall back to defaults. Outside a Go
// module the fixtures root is test/fixtures under the working directory.
func LoadFrom(lookup LookupFunc) (*Settings, error) {
	s := &Settings{
		Binary:   DefaultBinary,
		Jobs:     runtime.NumCPU(),
		TempRoot: os.TempDir(),
	}

	if v, ok := lookup(EnvBinary); ok && v != "" {
		s.Binary = ExpandPath(v)
	}

	if v, ok := lookup(EnvFixtures); ok && v != "" {
		s.FixturesRoot = ExpandPath(v)
	} else {
		root, err := FindModuleRoot()
		switch {
		case errors.Is(err, ErrModuleRootNotFound):
			s.FixturesRoot = filepath.FromSlash(DefaultFixturesDir)
		case err != nil:
			return nil, fmt.Errorf("failed to locate fixtures: %w", err)
		default:
			s.FixturesRoot = filepath.Join(root, filepath.FromSlash(DefaultFixturesDir))
		}
	}

	if v, ok := lookup(EnvTempRoot); ok && v != "" {
		s.TempRoot = ExpandPath(v)
	}

	toolchain, ok := lookup(EnvToolchain)
	if !ok || toolchain == "" {
		toolchain, ok = lookup(EnvToolchainAlt)
	}
	if ok && toolchain != "" {
		v, err := domain.ParseToolchainVersion(toolchain)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvToolchain, err)
		}
		s.Toolchain = &v
	}

	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid duration %q: %w", EnvTimeout, v, err)
		}
		s.Timeout = d
	}

	if v, ok := lookup(EnvJobs); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%s: expected a positive integer, got %q", EnvJobs, v)
		}
		s.Jobs = n
	}

	return s, nil
}
