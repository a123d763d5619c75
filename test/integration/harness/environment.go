package harness

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated environment for one hackcheck run.
type TestEnvironment struct {
	BinDir       string
	FixturesRoot string
	TempRoot     string
	extraEnv     map[string]string
	tb           testing.TB
}

// NewTestEnvironment creates an isolated test environment. Projects are
// materialized under a temp directory that is removed when the test ends.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root, err := ProjectRoot()
	if err != nil {
		tb.Fatalf("Failed to locate module root: %v", err)
	}

	binDir := filepath.Join(tb.TempDir(), "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		tb.Fatalf("Failed to create bin directory: %v", err)
	}

	return &TestEnvironment{
		BinDir:       binDir,
		FixturesRoot: filepath.Join(root, "test", "fixtures"),
		TempRoot:     tb.TempDir(),
		extraEnv:     make(map[string]string),
		tb:           tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out HACKCHECK_* and CARGO_HACK_* variables and sets:
//   - HACKCHECK_TMPDIR to the temp directory
//   - HACKCHECK_FIXTURES to the module fixtures
//   - PATH with BinDir first
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if _, override := e.extraEnv[key]; override {
			continue
		}
		if strings.HasPrefix(key, "HACKCHECK_") || strings.HasPrefix(key, "CARGO_HACK_") ||
			strings.EqualFold(key, "PATH") {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"HACKCHECK_TMPDIR="+e.TempRoot,
		"HACKCHECK_FIXTURES="+e.FixturesRoot,
		"PATH="+e.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"),
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// FakeTool installs a shell script named name in BinDir and returns its path.
// Tests using fake tools are skipped on windows.
func (e *TestEnvironment) FakeTool(name, script string) string {
	e.tb.Helper()
	if runtime.GOOS == "windows" {
		e.tb.Skip("fake tools are shell scripts")
	}

	path := filepath.Join(e.BinDir, name)
	content := "#!/bin/sh\n" + strings.TrimLeft(script, "\n")
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		e.tb.Fatalf("Failed to write fake %s: %v", name, err)
	}
	return path
}

// FakeCargoHack installs a fake cargo-hack and points CARGO_HACK_BIN at it.
func (e *TestEnvironment) FakeCargoHack(script string) {
	e.tb.Helper()
	e.SetEnv("CARGO_HACK_BIN", e.FakeTool("cargo-hack", script))
}

// WriteFile writes content to name under a fresh temp directory and returns its path.
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.tb.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
