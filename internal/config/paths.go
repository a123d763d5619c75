package config

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrModuleRootNotFound is returned when no go.mod exists above the working directory
var ErrModuleRootNotFound = errors.New("go.mod not found in any parent directory")

// FindModuleRoot walks up from the working directory to the nearest go.mod.
// go test runs each package from its own directory, so fixtures are resolved
// relative to the module rather than the package.
func FindModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findModuleRootFrom(dir)
}

func findModuleRootFrom(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrModuleRootNotFound
		}
		dir = parent
	}
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
