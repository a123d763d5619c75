package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FixtureSeparator splits a fixture identifier into template and working subdirectory.
const FixtureSeparator = "/"

// FixtureModel identifies a template tree under the fixtures root and,
// optionally, a subdirectory of it to run from.
type FixtureModel struct {
	Template string
	Subdir   string
}

// ParseFixtureModel parses "<fixture>" or "<fixture>/<subdir>".
// More than one separator or an empty segment is rejected.
func ParseFixtureModel(id string) (FixtureModel, error) {
	template, subdir, found := strings.Cut(id, FixtureSeparator)
	if template == "" {
		return FixtureModel{}, fmt.Errorf("%w: %q: empty fixture name", ErrMalformedFixture, id)
	}
	if !found {
		return FixtureModel{Template: template}, nil
	}
	if subdir == "" {
		return FixtureModel{}, fmt.Errorf("%w: %q: empty subdirectory", ErrMalformedFixture, id)
	}
	if strings.Contains(subdir, FixtureSeparator) {
		return FixtureModel{}, fmt.Errorf("%w: %q: at most one %q is allowed", ErrMalformedFixture, id, FixtureSeparator)
	}
	return FixtureModel{Template: template, Subdir: subdir}, nil
}

// String returns the identifier form of the model.
func (m FixtureModel) String() string {
	if m.Subdir == "" {
		return m.Template
	}
	return m.Template + FixtureSeparator + m.Subdir
}

// MaterializedProject is a temporary copy of a fixture owned by one test.
type MaterializedProject struct {
	Root    string // temporary directory, removed by Remove
	WorkDir string // Root, or Root joined with the fixture subdirectory
}

// NewMaterializedProject resolves the working directory of model inside root.
func NewMaterializedProject(root string, model FixtureModel) *MaterializedProject {
	workDir := root
	if model.Subdir != "" {
		workDir = filepath.Join(root, model.Subdir)
	}
	return &MaterializedProject{Root: root, WorkDir: workDir}
}

// Remove deletes the temporary directory and everything in it.
func (p *MaterializedProject) Remove() error {
	return os.RemoveAll(p.Root)
}
