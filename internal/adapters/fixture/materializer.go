package fixture

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/renato0307/hackcheck/internal/domain"
	"github.com/renato0307/hackcheck/internal/logging"
	"github.com/renato0307/hackcheck/internal/ports"
)

// projectCounter makes temp directory names unique within the process
var projectCounter atomic.Uint64

// Materializer copies fixture templates from root into temporary directories
type Materializer struct {
	root    string
	tempDir string
}

// Compile-time interface verification
var _ ports.FixtureMaterializer = (*Materializer)(nil)

// NewMaterializer creates a materializer reading templates from root and
// creating projects under tempDir ("" means os.TempDir()).
func NewMaterializer(root, tempDir string) *Materializer {
	return &Materializer{root: root, tempDir: tempDir}
}

// Materialize copies the fixture named by modelID into a new temporary
// directory. The caller owns the returned project and must Remove it.
func (m *Materializer) Materialize(modelID string) (*domain.MaterializedProject, error) {
	model, err := domain.ParseFixtureModel(modelID)
	if err != nil {
		return nil, err
	}

	n := projectCounter.Add(1) - 1
	root, err := os.MkdirTemp(m.tempDir, fmt.Sprintf("test_project%d-", n))
	if err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}

	if err := m.Populate(root, model); err != nil {
		_ = os.RemoveAll(root)
		return nil, err
	}

	project := domain.NewMaterializedProject(root, model)
	logging.Logger.Debug("Fixture materialized",
		"fixture", modelID,
		"root", project.Root,
		"work_dir", project.WorkDir)
	return project, nil
}

// Populate copies the template of model into dst. Entries that already exist
// in dst are left untouched, so dst may be pre-seeded.
func (m *Materializer) Populate(dst string, model domain.FixtureModel) error {
	src := filepath.Join(m.root, model.Template)
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("fixture %q: %w", model.Template, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("fixture %q: %s is not a directory", model.Template, src)
	}

	entries, err := collectEntries(src)
	if err != nil {
		return fmt.Errorf("fixture %q: %w", model.Template, err)
	}

	for _, rel := range entries {
		if err := copyEntry(filepath.Join(src, rel), filepath.Join(dst, rel)); err != nil {
			return fmt.Errorf("fixture %q: %w", model.Template, err)
		}
	}
	return nil
}

// collectEntries lists every path below src relative to it, ordered so that
// each directory comes before anything inside it.
func collectEntries(src string) ([]string, error) {
	var entries []string
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == src {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		entries = append(entries, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		di := strings.Count(entries[i], string(filepath.Separator))
		dj := strings.Count(entries[j], string(filepath.Separator))
		if di != dj {
			return di < dj
		}
		return entries[i] < entries[j]
	})
	return entries, nil
}

func copyEntry(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.Mkdir(dst, info.Mode().Perm())
	}
	return copyFile(src, dst, info.Mode().Perm())
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
