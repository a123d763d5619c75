package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/renato0307/hackcheck/internal/logging"
	"github.com/renato0307/hackcheck/internal/ports"
)

// EnvEditor names the editor used for materialized projects
const EnvEditor = "HACKCHECK_EDITOR"

// ErrNoEditor is returned when neither a flag nor the environment names an editor
var ErrNoEditor = errors.New("no editor configured: set --editor, $HACKCHECK_EDITOR, $VISUAL or $EDITOR")

// execCommand is overridden in tests
var execCommand = exec.Command

// Opener implements ports.EditorOpener
type Opener struct{}

// Compile-time interface verification
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open starts the editor on path without waiting for it to exit.
// Priority: editor → $HACKCHECK_EDITOR → $VISUAL → $EDITOR
func (o *Opener) Open(path string, editor string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor = findEditor(editor)
	if editor == "" {
		return ErrNoEditor
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	cmd := execCommand(editor, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Editor exited with error", "error", err, "editor", editor)
		}
	}()

	return nil
}

func findEditor(editor string) string {
	if editor != "" {
		return editor
	}
	for _, key := range []string{EnvEditor, "VISUAL", "EDITOR"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
