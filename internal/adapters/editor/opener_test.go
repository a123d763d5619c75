package editor

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEditor(t *testing.T) {
	tests := []struct {
		name string
		flag string
		env  map[string]string
		want string
	}{
		{"flag wins", "vim", map[string]string{EnvEditor: "code", "VISUAL": "emacs"}, "vim"},
		{"hackcheck env", "", map[string]string{EnvEditor: "code", "VISUAL": "emacs"}, "code"},
		{"visual", "", map[string]string{"VISUAL": "emacs", "EDITOR": "nano"}, "emacs"},
		{"editor", "", map[string]string{"EDITOR": "nano"}, "nano"},
		{"none", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvEditor, "VISUAL", "EDITOR"} {
				t.Setenv(key, tt.env[key])
			}
			assert.Equal(t, tt.want, findEditor(tt.flag))
		})
	}
}

func TestOpen(t *testing.T) {
	var gotName string
	var gotArgs []string
	orig := execCommand
	execCommand = func(name string, args ...string) *exec.Cmd {
		gotName, gotArgs = name, args
		return exec.Command("go", "version")
	}
	t.Cleanup(func() { execCommand = orig })

	dir := t.TempDir()
	require.NoError(t, NewOpener().Open(dir, "my-editor"))

	assert.Equal(t, "my-editor", gotName)
	assert.Equal(t, []string{dir}, gotArgs)
}

func TestOpen_Errors(t *testing.T) {
	for _, key := range []string{EnvEditor, "VISUAL", "EDITOR"} {
		t.Setenv(key, "")
	}

	err := NewOpener().Open(filepath.Join(t.TempDir(), "missing"), "vim")
	assert.ErrorContains(t, err, "path does not exist")

	err = NewOpener().Open(t.TempDir(), "")
	assert.ErrorIs(t, err, ErrNoEditor)
}
