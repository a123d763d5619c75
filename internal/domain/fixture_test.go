package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFixtureModel(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    FixtureModel
		wantErr bool
	}{
		{"plain", "real", FixtureModel{Template: "real"}, false},
		{"with subdir", "virtual/member1", FixtureModel{Template: "virtual", Subdir: "member1"}, false},
		{"two separators", "virtual/member1/src", FixtureModel{}, true},
		{"empty subdir", "virtual/", FixtureModel{}, true},
		{"empty template", "/member1", FixtureModel{}, true},
		{"empty", "", FixtureModel{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFixtureModel(tt.id)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedFixture)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.id, got.String())
		})
	}
}

func TestNewMaterializedProject_WorkDir(t *testing.T) {
	root := t.TempDir()

	plain := NewMaterializedProject(root, FixtureModel{Template: "real"})
	assert.Equal(t, root, plain.WorkDir)

	nested := NewMaterializedProject(root, FixtureModel{Template: "virtual", Subdir: "member1"})
	assert.Equal(t, filepath.Join(root, "member1"), nested.WorkDir)
}

func TestMaterializedProject_Remove(t *testing.T) {
	root := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))

	p := NewMaterializedProject(root, FixtureModel{Template: "real"})
	require.NoError(t, p.Remove())

	_, err := os.Stat(root)
	assert.True(t, os.IsNotExist(err))
}
