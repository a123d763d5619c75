package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.yaml")
	content := `
name: features
cases:
  - name: each-feature
    fixture: real
    args: [check, --each-feature]
    require: 41
    stderr_contains: |
      running ` + "`cargo check`" + ` on real
  - name: virtual-member
    fixture: virtual/member1
    args: [check]
    expect: failure
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "features", s.Name)
	require.Len(t, s.Cases, 2)
	assert.Equal(t, []string{"check", "--each-feature"}, s.Cases[0].Args)
	assert.Equal(t, uint32(41), s.Cases[0].Require)
	assert.Equal(t, ExpectSuccess, s.Cases[0].Expect)
	assert.Equal(t, "running `cargo check` on real\n", s.Cases[0].StderrContains)
	assert.Equal(t, "virtual/member1", s.Cases[1].Fixture)
	assert.Equal(t, ExpectFailure, s.Cases[1].Expect)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown field",
			content: "name: x\ncases:\n  - name: a\n    fixture: real\n    stdout_contain: oops\n",
			wantErr: "field stdout_contain not found",
		},
		{
			name:    "missing name",
			content: "cases:\n  - name: a\n    fixture: real\n",
			wantErr: "name is required",
		},
		{
			name:    "no cases",
			content: "name: x\n",
			wantErr: "cases list is required",
		},
		{
			name:    "unnamed case",
			content: "name: x\ncases:\n  - fixture: real\n",
			wantErr: "cases[0]: name is required",
		},
		{
			name:    "duplicate case",
			content: "name: x\ncases:\n  - name: a\n    fixture: real\n  - name: a\n    fixture: real\n",
			wantErr: `duplicate name "a"`,
		},
		{
			name:    "malformed fixture",
			content: "name: x\ncases:\n  - name: a\n    fixture: a/b/c\n",
			wantErr: "malformed fixture identifier",
		},
		{
			name:    "bad expect",
			content: "name: x\ncases:\n  - name: a\n    fixture: real\n    expect: maybe\n",
			wantErr: "expect must be success, failure or any",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
