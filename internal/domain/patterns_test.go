package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePatterns_TrimsAndSkipsBlankLines(t *testing.T) {
	text := `
		Compiling foo

		   Finished dev
	`
	assert.Equal(t, PatternList{"Compiling foo", "Finished dev"}, ParsePatterns(text, ""))
	assert.Empty(t, ParsePatterns("\n  \n\t\n", ""))
}

func TestRewritePattern(t *testing.T) {
	suffix := " " + ToolchainVersion(38).Selector()

	tests := []struct {
		name   string
		line   string
		suffix string
		want   string
	}{
		{"no toolchain", "running `cargo check`", "", "running `cargo check`"},
		{"marker", "running `cargo check`", suffix, "running `cargo +1.38 check`"},
		{"two markers", "`cargo check` then `cargo build`", suffix, "`cargo +1.38 check` then `cargo +1.38 build`"},
		{"explicit selector", "running `cargo +1.40 check`", suffix, "running `cargo +1.40 check`"},
		{"no marker", "Compiling foo", suffix, "Compiling foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewritePattern(tt.line, tt.suffix))
		})
	}
}

func TestParsePatterns_RewritesPerLine(t *testing.T) {
	text := "running `cargo check`\nrunning `cargo +1.40 check`"
	got := ParsePatterns(text, " +1.38")
	assert.Equal(t, PatternList{"running `cargo +1.38 check`", "running `cargo +1.40 check`"}, got)
}
