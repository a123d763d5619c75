package domain

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestCapturedOutput_Check(t *testing.T) {
	out := CapturedOutput{
		Stdout: "   Compiling foo v0.1.0\n    Finished dev",
		Stderr: "warning: unused manifest key",
	}

	tests := []struct {
		name     string
		stream   Stream
		negate   bool
		patterns PatternList
		wantErr  bool
	}{
		{"stdout contains", StreamStdout, false, PatternList{"Compiling foo", "Finished"}, false},
		{"stdout contains, any order", StreamStdout, false, PatternList{"Finished", "Compiling foo"}, false},
		{"stdout missing", StreamStdout, false, PatternList{"Compiling foo", "Compiling bar"}, true},
		{"stdout not contains", StreamStdout, true, PatternList{"error", "warning"}, false},
		{"stdout unexpected", StreamStdout, true, PatternList{"error", "Finished"}, true},
		{"stderr contains", StreamStderr, false, PatternList{"unused manifest key"}, false},
		{"stderr unexpected", StreamStderr, true, PatternList{"warning"}, true},
		{"empty list", StreamStderr, false, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := out.Check(tt.stream, tt.negate, tt.patterns)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var mismatch *MismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.stream, mismatch.Stream)
			assert.Equal(t, tt.negate, mismatch.Negate)
			assert.Equal(t, out.Text(tt.stream), mismatch.Actual)
		})
	}
}

func TestCapturedOutput_Check_ReportsFirstFailure(t *testing.T) {
	out := CapturedOutput{Stdout: "a b"}

	err := out.Check(StreamStdout, false, PatternList{"a", "x", "y"})

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "x", mismatch.Pattern)
}

func TestCapturedOutput_CheckStatus(t *testing.T) {
	ok := CapturedOutput{ExitCode: 0}
	failed := CapturedOutput{ExitCode: 101}

	assert.NoError(t, ok.CheckStatus(true))
	assert.NoError(t, failed.CheckStatus(false))

	var statusErr *StatusError
	require.ErrorAs(t, ok.CheckStatus(false), &statusErr)
	assert.False(t, statusErr.WantSuccess)
	require.ErrorAs(t, failed.CheckStatus(true), &statusErr)
	assert.True(t, statusErr.WantSuccess)
}

func TestMismatchError_Golden(t *testing.T) {
	g := newGoldie(t)

	missing := &MismatchError{
		Actual:  "    Finished dev",
		Pattern: "Compiling foo",
		Stream:  StreamStdout,
	}
	g.Assert(t, "mismatch_missing", []byte(missing.Error()))

	unexpected := &MismatchError{
		Actual:  "error: no such subcommand",
		Negate:  true,
		Pattern: "error",
		Stream:  StreamStderr,
	}
	g.Assert(t, "mismatch_unexpected", []byte(unexpected.Error()))
}

func TestStatusError_Golden(t *testing.T) {
	g := newGoldie(t)

	err := &StatusError{
		Output: CapturedOutput{
			ExitCode: 101,
			Stdout:   "",
			Stderr:   "error: could not find `Cargo.toml`",
		},
		WantSuccess: true,
	}
	g.Assert(t, "status_expected_success", []byte(err.Error()))
}

func TestOutcome(t *testing.T) {
	skipped := Skipped("requires 1.41")
	assert.True(t, skipped.IsSkipped())
	assert.Equal(t, "requires 1.41", skipped.SkipReason())
	_, ok := skipped.Output()
	assert.False(t, ok)

	captured := Captured(CapturedOutput{Stdout: "x"})
	assert.False(t, captured.IsSkipped())
	out, ok := captured.Output()
	require.True(t, ok)
	assert.Equal(t, "x", out.Stdout)

	var zero Outcome
	assert.False(t, zero.IsSkipped())
	_, ok = zero.Output()
	assert.False(t, ok)
}
