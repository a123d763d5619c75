package domain

import (
	"fmt"
	"strings"
)

// Stream selects one of the captured output streams.
type Stream string

const (
	StreamStdout Stream = "stdout"
	StreamStderr Stream = "stderr"
)

const ruleWidth = 60

// CapturedOutput is the result of running one invocation.
type CapturedOutput struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// Success reports whether the process exited with status 0.
func (o CapturedOutput) Success() bool {
	return o.ExitCode == 0
}

// Text returns the captured text of the given stream.
func (o CapturedOutput) Text(s Stream) string {
	if s == StreamStderr {
		return o.Stderr
	}
	return o.Stdout
}

// Check verifies every pattern against the stream. With negate set, every
// pattern must be absent. The first failing pattern is reported.
func (o CapturedOutput) Check(s Stream, negate bool, patterns PatternList) error {
	actual := o.Text(s)
	for _, pattern := range patterns {
		if strings.Contains(actual, pattern) == negate {
			return &MismatchError{
				Actual:  actual,
				Negate:  negate,
				Pattern: pattern,
				Stream:  s,
			}
		}
	}
	return nil
}

// CheckStatus verifies the exit status against the expected outcome.
func (o CapturedOutput) CheckStatus(wantSuccess bool) error {
	if o.Success() == wantSuccess {
		return nil
	}
	return &StatusError{Output: o, WantSuccess: wantSuccess}
}

// MismatchError reports a pattern that was missing (or unexpectedly present).
type MismatchError struct {
	Actual  string
	Negate  bool
	Pattern string
	Stream  Stream
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	if e.Negate {
		fmt.Fprintf(&b, "assertion failed: %s contains unexpected pattern", e.Stream)
	} else {
		fmt.Fprintf(&b, "assertion failed: %s does not contain pattern", e.Stream)
	}
	b.WriteString("\n\n")
	writeBlock(&b, "EXPECTED", e.Pattern)
	b.WriteString("\n")
	writeBlock(&b, "ACTUAL", e.Actual)
	return b.String()
}

// StatusError reports an unexpected exit status.
type StatusError struct {
	Output      CapturedOutput
	WantSuccess bool
}

func (e *StatusError) Error() string {
	want := "failure"
	if e.WantSuccess {
		want = "success"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "assertion failed: expected %s, got exit status %d\n\n", want, e.Output.ExitCode)
	b.WriteString(FormatStreams(e.Output))
	return b.String()
}

// FormatStreams renders both streams of o as delimited blocks.
func FormatStreams(o CapturedOutput) string {
	var b strings.Builder
	writeBlock(&b, "STDOUT", o.Stdout)
	b.WriteString("\n")
	writeBlock(&b, "STDERR", o.Stderr)
	return b.String()
}

func writeBlock(b *strings.Builder, title, body string) {
	rule := strings.Repeat("-", ruleWidth)
	fmt.Fprintf(b, "%s:\n%s\n%s\n%s\n", title, rule, body, rule)
}

// Outcome is either a captured output or a skip. The zero Outcome is
// neither.
type Outcome struct {
	output     *CapturedOutput
	skipped    bool
	skipReason string
}

// Captured wraps output in an Outcome.
func Captured(output CapturedOutput) Outcome {
	return Outcome{output: &output}
}

// Skipped returns an Outcome for an invocation that was never run.
func Skipped(reason string) Outcome {
	return Outcome{skipped: true, skipReason: reason}
}

// IsSkipped reports whether the invocation was skipped.
func (o Outcome) IsSkipped() bool {
	return o.skipped
}

// SkipReason explains why the invocation was skipped.
func (o Outcome) SkipReason() string {
	return o.skipReason
}

// Output returns the captured output, if any.
func (o Outcome) Output() (CapturedOutput, bool) {
	if o.output == nil {
		return CapturedOutput{}, false
	}
	return *o.output, true
}
