package harness

import (
	"github.com/renato0307/hackcheck/internal/domain"
)

// Output is the captured result of one run. Every check is a no-op when the
// run was skipped or has already failed.
type Output struct {
	aborted    bool
	output     domain.CapturedOutput
	skipReason string
	suffix     string
	tb         TB
}

func (o *Output) abort() *Output {
	o.aborted = true
	return o
}

// Skipped reports whether the run was skipped by a toolchain requirement
func (o *Output) Skipped() bool {
	return o.skipReason != ""
}

// ExitCode returns the exit status of the process
func (o *Output) ExitCode() int {
	return o.output.ExitCode
}

// Stdout returns the captured standard output
func (o *Output) Stdout() string {
	return o.output.Stdout
}

// Stderr returns the captured standard error
func (o *Output) Stderr() string {
	return o.output.Stderr
}

// StdoutContains fails the test unless stdout contains every non-blank line
// of patterns.
func (o *Output) StdoutContains(patterns string) *Output {
	o.tb.Helper()
	return o.check(domain.StreamStdout, false, patterns)
}

// StdoutNotContains fails the test if stdout contains any non-blank line of
// patterns.
func (o *Output) StdoutNotContains(patterns string) *Output {
	o.tb.Helper()
	return o.check(domain.StreamStdout, true, patterns)
}

// StderrContains fails the test unless stderr contains every non-blank line
// of patterns.
func (o *Output) StderrContains(patterns string) *Output {
	o.tb.Helper()
	return o.check(domain.StreamStderr, false, patterns)
}

// StderrNotContains fails the test if stderr contains any non-blank line of
// patterns.
func (o *Output) StderrNotContains(patterns string) *Output {
	o.tb.Helper()
	return o.check(domain.StreamStderr, true, patterns)
}

func (o *Output) check(s domain.Stream, negate bool, patterns string) *Output {
	o.tb.Helper()
	if o.aborted || o.Skipped() {
		return o
	}
	if err := o.output.Check(s, negate, domain.ParsePatterns(patterns, o.suffix)); err != nil {
		fatal(o.tb, err.Error())
		return o.abort()
	}
	return o
}
