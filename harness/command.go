package harness

import (
	"context"
	"strings"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/hackcheck/internal/domain"
)

// Command is a prepared invocation bound to a test
type Command struct {
	aborted    bool
	harness    *Harness
	invocation domain.Invocation
	tb         TB
}

// Args returns the full argument list, starting with the hack subcommand
func (c *Command) Args() []string {
	return append([]string(nil), c.invocation.Args...)
}

// String renders the command line
func (c *Command) String() string {
	return c.invocation.String()
}

// AssertOutput runs the command in a copy of model and returns its output
// without checking the exit status.
func (c *Command) AssertOutput(model string) *Output {
	c.tb.Helper()
	return c.AssertOutputRequire(model, 0)
}

// AssertOutputRequire is AssertOutput for commands needing toolchain 1.<required>
// or newer. Older pinned toolchains skip the run.
func (c *Command) AssertOutputRequire(model string, required uint32) *Output {
	c.tb.Helper()
	out, _ := c.run(model, required)
	return out
}

// AssertSuccess runs the command in a copy of model and fails the test
// unless it exits with status 0.
func (c *Command) AssertSuccess(model string) *Output {
	c.tb.Helper()
	return c.AssertSuccessRequire(model, 0)
}

// AssertSuccessRequire is AssertSuccess gated on toolchain 1.<required>
func (c *Command) AssertSuccessRequire(model string, required uint32) *Output {
	c.tb.Helper()
	return c.assertStatus(model, required, true)
}

// AssertFailure runs the command in a copy of model and fails the test
// unless it exits with a non-zero status.
func (c *Command) AssertFailure(model string) *Output {
	c.tb.Helper()
	return c.AssertFailureRequire(model, 0)
}

// AssertFailureRequire is AssertFailure gated on toolchain 1.<required>
func (c *Command) AssertFailureRequire(model string, required uint32) *Output {
	c.tb.Helper()
	return c.assertStatus(model, required, false)
}

func (c *Command) assertStatus(model string, required uint32, wantSuccess bool) *Output {
	c.tb.Helper()
	out, ok := c.run(model, required)
	if !ok {
		return out
	}
	if err := out.output.CheckStatus(wantSuccess); err != nil {
		fatal(c.tb, err.Error())
		return out.abort()
	}
	return out
}

// run reports false when there is no captured output to check
func (c *Command) run(model string, required uint32) (*Output, bool) {
	c.tb.Helper()
	out := &Output{tb: c.tb}
	if c.aborted {
		return out.abort(), false
	}

	outcome, err := c.harness.executor.Execute(context.Background(), c.invocation, model, required)
	if err != nil {
		fatal(c.tb, err.Error())
		return out.abort(), false
	}

	if outcome.IsSkipped() {
		c.tb.Logf("skipping %s: %s", c, outcome.SkipReason())
		out.skipReason = outcome.SkipReason()
		return out, false
	}

	out.output, _ = outcome.Output()
	out.suffix = c.harness.toolchain.Suffix()
	return out, true
}

// fatal fails tb with a message that may span several lines
func fatal(tb TB, msg string) {
	tb.Helper()
	require.FailNow(tb, strings.TrimRight(msg, "\n"))
}
