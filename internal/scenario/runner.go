package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/hackcheck/internal/domain"
	"github.com/renato0307/hackcheck/internal/logging"
	"github.com/renato0307/hackcheck/internal/services"
)

// Status is the verdict for one case
type Status string

const (
	StatusFail Status = "FAIL"
	StatusPass Status = "PASS"
	StatusSkip Status = "SKIP"
)

// Result is the outcome of running one case
type Result struct {
	Duration time.Duration
	Err      error
	Name     string
	Reason   string // skip reason
	Status   Status
}

// Report is the outcome of running one scenario
type Report struct {
	Results  []Result
	RunID    string
	Scenario string
}

// Failed reports whether any case failed
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if res.Status == StatusFail {
			return true
		}
	}
	return false
}

// Runner executes scenario cases with bounded parallelism
type Runner struct {
	builder   *services.CommandBuilder
	executor  *services.Executor
	jobs      int
	toolchain *services.ToolchainSelector
}

// NewRunner creates a runner executing at most jobs cases at a time
func NewRunner(
	builder *services.CommandBuilder,
	executor *services.Executor,
	toolchain *services.ToolchainSelector,
	jobs int,
) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{
		builder:   builder,
		executor:  executor,
		jobs:      jobs,
		toolchain: toolchain,
	}
}

// Run executes every case of s. Results keep the order of s.Cases; a failing
// case never stops the others. The error is only set when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Report, error) {
	report := &Report{
		Results:  make([]Result, len(s.Cases)),
		RunID:    uuid.New().String(),
		Scenario: s.Name,
	}
	logging.Logger.Info("Running scenario",
		"scenario", s.Name,
		"run_id", report.RunID,
		"cases", len(s.Cases),
		"jobs", r.jobs)

	// Installs the pinned toolchain before the first case starts
	suffix := r.toolchain.Suffix()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for i, c := range s.Cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Results[i] = r.runCase(ctx, c, suffix)
			logging.Logger.Debug("Case finished",
				"run_id", report.RunID,
				"case", c.Name,
				"status", report.Results[i].Status,
				"duration", report.Results[i].Duration)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	return report, nil
}

func (r *Runner) runCase(ctx context.Context, c Case, suffix string) Result {
	start := time.Now()
	res := Result{Name: c.Name}

	inv := r.builder.Build(c.Args...)
	outcome, err := r.executor.Execute(ctx, inv, c.Fixture, c.Require)
	res.Duration = time.Since(start)

	switch {
	case err != nil:
		res.Status = StatusFail
		res.Err = err
	case outcome.IsSkipped():
		res.Status = StatusSkip
		res.Reason = outcome.SkipReason()
	default:
		output, _ := outcome.Output()
		res.Err = check(c, output, suffix)
		res.Status = StatusPass
		if res.Err != nil {
			res.Status = StatusFail
		}
	}
	return res
}

// check applies the status expectation, then every pattern block in order
func check(c Case, output domain.CapturedOutput, suffix string) error {
	if c.Expect != ExpectAny {
		if err := output.CheckStatus(c.Expect == ExpectSuccess); err != nil {
			return err
		}
	}

	checks := []struct {
		negate   bool
		patterns string
		stream   domain.Stream
	}{
		{false, c.StdoutContains, domain.StreamStdout},
		{true, c.StdoutNotContains, domain.StreamStdout},
		{false, c.StderrContains, domain.StreamStderr},
		{true, c.StderrNotContains, domain.StreamStderr},
	}
	for _, chk := range checks {
		err := output.Check(chk.stream, chk.negate, domain.ParsePatterns(chk.patterns, suffix))
		if err != nil {
			return err
		}
	}
	return nil
}

// IsMismatch reports whether err is an output or status assertion failure,
// as opposed to a harness error.
func IsMismatch(err error) bool {
	var mismatch *domain.MismatchError
	var status *domain.StatusError
	return errors.As(err, &mismatch) || errors.As(err, &status)
}

// Summary returns "N passed, N failed, N skipped"
func (r *Report) Summary() string {
	var pass, fail, skip int
	for _, res := range r.Results {
		switch res.Status {
		case StatusPass:
			pass++
		case StatusFail:
			fail++
		case StatusSkip:
			skip++
		}
	}
	return fmt.Sprintf("%d passed, %d failed, %d skipped", pass, fail, skip)
}
