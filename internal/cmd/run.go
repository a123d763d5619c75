package cmd

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/renato0307/hackcheck/internal/logging"
)

// RunCmd runs the tool under test in a fresh copy of a fixture
type RunCmd struct {
	Require uint32   `help:"Skip unless the pinned toolchain is 1.<require> or newer"`
	Fixture string   `arg:"" help:"Fixture as <fixture> or <fixture>/<subdir>"`
	Args    []string `arg:"" optional:"" passthrough:"" help:"Arguments to pass after 'cargo-hack hack'"`
}

// Run passes the tool's output through and exits with its status
func (r *RunCmd) Run(cli *CLI, kctx *kong.Context) error {
	inv := cli.Container.CommandBuilder.Build(passthroughArgs(kctx, 1)...)
	logging.Logger.Info("Running", "command", inv.String(), "fixture", r.Fixture)

	outcome, err := cli.Container.Executor.Execute(context.Background(), inv, r.Fixture, r.Require)
	if err != nil {
		return err
	}
	if outcome.IsSkipped() {
		fmt.Fprintf(cli.Stderr(), "skipped: %s\n", outcome.SkipReason())
		return nil
	}

	output, _ := outcome.Output()
	fmt.Fprint(cli.Stdout(), output.Stdout)
	fmt.Fprint(cli.Stderr(), output.Stderr)
	if !output.Success() {
		return &ExitError{Code: output.ExitCode}
	}
	return nil
}
