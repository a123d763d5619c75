package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// CommandCmd prints the invocation the harness would run
type CommandCmd struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"Arguments to pass after 'cargo-hack hack'"`
}

// Run executes the command command
func (c *CommandCmd) Run(cli *CLI, kctx *kong.Context) error {
	fmt.Fprintln(cli.Stdout(), cli.Container.CommandBuilder.Build(passthroughArgs(kctx, 0)...).String())
	return nil
}
