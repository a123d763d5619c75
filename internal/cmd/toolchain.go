package cmd

import (
	"fmt"
)

// ToolchainCmd installs the pinned toolchain and prints it
type ToolchainCmd struct{}

// Run executes the toolchain command
func (t *ToolchainCmd) Run(cli *CLI) error {
	v, ok := cli.Container.ToolchainSelector.Resolve()
	if !ok {
		fmt.Fprintln(cli.Stdout(), "none")
		return nil
	}
	fmt.Fprintln(cli.Stdout(), v.String())
	return nil
}
