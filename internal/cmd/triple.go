package cmd

import (
	"fmt"

	"github.com/renato0307/hackcheck/internal/platform"
)

// TripleCmd prints the target triple fixtures expect on this platform
type TripleCmd struct{}

// Run executes the triple command
func (t *TripleCmd) Run(cli *CLI) error {
	triple, err := platform.HostTriple()
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.Stdout(), triple)
	return nil
}
