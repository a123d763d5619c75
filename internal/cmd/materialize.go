package cmd

import (
	"fmt"

	"github.com/renato0307/hackcheck/internal/logging"
)

// MaterializeCmd copies a fixture into a temporary project that is kept
type MaterializeCmd struct {
	Editor  string `help:"Editor to open the project in (overrides $HACKCHECK_EDITOR, $VISUAL, $EDITOR)"`
	Open    bool   `help:"Open the project in an editor" short:"o"`
	Fixture string `arg:"" help:"Fixture as <fixture> or <fixture>/<subdir>"`
}

// Run executes the materialize command
func (m *MaterializeCmd) Run(cli *CLI) error {
	project, err := cli.Container.Fixtures.Materialize(m.Fixture)
	if err != nil {
		return err
	}
	logging.Logger.Info("Project kept", "root", project.Root)
	fmt.Fprintln(cli.Stdout(), project.WorkDir)

	if m.Open || m.Editor != "" {
		return cli.Container.Editor.Open(project.WorkDir, m.Editor)
	}
	return nil
}
