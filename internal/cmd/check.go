package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/renato0307/hackcheck/internal/scenario"
	"github.com/renato0307/hackcheck/internal/theme"
)

// CheckCmd runs scenario files and reports every case
type CheckCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Scenario YAML files"`
}

// Run executes the check command. Any failing case makes it exit 1.
func (c *CheckCmd) Run(cli *CLI) error {
	scenarios := make([]*scenario.Scenario, 0, len(c.Files))
	for _, path := range c.Files {
		s, err := scenario.Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		scenarios = append(scenarios, s)
	}

	failed := false
	for _, s := range scenarios {
		report, err := cli.Container.ScenarioRunner.Run(context.Background(), s)
		if err != nil {
			return err
		}
		printReport(cli.Stdout(), report)
		failed = failed || report.Failed()
	}

	if failed {
		return &ExitError{Code: 1}
	}
	return nil
}

func printReport(w io.Writer, r *scenario.Report) {
	fmt.Fprintf(w, "%s %s\n", theme.TitleStyle.Render(r.Scenario), theme.RunIDStyle.Render(r.RunID))

	for _, res := range r.Results {
		status := string(res.Status)
		line := fmt.Sprintf("  %s %s %s",
			theme.StatusStyle(status).Render(status),
			res.Name,
			theme.DurationStyle.Render(res.Duration.Round(time.Millisecond).String()))
		if res.Status == scenario.StatusSkip {
			line += " " + theme.LabelStyle.Render(res.Reason)
		}
		fmt.Fprintln(w, line)

		if res.Err == nil {
			continue
		}
		msg := strings.TrimRight(res.Err.Error(), "\n")
		if scenario.IsMismatch(res.Err) {
			fmt.Fprintln(w, theme.DetailStyle.Render(msg))
		} else {
			fmt.Fprintln(w, theme.DetailStyle.Render(theme.ErrorStyle.Render("error: ")+msg))
		}
	}

	fmt.Fprintln(w, theme.SummaryStyle.Render(r.Summary()))
}
