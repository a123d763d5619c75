package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/hackcheck/internal/cmd"
	"github.com/renato0307/hackcheck/version"
)

func main() {
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("hackcheck"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	if err := ctx.Run(); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitStatus(exitErr.Code))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// exitStatus maps a killed child (-1) to a plain failure
func exitStatus(code int) int {
	if code < 0 || code > 255 {
		return 1
	}
	return code
}
