package cmd

import (
	"strings"

	"github.com/alecthomas/kong"
)

// passthroughArgs returns the arguments that follow the selected command and
// its first `positionals` positional arguments, byte-for-byte as typed.
// kong splits "--flag=value" tokens while collecting passthrough arguments,
// so they are recovered from the raw command line instead. One leading "--"
// is dropped.
func passthroughArgs(kctx *kong.Context, positionals int) []string {
	flags := flagsByName(kctx.Selected())

	var commands []string
	for _, path := range kctx.Path {
		if path.Command != nil {
			commands = append(commands, path.Command.Name)
		}
	}

	args := kctx.Args
	i := 0
	skipFlag := func() bool {
		tok := args[i]
		if !strings.HasPrefix(tok, "-") || tok == "-" || tok == "--" {
			return false
		}
		flag, known := flags[flagName(tok)]
		if !known {
			return false
		}
		i++
		if takesValue(tok, flag) && i < len(args) {
			i++
		}
		return true
	}

	for len(commands) > 0 && i < len(args) {
		if skipFlag() {
			continue
		}
		if args[i] == commands[0] {
			commands = commands[1:]
		}
		i++
	}

	for positionals > 0 && i < len(args) {
		if skipFlag() {
			continue
		}
		if args[i] == "--" {
			break
		}
		positionals--
		i++
	}

	// Known flags between the positionals and the first passthrough token
	// are parsed by kong, not forwarded
	for i < len(args) && skipFlag() {
	}

	tail := args[i:]
	if len(tail) > 0 && tail[0] == "--" {
		tail = tail[1:]
	}
	return append([]string(nil), tail...)
}

func flagsByName(node *kong.Node) map[string]*kong.Flag {
	flags := map[string]*kong.Flag{}
	if node == nil {
		return flags
	}
	for _, group := range node.AllFlags(false) {
		for _, flag := range group {
			flags["--"+flag.Name] = flag
			if flag.Short != 0 {
				flags["-"+string(flag.Short)] = flag
			}
		}
	}
	return flags
}

// flagName strips an attached value: "--bin=x" is "--bin", "-j4" is "-j"
func flagName(tok string) string {
	if strings.HasPrefix(tok, "--") {
		name, _, _ := strings.Cut(tok, "=")
		return name
	}
	if len(tok) > 2 {
		return tok[:2]
	}
	return tok
}

func takesValue(tok string, flag *kong.Flag) bool {
	if flag.IsBool() || flag.IsCounter() {
		return false
	}
	if strings.HasPrefix(tok, "--") {
		return !strings.Contains(tok, "=")
	}
	return len(tok) == 2
}
