package domain

import "strings"

// Invocation is a fully built command line for the tool under test.
type Invocation struct {
	Program string
	Args    []string
}

// String renders the invocation as a space separated command line.
func (i Invocation) String() string {
	return strings.Join(append([]string{i.Program}, i.Args...), " ")
}

// HasArgPrefix reports whether any argument starts with prefix.
func HasArgPrefix(args []string, prefix string) bool {
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			return true
		}
	}
	return false
}
