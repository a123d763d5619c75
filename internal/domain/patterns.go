package domain

import "strings"

const (
	// InvocationMarker is how expected output refers to a cargo invocation.
	InvocationMarker = "`cargo"
	// explicitSelectorMarker means the pattern already names a toolchain.
	explicitSelectorMarker = InvocationMarker + " +"
)

// PatternList is an ordered list of substring patterns, one per non-blank line.
type PatternList []string

// ParsePatterns splits text into trimmed, non-empty lines and rewrites each
// line with RewritePattern.
func ParsePatterns(text, suffix string) PatternList {
	var patterns PatternList
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		patterns = append(patterns, RewritePattern(line, suffix))
	}
	return patterns
}

// RewritePattern splices suffix after every invocation marker in line, unless
// the line already selects a toolchain explicitly.
func RewritePattern(line, suffix string) string {
	if suffix == "" || strings.Contains(line, explicitSelectorMarker) {
		return line
	}
	return strings.ReplaceAll(line, InvocationMarker, InvocationMarker+suffix)
}
