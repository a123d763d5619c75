package version

import "fmt"

// Tagline is the application's tagline used in help text
const Tagline = "Black-box test harness for cargo-hack"

// Build information injected at build time via ldflags
// Example: -ldflags="-X github.com/renato0307/hackcheck/version.Version=v1.0.0"
var (
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
	Version   = "dev"     // Semantic version or "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("hackcheck %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
