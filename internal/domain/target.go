package domain

import "fmt"

// Target environments that can be passed to TargetTriple.
const (
	TargetEnvGNU  = "gnu"
	TargetEnvMSVC = "msvc"
	TargetEnvMusl = "musl"
)

// TargetTriple returns the Rust target triple for an x86_64 host.
// goos and goarch use runtime.GOOS/GOARCH naming; env is the libc or ABI.
func TargetTriple(goos, goarch, env string) (string, error) {
	if goarch != "amd64" {
		return "", fmt.Errorf("%w: non x86_64 arch %q", ErrUnsupportedPlatform, goarch)
	}
	switch goos {
	case "linux":
		switch env {
		case TargetEnvGNU:
			return "x86_64-unknown-linux-gnu", nil
		case TargetEnvMusl:
			return "x86_64-unknown-linux-musl", nil
		}
		return "", fmt.Errorf("%w: non gnu/musl linux %q", ErrUnsupportedPlatform, env)
	case "darwin":
		return "x86_64-apple-darwin", nil
	case "windows":
		switch env {
		case TargetEnvGNU:
			return "x86_64-pc-windows-gnu", nil
		case TargetEnvMSVC:
			return "x86_64-pc-windows-msvc", nil
		}
		return "", fmt.Errorf("%w: non gnu/msvc windows %q", ErrUnsupportedPlatform, env)
	}
	return "", fmt.Errorf("%w: non linux/macos/windows os %q", ErrUnsupportedPlatform, goos)
}
