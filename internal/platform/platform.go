package platform

import (
	"os"
	"runtime"

	"github.com/renato0307/hackcheck/internal/domain"
)

// EnvTargetEnv overrides libc/ABI detection
const EnvTargetEnv = "HACKCHECK_TARGET_ENV"

const muslLoader = "/lib/ld-musl-x86_64.so.1"

// statFunc and getenv are swapped in tests
var (
	getenv   = os.Getenv
	statFunc = os.Stat
)

// DetectEnv returns the libc or ABI flavour of goos: gnu or musl on linux,
// gnu (MSYS2/MinGW shells) or msvc on windows, "" elsewhere.
func DetectEnv(goos string) string {
	if env := getenv(EnvTargetEnv); env != "" {
		return env
	}
	switch goos {
	case "linux":
		if _, err := statFunc(muslLoader); err == nil {
			return domain.TargetEnvMusl
		}
		return domain.TargetEnvGNU
	case "windows":
		if getenv("MSYSTEM") != "" {
			return domain.TargetEnvGNU
		}
		return domain.TargetEnvMSVC
	}
	return ""
}

// HostTriple returns the target triple of the running platform
func HostTriple() (string, error) {
	return domain.TargetTriple(runtime.GOOS, runtime.GOARCH, DetectEnv(runtime.GOOS))
}
