package platform

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/hackcheck/internal/domain"
)

func stubPlatform(t *testing.T, env map[string]string, muslPresent bool) {
	t.Helper()
	origGetenv, origStat := getenv, statFunc
	getenv = func(key string) string { return env[key] }
	statFunc = func(name string) (os.FileInfo, error) {
		if muslPresent && name == muslLoader {
			return nil, nil
		}
		return nil, fs.ErrNotExist
	}
	t.Cleanup(func() { getenv, statFunc = origGetenv, origStat })
}

func TestDetectEnv(t *testing.T) {
	tests := []struct {
		name  string
		goos  string
		env   map[string]string
		musl  bool
		want  string
	}{
		{"linux gnu", "linux", nil, false, domain.TargetEnvGNU},
		{"linux musl", "linux", nil, true, domain.TargetEnvMusl},
		{"windows msvc", "windows", nil, false, domain.TargetEnvMSVC},
		{"windows mingw", "windows", map[string]string{"MSYSTEM": "MINGW64"}, false, domain.TargetEnvGNU},
		{"darwin", "darwin", nil, false, ""},
		{"override", "linux", map[string]string{EnvTargetEnv: domain.TargetEnvMusl}, false, domain.TargetEnvMusl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPlatform(t, tt.env, tt.musl)
			assert.Equal(t, tt.want, DetectEnv(tt.goos))
		})
	}
}
