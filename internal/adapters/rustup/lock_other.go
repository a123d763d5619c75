//go:build !unix

package rustup

// acquireLock is a no-op where flock is unavailable
func acquireLock(path string) (func(), error) {
	return func() {}, nil
}
