//go:build unix

package rustup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLock_Exclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolchain-1.38.lock")

	unlock, err := acquireLock(path)
	require.NoError(t, err)

	acquired := make(chan func())
	go func() {
		second, err := acquireLock(path)
		if err != nil {
			close(acquired)
			return
		}
		acquired <- second
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first was held")
	case <-time.After(100 * time.Millisecond):
	}

	unlock()

	select {
	case second, ok := <-acquired:
		require.True(t, ok, "second lock failed")
		second()
	case <-time.After(5 * time.Second):
		t.Fatal("second lock not acquired after release")
	}
	assert.FileExists(t, path)
}
