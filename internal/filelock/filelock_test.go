package filelock

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLock_TryLockWhileHeld(t *testing.T) {
	target := filepath.Join(t.TempDir(), "coil.cst")

	first := ForTarget(target)
	require.NoError(t, first.Lock())
	assert.Equal(t, target+LockSuffix, first.Path())

	second := ForTarget(target)
	acquired, err := second.TryLock()
	require.NoError(t, err)
	assert.False(t, acquired, "lock must be exclusive")

	require.NoError(t, first.Unlock())

	acquired, err = second.TryLock()
	require.NoError(t, err)
	assert.True(t, acquired)
	require.NoError(t, second.Unlock())

	_, err = os.Stat(target + LockSuffix)
	assert.NoError(t, err, "lock file stays on disk after unlock")
}

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "coil.md")

	require.NoError(t, AtomicWrite(path, []byte("first")))
	require.NoError(t, AtomicWrite(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), "temp file left behind: %s", e.Name())
	}
}

func TestLockAndWrite_Concurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.md")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, LockAndWrite(path, []byte(strings.Repeat("x", n+1))))
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, strings.Repeat("x", len(data)), string(data), "content must come from exactly one writer")
}
