package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatch(t *testing.T, path string) *atomic.Int32 {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchCatalog(ctx, path, 20*time.Millisecond, func() { calls.Add(1) })
	}()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
	// Let the watcher register before the test writes.
	time.Sleep(50 * time.Millisecond)
	return &calls
}

func TestWatchCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "catalog.yaml", "exercises: []\n")
	calls := startWatch(t, path)

	require.NoError(t, os.WriteFile(path, []byte("exercises: []\n# edited\n"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatchCatalogFileIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "catalog.yaml", "exercises: []\n")
	calls := startWatch(t, path)

	writeFile(t, dir, "other.yaml", "x: 1\n")
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatchCatalogDirectory(t *testing.T) {
	dir := t.TempDir()
	calls := startWatch(t, dir)

	writeFile(t, dir, "notes.txt", "ignored")
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())

	writeFile(t, dir, "gym.cue", "package gym\n")
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatchCatalogMissingPath(t *testing.T) {
	err := watchCatalog(context.Background(), filepath.Join(t.TempDir(), "absent"), time.Millisecond, func() {})
	require.Error(t, err)
}
