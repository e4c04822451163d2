package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreEvent(t *testing.T) {
	ignored := []string{
		"/site/.git/index.lock",
		"/site/about.md~",
		"/site/.about.md.swp",
		"/site/#about.md#",
		"/site/Thumbs.db",
	}
	for _, path := range ignored {
		assert.True(t, ignoreEvent(path), path)
	}

	watched := []string{
		"/site/about.md",
		"/site/_posts/2021-01-01-x.md",
		"/site/_config.yml",
	}
	for _, path := range watched {
		assert.False(t, ignoreEvent(path), path)
	}
}

func TestRun_RequiresCallback(t *testing.T) {
	err := Run(context.Background(), t.TempDir(), Options{})
	require.Error(t, err)
}

func TestRun_FiresOnceForBurstOfWrites(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "_posts"), 0o755))

	fired := make(chan struct{}, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, root, Options{
			Debounce: 50 * time.Millisecond,
			OnChange: func() { fired <- struct{}{} },
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		path := filepath.Join(root, "_posts", "2021-01-01-x.md")
		require.NoError(t, os.WriteFile(path, []byte("draft\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("expected OnChange after file writes")
	}

	// The burst settles into a single callback.
	select {
	case <-fired:
		t.Fatal("expected debounced single callback")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestRun_PicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()

	fired := make(chan struct{}, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = Run(ctx, root, Options{
			Debounce: 50 * time.Millisecond,
			OnChange: func() { fired <- struct{}{} },
		})
	}()

	time.Sleep(100 * time.Millisecond)
	sub := filepath.Join(root, "hardware")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("expected OnChange after mkdir")
	}

	require.NoError(t, os.WriteFile(filepath.Join(sub, "cdc.md"), []byte("x\n"), 0o644))
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("expected OnChange for file inside new directory")
	}
}
