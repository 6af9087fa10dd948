package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchLoop_RunsOncePerBurst(t *testing.T) {
	dir := t.TempDir()
	fsw, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer fsw.Close()
	require.NoError(t, fsw.Add(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, fsw, 100*time.Millisecond, slog.Default(), func() { runs.Add(1) })
	}()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.json"), []byte(`{"a":"b"}`), 0o644))
	}

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch loop did not stop after cancel")
	}
}

func TestWatch_NothingToWatch(t *testing.T) {
	f := newFixture(t)
	app := newApp(&f.stdout, &f.stderr, f.env)
	app.root = f.root
	app.logLevel = "error"
	require.NoError(t, app.setupLogging())

	err := app.watch(context.Background(), 10*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog directory could be watched")
}

func TestWatch_InitialRunAndCancel(t *testing.T) {
	f := newFixture(t)
	f.cleanCatalogs(t)
	app := newApp(&f.stdout, &f.stderr, f.env)
	app.root = f.root
	app.logLevel = "error"
	require.NoError(t, app.setupLogging())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, app.watch(ctx, 10*time.Millisecond))
	assert.Equal(t, "[i18n-check] ok\n", f.stdout.String())
}
