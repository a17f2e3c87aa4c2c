package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintSession_IsRelevant(t *testing.T) {
	t.Parallel()

	session := &lintSession{loadedFrom: []string{"/repo/.mdcheck.yml"}}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"markdown write", fsnotify.Event{Name: "/repo/README.md", Op: fsnotify.Write}, true},
		{"markdown upper case", fsnotify.Event{Name: "/repo/NOTES.MARKDOWN", Op: fsnotify.Create}, true},
		{"markdown removed", fsnotify.Event{Name: "/repo/old.md", Op: fsnotify.Remove}, true},
		{"config write", fsnotify.Event{Name: "/repo/.mdcheck.yml", Op: fsnotify.Write}, true},
		{"other file", fsnotify.Event{Name: "/repo/main.go", Op: fsnotify.Write}, false},
		{"chmod only", fsnotify.Event{Name: "/repo/README.md", Op: fsnotify.Chmod}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, session.isRelevant(tt.event))
		})
	}
}

func TestWatchRoots(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(file, []byte("# A\n"), 0o644))
	sub := filepath.Join(dir, "docs")
	require.NoError(t, os.Mkdir(sub, 0o755))

	assert.Equal(t, []string{dir, sub}, watchRoots([]string{file, sub, dir}))
}

func TestAddWatchDirs_SkipsHidden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs", "guide"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git", "objects"), 0o755))

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = watcher.Close() })

	require.NoError(t, addWatchDirs(watcher, dir))

	watched := watcher.WatchList()
	assert.ElementsMatch(t, []string{
		dir,
		filepath.Join(dir, "docs"),
		filepath.Join(dir, "docs", "guide"),
	}, watched)
}

func TestWatchAndLint_StopsOnCancel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// The reporter writes only when a file has issues.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A\n\ntext   \n"), 0o644))
	cfgFile := filepath.Join(dir, "mdcheck.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("flavor: commonmark\n"), 0o644))

	var out syncBuffer
	session := &lintSession{
		out:     &out,
		workDir: dir,
		color:   "never",
	}
	session.loadOpts.WorkingDir = dir
	session.loadOpts.ExplicitPath = cfgFile
	session.loadOpts.IgnoreUserConfig = true
	session.loadOpts.IgnoreEnv = true

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watchAndLint(ctx, session) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "a.md")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
