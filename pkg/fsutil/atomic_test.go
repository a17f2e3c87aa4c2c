package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing string
		mode     os.FileMode
		wantMode os.FileMode
	}{
		{name: "new file default mode", wantMode: DefaultFileMode},
		{name: "replaces existing", existing: "old", mode: 0o600, wantMode: 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, ".mdcheck.yml")
			if tt.existing != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.existing), 0o644))
			}

			require.NoError(t, WriteAtomic(context.Background(), path, []byte("flavor: gfm\n"), tt.mode))

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "flavor: gfm\n", string(content))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, info.Mode().Perm())

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temporary file left behind")
		})
	}
}

func TestWriteAtomic_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.yml")
	require.ErrorIs(t, WriteAtomic(ctx, path, []byte("x"), 0), context.Canceled)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.yml")
	require.Error(t, WriteAtomic(context.Background(), path, []byte("x"), 0))
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.yml")

	written, err := WriteAtomicIfChanged(ctx, path, []byte("a\n"), 0)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = WriteAtomicIfChanged(ctx, path, []byte("a\n"), 0)
	require.NoError(t, err)
	assert.False(t, written)

	written, err = WriteAtomicIfChanged(ctx, path, []byte("b\n"), 0)
	require.NoError(t, err)
	assert.True(t, written)
}
