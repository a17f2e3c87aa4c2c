package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcheck/pkg/runner"
)

// tree creates the given files (relative paths) under a temp directory.
func tree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# "+name+"\n"), 0o644))
	}
	return dir
}

// relAll converts discovered absolute paths back to slash-separated
// relative paths for comparison.
func relAll(t *testing.T, dir string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	files := []string{
		"README.md",
		"CHANGES.markdown",
		"notes.txt",
		"docs/guide.md",
		"docs/draft.md",
		"docs/api/index.MD",
		"vendor/lib/README.md",
		".github/template.md",
		"docs/.hidden.md",
	}

	tests := []struct {
		name   string
		paths  []string
		ignore []string
		exts   []string
		want   []string
	}{
		{
			name: "walks working directory",
			want: []string{
				"CHANGES.markdown",
				"README.md",
				"docs/api/index.MD",
				"docs/draft.md",
				"docs/guide.md",
				"vendor/lib/README.md",
			},
		},
		{
			name:   "ignores directory subtree",
			ignore: []string{"vendor/**"},
			want: []string{
				"CHANGES.markdown",
				"README.md",
				"docs/api/index.MD",
				"docs/draft.md",
				"docs/guide.md",
			},
		},
		{
			name:   "base name pattern",
			ignore: []string{"draft.md", "*.markdown"},
			want: []string{
				"README.md",
				"docs/api/index.MD",
				"docs/guide.md",
				"vendor/lib/README.md",
			},
		},
		{
			name:   "double star across directories",
			paths:  []string{"docs"},
			ignore: []string{"docs/**/index.*"},
			want:   []string{"docs/draft.md", "docs/guide.md"},
		},
		{
			name:  "custom extensions",
			paths: []string{"."},
			exts:  []string{".txt"},
			want:  []string{"notes.txt"},
		},
		{
			name:  "explicit file bypasses extension filter",
			paths: []string{"notes.txt", "README.md", "README.md"},
			want:  []string{"README.md", "notes.txt"},
		},
		{
			name:   "explicit file still honors ignore",
			paths:  []string{"docs/draft.md"},
			ignore: []string{"docs/draft.md"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := tree(t, files...)
			found, err := runner.Discover(context.Background(), runner.Options{
				Paths:       tt.paths,
				WorkingDir:  dir,
				IgnoreGlobs: tt.ignore,
				Extensions:  tt.exts,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, relAll(t, dir, found))
		})
	}
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	dir := tree(t, "a.md")

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"missing.md"},
	})
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = runner.Discover(context.Background(), runner.Options{
		WorkingDir:  dir,
		IgnoreGlobs: []string{"[unclosed"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unclosed")
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: tree(t, "a.md")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	outside := tree(t, "linked/page.md")
	dir := tree(t, "a.md")
	if err := os.Symlink(filepath.Join(outside, "linked"), filepath.Join(dir, "docs")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	found, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, relAll(t, dir, found))

	found, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}
