package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// matcher holds compiled ignore globs.
type matcher []glob.Glob

// newMatcher compiles patterns with '/' as the separator, so "*" stays
// within one path segment and "**" crosses segments.
func newMatcher(patterns []string) (matcher, error) {
	m := make(matcher, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
		}
		m = append(m, g)
	}
	return m, nil
}

// match reports whether relPath or its base name matches any pattern.
func (m matcher) match(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	base := filepath.Base(relPath)
	for _, g := range m {
		if g.Match(relPath) || g.Match(base) {
			return true
		}
	}
	return false
}

// matchDir also tries the directory with a trailing slash so "vendor/**"
// prunes "vendor" itself.
func (m matcher) matchDir(relPath string) bool {
	return m.match(relPath) || m.match(filepath.ToSlash(relPath)+"/")
}

// discoverer carries the state shared by one Discover call.
type discoverer struct {
	workDir        string
	extensions     []string
	ignore         matcher
	followSymlinks bool
}

// Discover finds Markdown files matching opts. It returns a sorted list of
// absolute paths without duplicates.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	ignore, err := newMatcher(opts.IgnoreGlobs)
	if err != nil {
		return nil, err
	}

	d := &discoverer{
		workDir:        workDir,
		extensions:     opts.effectiveExtensions(),
		ignore:         ignore,
		followSymlinks: opts.FollowSymlinks,
	}

	var files []string
	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			found, err := d.walk(ctx, absPath)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}

		// Explicitly named files bypass the extension filter.
		if !d.ignore.match(d.rel(absPath)) {
			files = append(files, absPath)
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func (d *discoverer) rel(path string) string {
	relPath, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

// walk returns the Markdown files under root. Hidden entries and ignored
// directories are pruned; unreadable directories are skipped.
func (d *discoverer) walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := d.rel(path)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && d.ignore.matchDir(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			if info.IsDir() {
				if !d.followSymlinks || d.ignore.matchDir(relPath) {
					return nil
				}
				// WalkDir does not descend into symlinks; walk the target.
				target, err := filepath.EvalSymlinks(path)
				if err != nil {
					return nil //nolint:nilerr // Unresolvable targets are skipped.
				}
				sub, err := d.walk(ctx, target)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if d.isMarkdown(path) && !d.ignore.match(relPath) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func (d *discoverer) isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(d.extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}
