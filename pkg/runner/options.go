// Package runner lints many Markdown files concurrently.
package runner

import "github.com/yaklabco/mdcheck/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the files or directories to process.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors ignore globs.
	// If empty, the process working directory is used.
	WorkingDir string

	// Extensions are the lowercase extensions, with leading dot, treated as
	// Markdown. Defaults to DefaultExtensions().
	Extensions []string

	// IgnoreGlobs skip matching files and directories. A pattern matches
	// the slash-separated path relative to WorkingDir or the base name.
	IgnoreGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs caps the number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
