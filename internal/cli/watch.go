package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/mdcheck/internal/logging"
	"github.com/yaklabco/mdcheck/pkg/runner"
)

// watchDebounce coalesces bursts of events, such as an editor writing a
// temporary file and renaming it, into one re-lint.
const watchDebounce = 200 * time.Millisecond

// watchAndLint lints once, then re-lints whenever a Markdown file or a
// loaded configuration file changes. Errors from individual runs are
// logged and watching continues. It returns nil when ctx is cancelled.
func watchAndLint(ctx context.Context, session *lintSession) error {
	logger := logging.NewInteractive()
	ctx = logging.WithLogger(ctx, logger)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	relint := func() {
		result, err := session.run(ctx)
		switch {
		case errors.Is(err, context.Canceled):
			return
		case err != nil:
			logger.Error("lint failed", logging.FieldError, err)
		case result.HasIssues() || result.HasErrors():
			logger.Warn("lint finished with issues",
				logging.FieldViolations, result.Stats.IssuesTotal,
				logging.FieldFilesErrored, result.Stats.FilesErrored,
			)
		default:
			logger.Info("lint passed", logging.FieldFilesProcessed, result.Stats.FilesProcessed)
		}
		for _, path := range session.loadedFrom {
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				logger.Debug("cannot watch config directory", logging.FieldPath, path, logging.FieldError, err)
			}
		}
	}

	relint()

	for _, root := range watchRoots(session.absPaths()) {
		if err := addWatchDirs(watcher, root); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
	}
	logger.Info("watching for changes", logging.FieldPaths, session.absPaths())

	var debounce *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				addCreatedDir(watcher, event.Name, logger)
			}
			if !session.isRelevant(event) {
				continue
			}
			logger.Debug("change detected", logging.FieldPath, event.Name)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.NewTimer(watchDebounce)
			fire = debounce.C

		case <-fire:
			fire = nil
			relint()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", logging.FieldError, err)
		}
	}
}

// isRelevant reports whether event touches a Markdown file or a
// configuration file read by the last run.
func (s *lintSession) isRelevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if slices.Contains(s.loadedFrom, event.Name) {
		return true
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	return slices.Contains(runner.DefaultExtensions(), ext)
}

// watchRoots maps input paths to the directories to watch: directories
// themselves and the parent directory of files.
func watchRoots(paths []string) []string {
	roots := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			path = filepath.Dir(path)
		}
		roots = append(roots, path)
	}
	slices.Sort(roots)
	return slices.Compact(roots)
}

// addWatchDirs watches root and every non-hidden directory below it.
// fsnotify does not watch recursively.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return fs.SkipDir
			}
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(entry.Name(), ".") {
			return fs.SkipDir
		}
		return watcher.Add(path)
	})
}

// addCreatedDir starts watching a directory created after startup.
func addCreatedDir(watcher *fsnotify.Watcher, path string, logger *log.Logger) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || strings.HasPrefix(filepath.Base(path), ".") {
		return
	}
	if err := addWatchDirs(watcher, path); err != nil {
		logger.Debug("cannot watch new directory", logging.FieldPath, path, logging.FieldError, err)
	}
}
