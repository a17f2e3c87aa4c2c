package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/mdcheck/pkg/config"
)

// DefaultMaxFileSize is the largest file the pipeline will read. Rules
// assume documents of bounded, in-memory size.
const DefaultMaxFileSize int64 = 16 << 20

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotRegularFile indicates the path is a directory or device.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrFileTooLarge indicates the file exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrParseFailure indicates a parsing error.
	ErrParseFailure = errors.New("parse failure")
)

// PipelineResult is the result of processing a single file.
type PipelineResult struct {
	*FileResult

	// Path is the file path that was processed.
	Path string

	// Size is the number of bytes read.
	Size int64
}

// Pipeline reads a file from disk and lints it.
type Pipeline struct {
	// Engine is the lint engine used for parsing and rule execution.
	Engine *Engine

	// MaxFileSize limits the size of files read. Zero uses DefaultMaxFileSize.
	MaxFileSize int64
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile reads path and lints its content.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, cfg *config.Config) (*PipelineResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, categorizeError(fmt.Errorf("stat %s: %w", path, err))
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	limit := p.MaxFileSize
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}
	if stat.Size() > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrFileTooLarge, path, stat.Size(), limit)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, categorizeError(fmt.Errorf("read %s: %w", path, err))
	}

	return p.ProcessContent(ctx, path, content, cfg)
}

// ProcessContent lints in-memory content without file I/O.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*PipelineResult, error) {
	fileResult, err := p.Engine.LintFile(ctx, path, content, cfg)
	if err != nil {
		return nil, err
	}

	return &PipelineResult{
		FileResult: fileResult,
		Path:       path,
		Size:       int64(len(content)),
	}, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrNotRegularFile) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrParseFailure)
}
