package lint

import (
	"context"

	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// Parser turns Markdown content into a FileSnapshot.
//
// The lint package defines this interface in the consumer package;
// parser/goldmark provides the implementation.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw Markdown bytes into a FileSnapshot whose Lines are
	// mdast.SplitLines(content) and whose Tokens are in document order with
	// ranges indexing into Lines.
	//
	// On error it returns nil and no partial snapshot.
	Parse(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error)
}
