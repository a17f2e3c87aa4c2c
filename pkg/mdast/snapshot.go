// Package mdast provides the read-only token view of a Markdown document:
//   - FileSnapshot: raw content, split lines and the token stream
//   - Token: a typed block token with a half-open line range
//   - Child: an inline span of an inline token
//
// Snapshots are built once by a tokenizer and never mutated afterwards,
// so they can be shared freely between rules and goroutines.
package mdast

// FileSnapshot is an immutable view of a Markdown file.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines holds the raw source lines without their line terminators.
	Lines []string

	// Tokens is the block token stream in document order.
	Tokens []Token
}

// NewFileSnapshot creates a snapshot with its lines split but no tokens.
// Tokens are supplied by a tokenizer or a Builder.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   SplitLines(content),
	}
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// Line returns the 0-indexed line, or "" when out of range.
func (f *FileSnapshot) Line(idx int) string {
	if idx < 0 || idx >= len(f.Lines) {
		return ""
	}
	return f.Lines[idx]
}
