package mdast

import "sort"

// SplitLines splits content into lines, handling both LF and CRLF endings.
// A terminator at the very end of the content does not start a new line,
// so "a\nb\n" yields two lines. Everything else, including trailing spaces
// and tabs, is preserved.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return []string{}
	}

	var lines []string
	lineStart := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}
		end := idx
		if idx > lineStart && content[idx-1] == '\r' {
			end = idx - 1
		}
		lines = append(lines, string(content[lineStart:end]))
		lineStart = idx + 1
	}

	if lineStart < len(content) {
		lines = append(lines, string(content[lineStart:]))
	}

	return lines
}

// LineIndex maps byte offsets to 0-indexed line numbers.
type LineIndex struct {
	starts []int
}

// NewLineIndex builds an offset index over content.
func NewLineIndex(content []byte) *LineIndex {
	starts := []int{0}
	for idx, char := range content {
		if char == '\n' && idx+1 < len(content) {
			starts = append(starts, idx+1)
		}
	}
	return &LineIndex{starts: starts}
}

// LineOf returns the 0-indexed line containing offset. Offsets past the
// end of the content map to the last line.
func (li *LineIndex) LineOf(offset int) int {
	if offset <= 0 {
		return 0
	}
	return sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	}) - 1
}

// Start returns the byte offset of the 0-indexed line, or -1 when out of range.
func (li *LineIndex) Start(line int) int {
	if line < 0 || line >= len(li.starts) {
		return -1
	}
	return li.starts[line]
}

// Count returns the number of indexed lines.
func (li *LineIndex) Count() int {
	return len(li.starts)
}
