package lint

import (
	"slices"
	"strings"
	"unicode"
)

// IsBlank reports whether line is empty or whitespace only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IndentWidth returns the number of leading space and tab characters.
func IndentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// IsIndented reports whether line starts with whitespace.
func IsIndented(line string) bool {
	return line != "" && unicode.IsSpace(rune(line[0]))
}

// HasTrailingWhitespace reports whether line ends in a space or tab.
func HasTrailingWhitespace(line string) bool {
	return strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t")
}

// LineNumbers converts 0-indexed line indexes into sorted, de-duplicated
// 1-indexed line numbers.
func LineNumbers(indexes []int) []int {
	if len(indexes) == 0 {
		return nil
	}
	result := make([]int, len(indexes))
	for i, idx := range indexes {
		result[i] = idx + 1
	}
	slices.Sort(result)
	return slices.Compact(result)
}
