package analysis

import "github.com/yaklabco/mdcheck/pkg/config"

// SortField specifies how to sort the per-file and per-rule views.
type SortField string

const (
	// SortByCount sorts by violation count, highest first.
	SortByCount SortField = "count"
	// SortByAlpha sorts by path or rule code.
	SortByAlpha SortField = "alpha"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	return s == SortByCount || s == SortByAlpha
}

// Options configures Analyze.
type Options struct {
	// SortBy orders ByFile and ByRule. Ties fall back to alphabetical.
	SortBy SortField

	// RuleFormat controls how rule identifiers appear in Violation.Rule.
	RuleFormat config.RuleFormat

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		SortBy:     SortByCount,
		RuleFormat: config.RuleFormatName,
	}
}
