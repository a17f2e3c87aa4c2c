package analysis

// Report contains pre-computed views of a lint run.
// Computed once by Analyze and shared by all renderers.
type Report struct {
	// Version is the report schema version.
	Version string `json:"version"`

	// Violations is the flat list, ordered by file then line then rule.
	Violations []Violation `json:"violations"`

	// ByFile groups violations by file. Clean files are omitted.
	ByFile []FileAnalysis `json:"byFile"`

	// ByRule groups violations by rule.
	ByRule []RuleAnalysis `json:"byRule"`

	// Errors lists files that could not be linted.
	Errors []FileError `json:"errors,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`
}

// Violation is one flagged line.
type Violation struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	RuleID      string `json:"ruleId"`
	RuleName    string `json:"ruleName"`
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion,omitempty"`

	// Source is the flagged line's text, for context display.
	Source string `json:"-"`
}

// FileError records a file that failed to process.
type FileError struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesErrored    int `json:"filesErrored"`
	Issues          int `json:"totalIssues"`
}

// HasIssues returns true if there are any violations.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path   string   `json:"path"`
	Issues int      `json:"issues"`
	Rules  []string `json:"rules"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	RuleID      string   `json:"ruleId"`
	RuleName    string   `json:"ruleName"`
	Rule        string   `json:"rule"`
	Description string   `json:"description"`
	Issues      int      `json:"issues"`
	Files       []string `json:"files"`
}
