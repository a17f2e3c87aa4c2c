package runner

import (
	"time"

	"github.com/yaklabco/mdcheck/pkg/lint"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result is nil when Error is set.
	Result *lint.PipelineResult

	// Error is set if the file could not be read or parsed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files linted successfully.
	FilesProcessed int

	// FilesErrored is the number of files that could not be linted.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one violation.
	FilesWithIssues int

	// IssuesTotal is the number of flagged lines across all files.
	IssuesTotal int

	// IssuesByRule counts flagged lines per rule code.
	IssuesByRule map[string]int

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any rule fired.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{IssuesByRule: make(map[string]int)}
}

// accumulate records one outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil || outcome.Result.FileResult == nil {
		return
	}

	r.Stats.FilesProcessed++

	count := outcome.Result.IssueCount()
	r.Stats.IssuesTotal += count
	if count > 0 {
		r.Stats.FilesWithIssues++
	}
	for _, rr := range outcome.Result.Results {
		r.Stats.IssuesByRule[rr.RuleID] += rr.Count()
	}
}
