package analysis

import (
	"cmp"
	"maps"
	"path/filepath"
	"slices"

	"github.com/yaklabco/mdcheck/pkg/config"
	"github.com/yaklabco/mdcheck/pkg/mdast"
	"github.com/yaklabco/mdcheck/pkg/runner"
)

// ReportVersion is the current report schema version.
const ReportVersion = "1.0.0"

// makeRelativePath converts path to be relative to workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	relPath, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	ruleMap   map[string]*RuleAnalysis
	ruleFiles map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		ruleMap:   make(map[string]*RuleAnalysis),
		ruleFiles: make(map[string]map[string]bool),
	}
}

func (ctx *analysisContext) rule(id, name, display, desc string) *RuleAnalysis {
	if _, ok := ctx.ruleMap[id]; !ok {
		ctx.ruleMap[id] = &RuleAnalysis{
			RuleID:      id,
			RuleName:    name,
			Rule:        display,
			Description: desc,
		}
		ctx.ruleFiles[id] = make(map[string]bool)
	}
	return ctx.ruleMap[id]
}

func (ctx *analysisContext) buildByRule(sortBy SortField) []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(ctx.ruleMap))
	for id, ra := range ctx.ruleMap {
		ra.Files = slices.Sorted(maps.Keys(ctx.ruleFiles[id]))
		result = append(result, *ra)
	}
	slices.SortFunc(result, func(left, right RuleAnalysis) int {
		if sortBy == SortByCount {
			if c := cmp.Compare(right.Issues, left.Issues); c != 0 {
				return c
			}
		}
		return cmp.Compare(left.RuleID, right.RuleID)
	})
	return result
}

func sourceLine(snapshot *mdast.FileSnapshot, line int) string {
	if snapshot == nil {
		return ""
	}
	return snapshot.Line(line - 1)
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		if sortBy == SortByCount {
			if c := cmp.Compare(right.Issues, left.Issues); c != 0 {
				return c
			}
		}
		return cmp.Compare(left.Path, right.Path)
	})
}

// Analyze transforms a runner.Result into a Report in a single pass.
// Violations keep the runner's path order; within a file they are ordered
// by line, then by rule code.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:    ReportVersion,
		Violations: []Violation{},
		ByFile:     []FileAnalysis{},
		ByRule:     []RuleAnalysis{},
	}
	if result == nil {
		return report
	}

	ruleFormat := opts.RuleFormat
	if ruleFormat == "" {
		ruleFormat = config.RuleFormatName
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		if file.Error != nil {
			report.Totals.FilesErrored++
			report.Errors = append(report.Errors, FileError{File: displayPath, Message: file.Error.Error()})
			continue
		}
		if file.Result == nil || file.Result.FileResult == nil || !file.Result.HasIssues() {
			continue
		}

		report.Totals.FilesWithIssues++
		fa := FileAnalysis{Path: displayPath}

		snapshot := file.Result.Snapshot
		var fileViolations []Violation
		for _, rr := range file.Result.Results {
			display := ruleFormat.Label(rr.RuleID, rr.RuleName)
			ra := ctx.rule(rr.RuleID, rr.RuleName, display, rr.Description)
			ra.Issues += rr.Count()
			ctx.ruleFiles[rr.RuleID][displayPath] = true
			fa.Rules = append(fa.Rules, rr.RuleID)

			for _, line := range rr.Lines {
				fileViolations = append(fileViolations, Violation{
					File:        displayPath,
					Line:        line,
					RuleID:      rr.RuleID,
					RuleName:    rr.RuleName,
					Rule:        display,
					Description: rr.Description,
					Suggestion:  rr.Suggestions[line],
					Source:      sourceLine(snapshot, line),
				})
			}
		}

		slices.SortStableFunc(fileViolations, func(a, b Violation) int {
			if c := cmp.Compare(a.Line, b.Line); c != 0 {
				return c
			}
			return cmp.Compare(a.RuleID, b.RuleID)
		})

		fa.Issues = len(fileViolations)
		slices.Sort(fa.Rules)
		report.Totals.Issues += fa.Issues
		report.Violations = append(report.Violations, fileViolations...)
		report.ByFile = append(report.ByFile, fa)
	}

	sortFileAnalysis(report.ByFile, opts.SortBy)
	report.ByRule = ctx.buildByRule(opts.SortBy)

	return report
}
