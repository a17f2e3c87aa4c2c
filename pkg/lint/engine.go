package lint

import (
	"context"
	"fmt"
	"time"

	"github.com/yaklabco/mdcheck/internal/logging"
	"github.com/yaklabco/mdcheck/pkg/config"
	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the parsed file.
	Snapshot *mdast.FileSnapshot

	// Results holds one entry per rule that fired, in rule-code order.
	Results []RuleResult
}

// HasIssues returns true if any rule fired.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Results) > 0
}

// IssueCount returns the total number of violations.
func (fr *FileResult) IssueCount() int {
	count := 0
	for _, r := range fr.Results {
		count += r.Count()
	}
	return count
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser parses Markdown files into FileSnapshots.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single file.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	return e.LintSnapshot(ctx, snapshot, cfg)
}

// LintSnapshot runs every enabled rule against an already parsed snapshot.
// All rules share one view cache; cancellation is checked between rules.
func (e *Engine) LintSnapshot(
	ctx context.Context,
	snapshot *mdast.FileSnapshot,
	cfg *config.Config,
) (*FileResult, error) {
	logger := logging.FromContext(ctx)
	views := NewViews(snapshot)
	result := &FileResult{Snapshot: snapshot}

	for _, rr := range ResolveRules(e.Registry, cfg) {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := newRuleContext(ctx, snapshot, rr.Options, views)

		start := time.Now()
		lines := rr.Rule.Check(ruleCtx)
		logger.Debug("rule evaluated",
			logging.FieldPath, snapshot.Path,
			logging.FieldRule, rr.Rule.ID(),
			logging.FieldLines, len(lines),
			logging.FieldDuration, time.Since(start))

		if len(lines) == 0 {
			continue
		}

		result.Results = append(result.Results, newRuleResult(ruleCtx, rr.Rule, lines))
	}

	return result, nil
}

func newRuleResult(ruleCtx *RuleContext, rule Rule, lines []int) RuleResult {
	res := RuleResult{
		RuleID:      rule.ID(),
		RuleName:    rule.Name(),
		Description: rule.Description(),
		Tags:        rule.Tags(),
		Lines:       lines,
	}

	if suggester, ok := rule.(Suggester); ok {
		for _, line := range lines {
			suggestion := suggester.Suggest(ruleCtx, line)
			if suggestion == "" {
				continue
			}
			if res.Suggestions == nil {
				res.Suggestions = make(map[int]string)
			}
			res.Suggestions[line] = suggestion
		}
	}

	return res
}
