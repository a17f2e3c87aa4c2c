// Package lint provides the rule engine, derived document views and the
// registry for mdcheck.
package lint

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the stable short code for this rule (e.g., "MD001").
	ID() string

	// Name returns the kebab-case name of the rule.
	Name() string

	// Description returns a one-line description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// Tags returns categorization tags for this rule (e.g., ["headings"]).
	Tags() []string

	// Check evaluates the rule against the given context and returns the
	// 1-indexed lines where it fired, in ascending order.
	//
	// Rules must:
	//   - Treat the snapshot and every derived view as read-only.
	//   - Return nil, never an error, for degenerate input.
	//   - Keep no state between calls.
	Check(ctx *RuleContext) []int
}

// Configurable is implemented by rules that accept options.
// DefaultOptions returns a pointer to a freshly allocated option struct
// filled with the rule's defaults; the loader decodes user options into it
// to validate them and the init command renders it into templates.
type Configurable interface {
	DefaultOptions() any
}

// Suggester is implemented by rules that can explain a violation on a
// given line. Suggest returns "" when it has nothing to add.
type Suggester interface {
	Suggest(ctx *RuleContext, line int) string
}

// RuleResult is the outcome of running one rule against one file.
type RuleResult struct {
	// RuleID is the rule code.
	RuleID string

	// RuleName is the kebab-case rule name.
	RuleName string

	// Description is the rule description.
	Description string

	// Tags are the rule's categorization tags.
	Tags []string

	// Lines holds the 1-indexed lines where the rule fired.
	Lines []int

	// Suggestions maps a line to a suggestion, for rules that provide them.
	Suggestions map[int]string
}

// Count returns the number of violations in the result.
func (r RuleResult) Count() int {
	return len(r.Lines)
}
