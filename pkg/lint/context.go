package lint

import (
	"context"

	"github.com/yaklabco/mdcheck/internal/logging"
	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// RuleContext provides everything a rule needs to evaluate one file.
//
// RuleContext stores context.Context as a field (Ctx) rather than passing
// it to Check. It is a short-lived parameter object created per rule
// invocation, so the usual rule against storing contexts does not apply.
type RuleContext struct {
	// Ctx is the context for cancellation and logging.
	Ctx context.Context

	// File is the snapshot under evaluation.
	File *mdast.FileSnapshot

	// Options is the raw option map configured for the rule (may be nil).
	Options map[string]any

	views *Views
}

// NewRuleContext creates a RuleContext with its own view cache.
func NewRuleContext(ctx context.Context, file *mdast.FileSnapshot, options map[string]any) *RuleContext {
	return newRuleContext(ctx, file, options, NewViews(file))
}

func newRuleContext(ctx context.Context, file *mdast.FileSnapshot, options map[string]any, views *Views) *RuleContext {
	return &RuleContext{
		Ctx:     ctx,
		File:    file,
		Options: options,
		views:   views,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Lines returns the raw lines of the file.
func (rc *RuleContext) Lines() []string {
	if rc.File == nil {
		return nil
	}
	return rc.File.Lines
}

// Tokens returns the token stream of the file.
func (rc *RuleContext) Tokens() []mdast.Token {
	if rc.File == nil {
		return nil
	}
	return rc.File.Tokens
}

// CodeMap returns the shared line classification.
func (rc *RuleContext) CodeMap() CodeMap {
	return rc.views.CodeMap()
}

// Headings returns the shared heading list. Do not mutate the returned slice.
func (rc *RuleContext) Headings() []Heading {
	return rc.views.Headings()
}

// Lists returns the flattened lists accepted by filter.
func (rc *RuleContext) Lists(filter ListFilter) []ListDescriptor {
	return rc.views.Lists(filter)
}

// LoadOptions decodes the rule's options into target, which must already
// hold the defaults. Options are validated before rules run; if decoding
// fails anyway, target keeps its defaults.
func (rc *RuleContext) LoadOptions(target any) {
	if err := DecodeOptions(rc.Options, target); err != nil {
		logging.FromContext(rc.Ctx).Debug("ignoring rule options", logging.FieldError, err)
	}
}
