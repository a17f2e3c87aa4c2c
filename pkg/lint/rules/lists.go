package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/mdcheck/pkg/lint"
	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// Unordered list styles.
const (
	styleDash     = "dash"
	stylePlus     = "plus"
	styleAsterisk = "asterisk"
)

// Ordered list prefix styles.
const (
	styleOne     = "one"
	styleOrdered = "ordered"
)

var bulletStyles = map[string]string{
	"-": styleDash,
	"+": stylePlus,
	"*": styleAsterisk,
}

// listMarkerPattern matches a list marker at the start of a left-trimmed line.
var listMarkerPattern = regexp.MustCompile(`^([*+-]|\d+[.)])\s`)

// itemText strips indentation and blockquote markers from an item's first line.
func itemText(line string) string {
	return strings.TrimLeft(line, " \t>")
}

// ListStyleUnorderedOptions configures MD004.
type ListStyleUnorderedOptions struct {
	// Style is consistent, dash, plus or asterisk.
	Style string `mapstructure:"style"`
}

// Validate rejects unknown styles.
func (o *ListStyleUnorderedOptions) Validate() error {
	switch o.Style {
	case styleConsistent, styleDash, stylePlus, styleAsterisk:
		return nil
	default:
		return fmt.Errorf("style %q: want one of consistent, dash, plus, asterisk", o.Style)
	}
}

// ListStyleUnorderedRule checks that bullet markers are consistent.
type ListStyleUnorderedRule struct {
	lint.BaseRule
}

// NewListStyleUnorderedRule creates a new unordered list style rule.
func NewListStyleUnorderedRule() *ListStyleUnorderedRule {
	return &ListStyleUnorderedRule{
		BaseRule: lint.NewBaseRule(
			"MD004",
			"list-style-unordered",
			"Unordered list style",
			"lists", "bullet",
		),
	}
}

// DefaultOptions returns the default MD004 options.
func (r *ListStyleUnorderedRule) DefaultOptions() any {
	return &ListStyleUnorderedOptions{Style: styleConsistent}
}

// Check flags bullet items whose marker differs from the configured style,
// or from the first bullet of the document when the style is consistent.
func (r *ListStyleUnorderedRule) Check(ctx *lint.RuleContext) []int {
	opts, _ := r.DefaultOptions().(*ListStyleUnorderedOptions)
	ctx.LoadOptions(opts)

	want := opts.Style
	var indexes []int
	for _, list := range ctx.Lists(lint.ListsUnordered) {
		for _, item := range list.Items {
			style := bulletStyles[item.Markup]
			if want == styleConsistent {
				want = style
			}
			if style != want {
				indexes = append(indexes, item.Lines.Start)
			}
		}
	}

	return lint.LineNumbers(indexes)
}

// ListIndentConsistencyRule checks that items of one list share an indent.
type ListIndentConsistencyRule struct {
	lint.BaseRule
}

// NewListIndentConsistencyRule creates a new list indentation rule.
func NewListIndentConsistencyRule() *ListIndentConsistencyRule {
	return &ListIndentConsistencyRule{
		BaseRule: lint.NewBaseRule(
			"MD005",
			"list-indent-consistency",
			"Inconsistent indentation for list items at the same level",
			"lists", "indentation",
		),
	}
}

// Check flags items indented differently from the first item of their list.
func (r *ListIndentConsistencyRule) Check(ctx *lint.RuleContext) []int {
	var indexes []int
	for _, list := range ctx.Lists(lint.ListsAll) {
		if len(list.Items) == 0 {
			continue
		}
		want := lint.IndentWidth(list.Items[0].SourceLine)
		for _, item := range list.Items[1:] {
			if lint.IndentWidth(item.SourceLine) != want {
				indexes = append(indexes, item.Lines.Start)
			}
		}
	}
	return lint.LineNumbers(indexes)
}

// ListStartIndentRule checks that top-level lists start at the left margin.
type ListStartIndentRule struct {
	lint.BaseRule
}

// NewListStartIndentRule creates a new list start indentation rule.
func NewListStartIndentRule() *ListStartIndentRule {
	return &ListStartIndentRule{
		BaseRule: lint.NewBaseRule(
			"MD006",
			"list-start-indent",
			"Consider starting bulleted lists at the beginning of the line",
			"lists", "bullet", "indentation",
		),
	}
}

// Check flags top-level bullet lists whose first line is indented.
func (r *ListStartIndentRule) Check(ctx *lint.RuleContext) []int {
	var indexes []int
	for _, list := range ctx.Lists(lint.ListsUnordered) {
		if list.Depth == 0 && lint.IsIndented(list.Open.SourceLine) {
			indexes = append(indexes, list.Open.Lines.Start)
		}
	}
	return lint.LineNumbers(indexes)
}

// ListNestingIndentOptions configures MD007.
type ListNestingIndentOptions struct {
	// Indent is the expected indent step for nested lists.
	Indent int `mapstructure:"indent"`
}

// Validate rejects non-positive steps.
func (o *ListNestingIndentOptions) Validate() error {
	if o.Indent < 1 {
		return fmt.Errorf("indent %d: must be at least 1", o.Indent)
	}
	return nil
}

// ListNestingIndentRule checks the indent step of nested bullet lists.
type ListNestingIndentRule struct {
	lint.BaseRule
}

// NewListNestingIndentRule creates a new nested list indentation rule.
func NewListNestingIndentRule() *ListNestingIndentRule {
	return &ListNestingIndentRule{
		BaseRule: lint.NewBaseRule(
			"MD007",
			"list-nesting-indent",
			"Unordered list indentation",
			"lists", "bullet", "indentation",
		),
	}
}

// DefaultOptions returns the default MD007 options.
func (r *ListNestingIndentRule) DefaultOptions() any {
	return &ListNestingIndentOptions{Indent: 2}
}

// Check flags bullet lists whose indent grows by something other than the
// configured step over the previous list.
func (r *ListNestingIndentRule) Check(ctx *lint.RuleContext) []int {
	opts, _ := r.DefaultOptions().(*ListNestingIndentOptions)
	ctx.LoadOptions(opts)

	var (
		indexes []int
		prev    int
	)
	for _, list := range ctx.Lists(lint.ListsUnordered) {
		indent := lint.IndentWidth(list.Open.SourceLine)
		if indent > prev && indent-prev != opts.Indent {
			indexes = append(indexes, list.Open.Lines.Start)
		}
		prev = indent
	}

	return lint.LineNumbers(indexes)
}

// OrderedListPrefixOptions configures MD029.
type OrderedListPrefixOptions struct {
	// Style is one (every item is "1.") or ordered (1, 2, 3...).
	Style string `mapstructure:"style"`
}

// Validate rejects unknown styles.
func (o *OrderedListPrefixOptions) Validate() error {
	switch o.Style {
	case styleOne, styleOrdered:
		return nil
	default:
		return fmt.Errorf("style %q: want one or ordered", o.Style)
	}
}

// OrderedListPrefixRule checks ordered list item numbering.
type OrderedListPrefixRule struct {
	lint.BaseRule
}

// NewOrderedListPrefixRule creates a new ordered list prefix rule.
func NewOrderedListPrefixRule() *OrderedListPrefixRule {
	return &OrderedListPrefixRule{
		BaseRule: lint.NewBaseRule(
			"MD029",
			"ordered-list-prefix",
			"Ordered list item prefix",
			"lists", "ordered",
		),
	}
}

// DefaultOptions returns the default MD029 options.
func (r *OrderedListPrefixRule) DefaultOptions() any {
	return &OrderedListPrefixOptions{Style: styleOne}
}

// Check flags items not prefixed by "<n>. ", where n is 1 for the one style
// and the item's 1-based position for the ordered style.
func (r *OrderedListPrefixRule) Check(ctx *lint.RuleContext) []int {
	opts, _ := r.DefaultOptions().(*OrderedListPrefixOptions)
	ctx.LoadOptions(opts)

	var indexes []int
	for _, list := range ctx.Lists(lint.ListsOrdered) {
		for pos, item := range list.Items {
			if !hasPrefix(item, expectedPrefix(opts.Style, pos)) {
				indexes = append(indexes, item.Lines.Start)
			}
		}
	}

	return lint.LineNumbers(indexes)
}

// Suggest names the expected prefix for the item on line.
func (r *OrderedListPrefixRule) Suggest(ctx *lint.RuleContext, line int) string {
	opts, _ := r.DefaultOptions().(*OrderedListPrefixOptions)
	ctx.LoadOptions(opts)

	for _, list := range ctx.Lists(lint.ListsOrdered) {
		for pos, item := range list.Items {
			if item.LineNumber() == line {
				return fmt.Sprintf("expected prefix %q", expectedPrefix(opts.Style, pos)+".")
			}
		}
	}
	return ""
}

func expectedPrefix(style string, pos int) string {
	if style == styleOrdered {
		return strconv.Itoa(pos + 1)
	}
	return "1"
}

func hasPrefix(item mdast.Token, number string) bool {
	text := itemText(item.SourceLine)
	marker := number + "."
	if text == marker {
		return true
	}
	return strings.HasPrefix(text, marker+" ") || strings.HasPrefix(text, marker+"\t")
}

// ListMarkerSpacingOptions configures MD030.
type ListMarkerSpacingOptions struct {
	ULSingle int `mapstructure:"ul_single"`
	OLSingle int `mapstructure:"ol_single"`
	ULMulti  int `mapstructure:"ul_multi"`
	OLMulti  int `mapstructure:"ol_multi"`
}

// Validate rejects spacing below one.
func (o *ListMarkerSpacingOptions) Validate() error {
	for name, value := range map[string]int{
		"ul_single": o.ULSingle,
		"ol_single": o.OLSingle,
		"ul_multi":  o.ULMulti,
		"ol_multi":  o.OLMulti,
	} {
		if value < 1 {
			return fmt.Errorf("%s %d: must be at least 1", name, value)
		}
	}
	return nil
}

func (o *ListMarkerSpacingOptions) expected(ordered, single bool) int {
	switch {
	case ordered && single:
		return o.OLSingle
	case ordered:
		return o.OLMulti
	case single:
		return o.ULSingle
	default:
		return o.ULMulti
	}
}

// ListMarkerSpacingRule checks the spacing after list markers.
type ListMarkerSpacingRule struct {
	lint.BaseRule
}

// NewListMarkerSpacingRule creates a new list marker spacing rule.
func NewListMarkerSpacingRule() *ListMarkerSpacingRule {
	return &ListMarkerSpacingRule{
		BaseRule: lint.NewBaseRule(
			"MD030",
			"list-marker-spacing",
			"Spaces after list markers",
			"lists", "whitespace",
		),
	}
}

// DefaultOptions returns the default MD030 options.
func (r *ListMarkerSpacingRule) DefaultOptions() any {
	return &ListMarkerSpacingOptions{ULSingle: 1, OLSingle: 1, ULMulti: 1, OLMulti: 1}
}

// Check flags items whose marker is followed by a whitespace run of the
// wrong length.
//
// A list counts as single-line when its line span equals its item count.
// Nested lists inflate the span, so a parent of single-line children is
// treated as multi-line.
func (r *ListMarkerSpacingRule) Check(ctx *lint.RuleContext) []int {
	opts, _ := r.DefaultOptions().(*ListMarkerSpacingOptions)
	ctx.LoadOptions(opts)

	var indexes []int
	for _, list := range ctx.Lists(lint.ListsAll) {
		single := list.LastLine-list.Open.Lines.Start == len(list.Items)
		want := opts.expected(list.Ordered, single)

		for _, item := range list.Items {
			spaces, ok := markerSpacing(item, list.Ordered)
			if ok && spaces != want {
				indexes = append(indexes, item.Lines.Start)
			}
		}
	}

	return lint.LineNumbers(indexes)
}

// markerSpacing counts the whitespace after an item's marker. An empty
// item counts zero. It reports false when the marker cannot be located.
func markerSpacing(item mdast.Token, ordered bool) (int, bool) {
	text := itemText(item.SourceLine)

	width := 1
	if ordered {
		width = len(text) - len(strings.TrimLeft(text, "0123456789")) + 1
	}
	if width > len(text) {
		return 0, false
	}

	return lint.IndentWidth(text[width:]), true
}

// ListSurroundedByBlankLinesRule checks for blank lines around lists.
type ListSurroundedByBlankLinesRule struct {
	lint.BaseRule
}

// NewListSurroundedByBlankLinesRule creates a new blank lines around lists rule.
func NewListSurroundedByBlankLinesRule() *ListSurroundedByBlankLinesRule {
	return &ListSurroundedByBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"MD032",
			"list-surrounded-by-blank-lines",
			"Lists should be surrounded by blank lines",
			"lists", "blank_lines",
		),
	}
}

// listScan is the accumulator of the list boundary fold.
type listScan struct {
	inList  bool
	prev    string
	prevIdx int
	indexes []int
}

// step folds line idx into the scan. Entering a list right after text
// flags the marker line; leaving a list straight into text flags the last
// list line.
func (s listScan) step(idx int, line string) listScan {
	marker := listMarkerPattern.MatchString(strings.TrimSpace(line))
	separated := func(l string) bool { return lint.IsBlank(l) || lint.IsIndented(l) }

	switch {
	case marker && !s.inList && !separated(s.prev):
		s.indexes = append(s.indexes, idx)
	case !marker && s.inList && !separated(line):
		s.indexes = append(s.indexes, s.prevIdx)
	}

	switch {
	case marker:
		s.inList = true
	case lint.IsBlank(line) || !lint.IsIndented(line):
		s.inList = false
	}

	s.prev, s.prevIdx = line, idx
	return s
}

// Check folds over the lines outside fenced code bodies.
func (r *ListSurroundedByBlankLinesRule) Check(ctx *lint.RuleContext) []int {
	codeMap := ctx.CodeMap()

	var scan listScan
	for idx, line := range ctx.Lines() {
		if codeMap.InCode(idx) && !codeMap.IsFence(idx) {
			continue
		}
		scan = scan.step(idx, line)
	}

	return lint.LineNumbers(scan.indexes)
}
