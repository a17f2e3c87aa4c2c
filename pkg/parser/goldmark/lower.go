package goldmark

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// lowerer flattens a goldmark AST into the mdast token stream.
//
// Leaf blocks take their line ranges from goldmark's line segments.
// Containers (lists, items, blockquotes) have no segments of their own and
// are sized from their children once those are lowered, so their open token
// is appended first and patched afterwards. Nodes with no content at all
// (empty items, thematic breaks) are placed at the first non-blank line
// after the previous block, tracked by cursor.
type lowerer struct {
	source []byte
	lines  []string
	index  *mdast.LineIndex
	tokens []mdast.Token
	cursor int
}

func newLowerer(source []byte, lines []string) *lowerer {
	return &lowerer{
		source: source,
		lines:  lines,
		index:  mdast.NewLineIndex(source),
	}
}

func (l *lowerer) lower(doc ast.Node) []mdast.Token {
	l.blocks(doc)
	return l.tokens
}

// blocks lowers every child of parent and returns the union of their ranges.
func (l *lowerer) blocks(parent ast.Node) (mdast.LineRange, bool) {
	var span mdast.LineRange
	found := false

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		r, ok := l.block(child)
		if !ok {
			continue
		}
		if !found {
			span = r
			found = true
			continue
		}
		span.Start = min(span.Start, r.Start)
		span.End = max(span.End, r.End)
	}

	return span, found
}

func (l *lowerer) block(node ast.Node) (mdast.LineRange, bool) {
	switch n := node.(type) {
	case *ast.Heading:
		return l.heading(n), true
	case *ast.Paragraph, *ast.TextBlock:
		return l.paragraph(node), true
	case *ast.List:
		return l.list(n), true
	case *ast.ListItem:
		return l.listItem(n), true
	case *ast.Blockquote:
		return l.blockquote(n), true
	case *ast.FencedCodeBlock:
		return l.fence(n), true
	case *ast.CodeBlock:
		return l.codeBlock(n), true
	case *ast.HTMLBlock:
		return l.htmlBlock(n), true
	case *ast.ThematicBreak:
		return l.thematicBreak(n), true
	default:
		return l.opaque(node)
	}
}

func (l *lowerer) heading(h *ast.Heading) mdast.LineRange {
	r, ok := l.segmentLines(h.Lines())
	if !ok {
		p := l.nextContentLine()
		r = mdast.LineRange{Start: p, End: p + 1}
	}

	markup := strings.Repeat("#", h.Level)
	if ok && !l.atxPrefix(h.Lines().At(0).Start) && r.End < len(l.lines) && isSetextUnderline(l.lines[r.End]) {
		r.End++
		markup = "="
		if h.Level == 2 {
			markup = "-"
		}
	}

	l.emit(mdast.Token{Kind: mdast.TokHeadingOpen, Lines: r, Level: h.Level, Markup: markup})
	l.inline(h, r)
	l.emit(mdast.Token{Kind: mdast.TokHeadingClose, Level: h.Level, Markup: markup})
	l.advance(r)

	return r
}

func (l *lowerer) paragraph(node ast.Node) mdast.LineRange {
	r, ok := l.segmentLines(node.Lines())
	if !ok {
		p := l.nextContentLine()
		r = mdast.LineRange{Start: p, End: p + 1}
	}

	l.emit(mdast.Token{Kind: mdast.TokParagraphOpen, Lines: r})
	l.inline(node, r)
	l.emit(mdast.Token{Kind: mdast.TokParagraphClose})
	l.advance(r)

	return r
}

func (l *lowerer) inline(block ast.Node, r mdast.LineRange) {
	var children []mdast.Child
	l.appendInlines(&children, block)

	l.emit(mdast.Token{
		Kind:     mdast.TokInline,
		Lines:    r,
		Content:  l.blockText(block.Lines()),
		Children: children,
	})
}

func (l *lowerer) list(list *ast.List) mdast.LineRange {
	openKind, closeKind := mdast.TokBulletListOpen, mdast.TokBulletListClose
	if list.IsOrdered() {
		openKind, closeKind = mdast.TokOrderedListOpen, mdast.TokOrderedListClose
	}
	markup := string(list.Marker)

	entry := l.nextContentLine()
	idx := l.emit(mdast.Token{Kind: openKind, Markup: markup})

	r, ok := l.blocks(list)
	if !ok {
		r = mdast.LineRange{Start: entry, End: entry + 1}
	}

	l.finish(idx, r)
	l.emit(mdast.Token{Kind: closeKind, Markup: markup})
	l.advance(r)

	return r
}

func (l *lowerer) listItem(item *ast.ListItem) mdast.LineRange {
	var markup string
	ordered := false
	if list, ok := item.Parent().(*ast.List); ok {
		markup = string(list.Marker)
		ordered = list.IsOrdered()
	}

	entry := l.nextContentLine()
	idx := l.emit(mdast.Token{Kind: mdast.TokListItemOpen, Markup: markup})

	r, ok := l.blocks(item)
	switch {
	case !ok:
		r = mdast.LineRange{Start: entry, End: entry + 1}
	case r.Start > entry && listMarkerWidth(strings.TrimLeft(l.line(r.Start), " \t>")) == 0:
		// Item content began on the line after its marker.
		r.Start--
	}

	l.finish(idx, r)
	if ordered {
		l.tokens[idx].Info = orderedNumber(l.line(r.Start))
	}
	l.emit(mdast.Token{Kind: mdast.TokListItemClose, Markup: markup})
	l.advance(r)

	return r
}

func (l *lowerer) blockquote(bq *ast.Blockquote) mdast.LineRange {
	entry := l.nextContentLine()
	idx := l.emit(mdast.Token{Kind: mdast.TokBlockquoteOpen, Markup: ">"})

	r, ok := l.blocks(bq)
	if !ok {
		r = mdast.LineRange{Start: entry, End: entry + 1}
	}
	for r.Start > entry && isQuoteOnly(l.line(r.Start-1)) {
		r.Start--
	}
	for r.End < len(l.lines) && isQuoteOnly(l.lines[r.End]) {
		r.End++
	}

	l.finish(idx, r)
	l.emit(mdast.Token{Kind: mdast.TokBlockquoteClose, Markup: ">"})
	l.advance(r)

	return r
}

func (l *lowerer) fence(fcb *ast.FencedCodeBlock) mdast.LineRange {
	segs := fcb.Lines()
	content, hasContent := l.segmentLines(segs)

	var open int
	switch {
	case fcb.Info != nil:
		open = l.index.LineOf(fcb.Info.Segment.Start)
	case hasContent:
		open = content.Start - 1
	default:
		open = l.nextContentLine()
	}

	markup := fenceRun(l.line(open))
	last := open
	if hasContent {
		last = content.End - 1
	}
	end := last + 1
	if end < len(l.lines) && isClosingFence(l.lines[end], markup) {
		end++
	}

	var info string
	if fcb.Info != nil {
		info = strings.TrimSpace(string(fcb.Info.Segment.Value(l.source)))
	}

	r := mdast.LineRange{Start: open, End: end}
	l.emit(mdast.Token{
		Kind:    mdast.TokFence,
		Lines:   r,
		Markup:  markup,
		Info:    info,
		Content: l.codeText(segs),
	})
	l.advance(r)

	return r
}

func (l *lowerer) codeBlock(cb *ast.CodeBlock) mdast.LineRange {
	r, ok := l.segmentLines(cb.Lines())
	if !ok {
		p := l.nextContentLine()
		r = mdast.LineRange{Start: p, End: p + 1}
	}

	l.emit(mdast.Token{Kind: mdast.TokCodeBlock, Lines: r, Content: l.codeText(cb.Lines())})
	l.advance(r)

	return r
}

func (l *lowerer) htmlBlock(hb *ast.HTMLBlock) mdast.LineRange {
	r, ok := l.segmentLines(hb.Lines())
	if !ok {
		p := l.nextContentLine()
		r = mdast.LineRange{Start: p, End: p + 1}
	}

	body := l.codeText(hb.Lines())
	if hb.HasClosure() {
		closure := l.index.LineOf(hb.ClosureLine.Start)
		r.End = max(r.End, closure+1)
		body += string(hb.ClosureLine.Value(l.source))
	}

	l.emit(mdast.Token{Kind: mdast.TokHTMLBlock, Lines: r, Content: body})
	l.advance(r)

	return r
}

func (l *lowerer) thematicBreak(tb *ast.ThematicBreak) mdast.LineRange {
	r, ok := l.segmentLines(tb.Lines())
	if !ok {
		p := l.nextContentLine()
		r = mdast.LineRange{Start: p, End: p + 1}
	}

	l.emit(mdast.Token{Kind: mdast.TokHR, Lines: r, Markup: strings.TrimSpace(l.line(r.Start))})
	l.advance(r)

	return r
}

// opaque lowers extension blocks (tables and the like) as a single
// TokOther spanning their content. Nodes with no content are dropped.
func (l *lowerer) opaque(node ast.Node) (mdast.LineRange, bool) {
	first, last := -1, -1
	l.collectOffsets(node, &first, &last)
	if first < 0 {
		return mdast.LineRange{}, false
	}

	r := mdast.LineRange{Start: l.index.LineOf(first), End: l.index.LineOf(last) + 1}
	l.emit(mdast.Token{Kind: mdast.TokOther, Lines: r})
	l.advance(r)

	return r, true
}

func (l *lowerer) collectOffsets(node ast.Node, first, last *int) {
	note := func(offset int) {
		if *first < 0 || offset < *first {
			*first = offset
		}
		if offset > *last {
			*last = offset
		}
	}

	switch n := node.(type) {
	case *ast.Text:
		note(n.Segment.Start)
	default:
		if node.Type() == ast.TypeBlock {
			segs := node.Lines()
			for i := range segs.Len() {
				note(segs.At(i).Start)
			}
		}
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		l.collectOffsets(child, first, last)
	}
}

func (l *lowerer) appendInlines(out *[]mdast.Child, parent ast.Node) {
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Text:
			appendText(out, string(n.Segment.Value(l.source)))
			if n.HardLineBreak() {
				*out = append(*out, mdast.Child{Kind: mdast.ChildHardBreak})
			} else if n.SoftLineBreak() {
				*out = append(*out, mdast.Child{Kind: mdast.ChildSoftBreak})
			}
		case *ast.String:
			appendText(out, string(n.Value))
		case *ast.CodeSpan:
			*out = append(*out, mdast.Child{Kind: mdast.ChildCode, Content: l.plainText(n)})
		case *ast.Link:
			*out = append(*out, mdast.Child{Kind: mdast.ChildLinkOpen})
			l.appendInlines(out, n)
			*out = append(*out, mdast.Child{Kind: mdast.ChildLinkClose})
		case *ast.AutoLink:
			*out = append(*out, mdast.Child{Kind: mdast.ChildLinkOpen})
			appendText(out, string(n.Label(l.source)))
			*out = append(*out, mdast.Child{Kind: mdast.ChildLinkClose})
		case *ast.Image:
			*out = append(*out, mdast.Child{Kind: mdast.ChildImage, Content: l.plainText(n)})
		case *ast.RawHTML:
			*out = append(*out, mdast.Child{Kind: mdast.ChildHTML, Content: l.segmentsText(n.Segments)})
		case *ast.Emphasis:
			*out = append(*out, mdast.Child{Kind: mdast.ChildMarkup})
			l.appendInlines(out, n)
			*out = append(*out, mdast.Child{Kind: mdast.ChildMarkup})
		default:
			l.appendInlines(out, n)
		}
	}
}

// appendText merges adjacent text spans, which goldmark splits at every
// potential delimiter.
func appendText(out *[]mdast.Child, s string) {
	if s == "" {
		return
	}
	if n := len(*out); n > 0 && (*out)[n-1].Kind == mdast.ChildText {
		(*out)[n-1].Content += s
		return
	}
	*out = append(*out, mdast.Child{Kind: mdast.ChildText, Content: s})
}

func (l *lowerer) plainText(node ast.Node) string {
	var sb strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(l.source))
		case *ast.String:
			sb.Write(n.Value)
		default:
			sb.WriteString(l.plainText(child))
		}
	}
	return sb.String()
}

func (l *lowerer) segmentsText(segs *text.Segments) string {
	if segs == nil {
		return ""
	}
	var sb strings.Builder
	for i := range segs.Len() {
		seg := segs.At(i)
		sb.Write(seg.Value(l.source))
	}
	return sb.String()
}

// blockText renders block lines the way inline content is stored: one
// line per segment, indentation dropped, the whole trimmed.
func (l *lowerer) blockText(segs *text.Segments) string {
	if segs == nil || segs.Len() == 0 {
		return ""
	}
	parts := make([]string, 0, segs.Len())
	for i := range segs.Len() {
		seg := segs.At(i)
		line := strings.TrimRight(string(seg.Value(l.source)), "\r\n")
		parts = append(parts, strings.TrimLeft(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func (l *lowerer) codeText(segs *text.Segments) string {
	return strings.ReplaceAll(l.segmentsText(segs), "\r\n", "\n")
}

// segmentLines returns the line range touched by segs.
func (l *lowerer) segmentLines(segs *text.Segments) (mdast.LineRange, bool) {
	if segs == nil || segs.Len() == 0 {
		return mdast.LineRange{}, false
	}

	first := l.index.LineOf(segs.At(0).Start)
	last := first
	for i := 1; i < segs.Len(); i++ {
		last = max(last, l.index.LineOf(segs.At(i).Start))
	}

	return mdast.LineRange{Start: first, End: last + 1}, true
}

// atxPrefix reports whether the text before offset on its line ends in a
// hash run, which is how ATX heading content is introduced.
func (l *lowerer) atxPrefix(offset int) bool {
	lineStart := l.index.Start(l.index.LineOf(offset))
	if lineStart < 0 || offset < lineStart || offset > len(l.source) {
		return false
	}
	prefix := strings.TrimRight(string(l.source[lineStart:offset]), " \t")
	return strings.HasSuffix(prefix, "#")
}

func (l *lowerer) emit(tok mdast.Token) int {
	if tok.HasLines() {
		tok.SourceLine = l.line(tok.Lines.Start)
	}
	l.tokens = append(l.tokens, tok)
	return len(l.tokens) - 1
}

func (l *lowerer) finish(idx int, r mdast.LineRange) {
	l.tokens[idx].Lines = r
	l.tokens[idx].SourceLine = l.line(r.Start)
}

func (l *lowerer) advance(r mdast.LineRange) {
	if r.End > l.cursor {
		l.cursor = r.End
	}
}

func (l *lowerer) nextContentLine() int {
	idx := l.cursor
	for idx < len(l.lines) && isBlank(l.lines[idx]) {
		idx++
	}
	if idx >= len(l.lines) {
		idx = max(len(l.lines)-1, 0)
	}
	return idx
}

func (l *lowerer) line(idx int) string {
	if idx < 0 || idx >= len(l.lines) {
		return ""
	}
	return l.lines[idx]
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isQuoteOnly reports whether line holds blockquote markers and nothing else.
func isQuoteOnly(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && strings.Trim(trimmed, "> \t") == ""
}

func isSetextUnderline(line string) bool {
	s := strings.TrimSpace(stripContainerPrefix(line))
	if s == "" {
		return false
	}
	return strings.Trim(s, "=") == "" || strings.Trim(s, "-") == ""
}

// listMarkerWidth returns the byte width of a list marker at the start of
// s, or 0 when s does not start with one.
func listMarkerWidth(s string) int {
	if s == "" {
		return 0
	}

	width := 0
	switch {
	case s[0] == '-' || s[0] == '+' || s[0] == '*':
		width = 1
	case s[0] >= '0' && s[0] <= '9':
		for width < len(s) && width < 9 && s[width] >= '0' && s[width] <= '9' {
			width++
		}
		if width >= len(s) || (s[width] != '.' && s[width] != ')') {
			return 0
		}
		width++
	default:
		return 0
	}

	if width < len(s) && s[width] != ' ' && s[width] != '\t' {
		return 0
	}
	return width
}

// stripContainerPrefix removes blockquote markers, list markers and
// indentation from the start of line.
func stripContainerPrefix(line string) string {
	s := line
	for {
		s = strings.TrimLeft(s, " \t")
		switch {
		case strings.HasPrefix(s, ">"):
			s = s[1:]
		case listMarkerWidth(s) > 0:
			s = s[listMarkerWidth(s):]
		default:
			return s
		}
	}
}

func fenceRun(line string) string {
	s := stripContainerPrefix(line)
	if s == "" || (s[0] != '`' && s[0] != '~') {
		return "```"
	}
	n := 0
	for n < len(s) && s[n] == s[0] {
		n++
	}
	return s[:n]
}

func isClosingFence(line, markup string) bool {
	if markup == "" {
		return false
	}
	s := strings.TrimLeft(line, " \t>")
	n := 0
	for n < len(s) && s[n] == markup[0] {
		n++
	}
	return n >= len(markup) && strings.TrimSpace(s[n:]) == ""
}

func orderedNumber(line string) string {
	s := strings.TrimLeft(line, " \t>")
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return s[:n]
}
