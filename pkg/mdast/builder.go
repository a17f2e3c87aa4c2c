package mdast

import "strings"

// TokenOption customizes a token added through a Builder.
type TokenOption func(*Token)

// WithLevel sets the heading level.
func WithLevel(level int) TokenOption {
	return func(t *Token) { t.Level = level }
}

// WithMarkup sets the token markup.
func WithMarkup(markup string) TokenOption {
	return func(t *Token) { t.Markup = markup }
}

// WithInfo sets the token info string.
func WithInfo(info string) TokenOption {
	return func(t *Token) { t.Info = info }
}

// WithContent sets the token content.
func WithContent(content string) TokenOption {
	return func(t *Token) { t.Content = content }
}

// WithChildren sets the inline children.
func WithChildren(children ...Child) TokenOption {
	return func(t *Token) { t.Children = children }
}

// Builder assembles a FileSnapshot token by token. It fills SourceLine
// from the snapshot's lines so callers only supply ranges.
type Builder struct {
	snap *FileSnapshot
}

// NewBuilder starts a snapshot over the given source text.
func NewBuilder(path, source string) *Builder {
	return &Builder{snap: NewFileSnapshot(path, []byte(source))}
}

// Add appends a token covering lines [start, end).
func (b *Builder) Add(kind TokenKind, start, end int, opts ...TokenOption) *Builder {
	tok := Token{
		Kind:       kind,
		Lines:      LineRange{Start: start, End: end},
		SourceLine: b.snap.Line(start),
	}
	for _, opt := range opts {
		opt(&tok)
	}
	b.snap.Tokens = append(b.snap.Tokens, tok)
	return b
}

// Close appends a closing token, which carries no line range.
func (b *Builder) Close(kind TokenKind) *Builder {
	b.snap.Tokens = append(b.snap.Tokens, Token{Kind: kind})
	return b
}

// Inline appends an inline token whose single text child is text.
func (b *Builder) Inline(start, end int, text string) *Builder {
	return b.Add(TokInline, start, end,
		WithContent(text),
		WithChildren(Child{Kind: ChildText, Content: text}))
}

// Heading appends heading_open, inline and heading_close for an ATX
// heading on a single line. The inline text is the line with its hash
// runs stripped.
func (b *Builder) Heading(level, line int) *Builder {
	text := strings.TrimSpace(b.snap.Line(line))
	text = strings.TrimSpace(strings.Trim(text, "#"))
	b.Add(TokHeadingOpen, line, line+1, WithLevel(level), WithMarkup(strings.Repeat("#", level)))
	b.Inline(line, line+1, text)
	return b.Close(TokHeadingClose)
}

// Paragraph appends paragraph_open, inline and paragraph_close.
func (b *Builder) Paragraph(start, end int) *Builder {
	parts := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		parts = append(parts, strings.TrimSpace(b.snap.Line(i)))
	}
	b.Add(TokParagraphOpen, start, end)
	b.Inline(start, end, strings.Join(parts, "\n"))
	return b.Close(TokParagraphClose)
}

// Build returns the assembled snapshot. The builder must not be used afterwards.
func (b *Builder) Build() *FileSnapshot {
	return b.snap
}
