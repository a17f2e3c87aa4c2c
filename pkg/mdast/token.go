package mdast

// TokenKind classifies a block-level token in the Markdown token stream.
type TokenKind uint8

// Token kinds form a closed set. Opening and closing kinds come in pairs;
// leaf blocks (code, fences, rules, HTML) are single tokens.
const (
	TokOther TokenKind = iota

	TokHeadingOpen
	TokHeadingClose
	TokParagraphOpen
	TokParagraphClose
	TokInline

	TokBulletListOpen
	TokBulletListClose
	TokOrderedListOpen
	TokOrderedListClose
	TokListItemOpen
	TokListItemClose

	TokBlockquoteOpen
	TokBlockquoteClose

	TokCodeBlock // indented code block
	TokFence     // fenced code block, including both delimiter lines
	TokHR
	TokHTMLBlock
)

// String returns the snake_case name of the kind.
func (k TokenKind) String() string {
	switch k {
	case TokHeadingOpen:
		return "heading_open"
	case TokHeadingClose:
		return "heading_close"
	case TokParagraphOpen:
		return "paragraph_open"
	case TokParagraphClose:
		return "paragraph_close"
	case TokInline:
		return "inline"
	case TokBulletListOpen:
		return "bullet_list_open"
	case TokBulletListClose:
		return "bullet_list_close"
	case TokOrderedListOpen:
		return "ordered_list_open"
	case TokOrderedListClose:
		return "ordered_list_close"
	case TokListItemOpen:
		return "list_item_open"
	case TokListItemClose:
		return "list_item_close"
	case TokBlockquoteOpen:
		return "blockquote_open"
	case TokBlockquoteClose:
		return "blockquote_close"
	case TokCodeBlock:
		return "code_block"
	case TokFence:
		return "fence"
	case TokHR:
		return "hr"
	case TokHTMLBlock:
		return "html_block"
	case TokOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsListOpen reports whether k opens a bullet or ordered list.
func (k TokenKind) IsListOpen() bool {
	return k == TokBulletListOpen || k == TokOrderedListOpen
}

// IsListClose reports whether k closes a bullet or ordered list.
func (k TokenKind) IsListClose() bool {
	return k == TokBulletListClose || k == TokOrderedListClose
}

// IsLeafBlock reports whether k is a block that holds content directly
// rather than containing other blocks.
func (k TokenKind) IsLeafBlock() bool {
	switch k {
	case TokHeadingOpen, TokParagraphOpen, TokCodeBlock, TokFence, TokHR, TokHTMLBlock:
		return true
	default:
		return false
	}
}

// LineRange is a half-open range [Start, End) of 0-indexed line numbers.
type LineRange struct {
	Start int
	End   int
}

// Len returns the number of lines covered by the range.
func (r LineRange) Len() int {
	return r.End - r.Start
}

// Contains reports whether the 0-indexed line lies within the range.
func (r LineRange) Contains(line int) bool {
	return line >= r.Start && line < r.End
}

// ChildKind classifies an inline span inside an inline token.
type ChildKind uint8

// Inline child kinds.
const (
	ChildText ChildKind = iota
	ChildCode
	ChildSoftBreak
	ChildHardBreak
	ChildHTML
	ChildLinkOpen
	ChildLinkClose
	ChildImage
	ChildMarkup // emphasis and other delimiters with no text of their own
)

// Child is one inline span of an inline token.
type Child struct {
	Kind    ChildKind
	Content string
}

// Token is an immutable node of the block token stream.
type Token struct {
	// Kind identifies the token type.
	Kind TokenKind

	// Lines is the source line range. Closing tokens have no range.
	Lines LineRange

	// SourceLine is the verbatim text of the line the token starts on.
	SourceLine string

	// Level is the heading depth (1-6) for heading tokens, 0 otherwise.
	Level int

	// Markup is the marker that introduced the token: the bullet character
	// or ordered delimiter for list tokens, the fence run for fences.
	Markup string

	// Info is the fence info string, or the item number for ordered list items.
	Info string

	// Content is the rendered text of inline tokens, or the code body of
	// code blocks and fences.
	Content string

	// Children are the inline spans of an inline token.
	Children []Child
}

// HasLines reports whether the token carries a source line range.
func (t Token) HasLines() bool {
	return t.Lines.End > t.Lines.Start
}

// LineNumber returns the 1-indexed line the token starts on, or 0 when
// the token has no range.
func (t Token) LineNumber() int {
	if !t.HasLines() {
		return 0
	}
	return t.Lines.Start + 1
}
