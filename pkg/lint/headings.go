package lint

import (
	"strings"

	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// Heading pairs a heading_open token with its rendered text.
type Heading struct {
	// Token is the heading_open token.
	Token mdast.Token

	// Text is the concatenated text and code-span content of the heading.
	Text string
}

// Level returns the heading level.
func (h Heading) Level() int {
	return h.Token.Level
}

// Line returns the 1-indexed line the heading starts on.
func (h Heading) Line() int {
	return h.Token.LineNumber()
}

// EachHeading calls fn once per heading, in document order, with the
// heading_open token and the rendered text between it and its close.
func EachHeading(tokens []mdast.Token, fn func(open mdast.Token, text string)) {
	var (
		open    mdast.Token
		inside  bool
		builder strings.Builder
	)

	for _, tok := range tokens {
		switch tok.Kind {
		case mdast.TokHeadingOpen:
			open = tok
			inside = true
			builder.Reset()
		case mdast.TokHeadingClose:
			if inside {
				fn(open, builder.String())
				inside = false
			}
		case mdast.TokInline:
			if inside {
				renderText(&builder, tok.Children)
			}
		default:
		}
	}
}

// Headings collects every heading in document order.
func Headings(tokens []mdast.Token) []Heading {
	var result []Heading
	EachHeading(tokens, func(open mdast.Token, text string) {
		result = append(result, Heading{Token: open, Text: text})
	})
	return result
}

func renderText(sb *strings.Builder, children []mdast.Child) {
	for _, child := range children {
		switch child.Kind {
		case mdast.ChildText, mdast.ChildCode:
			sb.WriteString(child.Content)
		default:
		}
	}
}
