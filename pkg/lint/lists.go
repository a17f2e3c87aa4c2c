package lint

import "github.com/yaklabco/mdcheck/pkg/mdast"

// ListFilter restricts FlattenLists to a kind of list.
type ListFilter uint8

const (
	// ListsAll keeps bullet and ordered lists.
	ListsAll ListFilter = iota
	// ListsOrdered keeps ordered lists only.
	ListsOrdered
	// ListsUnordered keeps bullet lists only.
	ListsUnordered
)

func (f ListFilter) keep(ordered bool) bool {
	switch f {
	case ListsOrdered:
		return ordered
	case ListsUnordered:
		return !ordered
	default:
		return true
	}
}

// ListDescriptor is one list of a nested list structure.
type ListDescriptor struct {
	// Ordered is true for ordered lists.
	Ordered bool

	// Items holds the list_item_open tokens of this list, not of nested lists.
	Items []mdast.Token

	// Depth is the nesting depth, 0 for a top-level list.
	Depth int

	// Open is the list-open token.
	Open mdast.Token

	// LastLine is the exclusive end line of the last ranged token seen
	// before the list closed.
	LastLine int
}

// FlattenLists reduces nested lists to a flat sequence in which every list
// precedes the lists nested inside it and siblings keep document order.
//
// A slot is reserved in the output when a list opens and filled when it
// closes, which is what keeps parents ahead of children without recursion.
func FlattenLists(tokens []mdast.Token, filter ListFilter) []ListDescriptor {
	var (
		all      []ListDescriptor
		stack    []int
		lastLine int
	)

	for _, tok := range tokens {
		switch {
		case tok.Kind.IsListOpen():
			all = append(all, ListDescriptor{
				Ordered: tok.Kind == mdast.TokOrderedListOpen,
				Depth:   len(stack),
				Open:    tok,
			})
			stack = append(stack, len(all)-1)
		case tok.Kind == mdast.TokListItemOpen && len(stack) > 0:
			top := stack[len(stack)-1]
			all[top].Items = append(all[top].Items, tok)
		case tok.Kind.IsListClose() && len(stack) > 0:
			all[stack[len(stack)-1]].LastLine = lastLine
			stack = stack[:len(stack)-1]
		}

		if tok.HasLines() {
			lastLine = tok.Lines.End
		}
	}

	// Unterminated lists end with the document.
	for _, idx := range stack {
		all[idx].LastLine = lastLine
	}

	result := make([]ListDescriptor, 0, len(all))
	for _, list := range all {
		if filter.keep(list.Ordered) {
			result = append(result, list)
		}
	}
	return result
}
