package lint

import (
	"sync"

	"github.com/yaklabco/mdcheck/pkg/mdast"
)

// Views holds the derived views of one snapshot: the code map, the
// heading list and the flattened lists.
//
// Each view is built on first access and then shared by every rule that
// runs against the snapshot, which turns the O(rules × tokens) pattern of
// recomputing them per rule into a single pass per view.
//
// # Do Not Mutate Returned Slices
//
// The slices returned by Views are shared across all rules. Sorting,
// appending or filtering them in place corrupts the view for later rules;
// copy first.
//
// Views is safe for concurrent use.
type Views struct {
	file *mdast.FileSnapshot

	codeOnce sync.Once
	codeMap  CodeMap

	headingOnce sync.Once
	headings    []Heading

	listOnce sync.Once
	lists    []ListDescriptor
}

// NewViews creates an empty view cache over file.
func NewViews(file *mdast.FileSnapshot) *Views {
	return &Views{file: file}
}

// CodeMap returns the line classification of the snapshot.
func (v *Views) CodeMap() CodeMap {
	v.codeOnce.Do(func() {
		if v.file != nil {
			v.codeMap = ClassifyLines(v.file.Lines, v.file.Tokens)
		}
	})
	return v.codeMap
}

// Headings returns every heading with its rendered text.
func (v *Views) Headings() []Heading {
	v.headingOnce.Do(func() {
		if v.file != nil {
			v.headings = Headings(v.file.Tokens)
		}
	})
	return v.headings
}

// Lists returns the flattened lists accepted by filter. The result is a
// fresh slice; the descriptors' Items slices are shared.
func (v *Views) Lists(filter ListFilter) []ListDescriptor {
	v.listOnce.Do(func() {
		if v.file != nil {
			v.lists = FlattenLists(v.file.Tokens, ListsAll)
		}
	})

	result := make([]ListDescriptor, 0, len(v.lists))
	for _, list := range v.lists {
		if filter.keep(list.Ordered) {
			result = append(result, list)
		}
	}
	return result
}
