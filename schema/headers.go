package schema

import (
	"slices"
	"strings"
)

// Headers are the column names of a table, in position order. Names are not
// required to be unique.
type Headers []string

// Index resolves name to a column position. Matching is case-insensitive and
// the first matching position wins.
func (h Headers) Index(name string) (int, bool) {
	for i, header := range h {
		if strings.EqualFold(header, name) {
			return i, true
		}
	}
	return -1, false
}

// Cell returns the cell at position i, or "" when the row is too short.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// VisibleSet is the set of column positions currently shown. A nil
// *VisibleSet behaves as an empty set.
type VisibleSet struct {
	positions map[int]struct{}
}

// NewVisibleSet returns a set containing the given positions.
func NewVisibleSet(positions ...int) *VisibleSet {
	v := &VisibleSet{positions: make(map[int]struct{}, len(positions))}
	for _, p := range positions {
		v.positions[p] = struct{}{}
	}
	return v
}

// AllVisible returns a set containing positions 0..n-1.
func AllVisible(n int) *VisibleSet {
	v := &VisibleSet{positions: make(map[int]struct{}, n)}
	for i := 0; i < n; i++ {
		v.positions[i] = struct{}{}
	}
	return v
}

func (v *VisibleSet) Show(i int) {
	if v.positions == nil {
		v.positions = make(map[int]struct{})
	}
	v.positions[i] = struct{}{}
}

func (v *VisibleSet) Hide(i int) {
	if v == nil {
		return
	}
	delete(v.positions, i)
}

func (v *VisibleSet) Contains(i int) bool {
	if v == nil {
		return false
	}
	_, ok := v.positions[i]
	return ok
}

func (v *VisibleSet) Len() int {
	if v == nil {
		return 0
	}
	return len(v.positions)
}

// Positions returns the visible positions in ascending order.
func (v *VisibleSet) Positions() []int {
	if v == nil {
		return nil
	}
	out := make([]int, 0, len(v.positions))
	for p := range v.positions {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
