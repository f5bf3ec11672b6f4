package cursor

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Selection is one or more ranges plus the index of the primary range.
// Ranges are sorted by From and never overlap; there is always at least
// one range and the primary index is always valid.
// Selection is an immutable value type.
type Selection struct {
	ranges       []Range
	primaryIndex int
}

// Single creates a selection holding one range.
func Single(anchor, head int) Selection {
	return Selection{
		ranges: []Range{{Anchor: anchor, Head: head}},
	}
}

// Point creates a selection holding a single cursor.
func Point(pos int) Selection {
	return Single(pos, pos)
}

// New creates a selection from arbitrary ranges, sorting and merging them.
// primaryIndex names the primary range within ranges. New panics if ranges
// is empty or primaryIndex is out of bounds.
func New(ranges []Range, primaryIndex int) Selection {
	if len(ranges) == 0 {
		panic("cursor: selection needs at least one range")
	}
	if primaryIndex < 0 || primaryIndex >= len(ranges) {
		panic(fmt.Sprintf("cursor: primary index %d out of range [0, %d)", primaryIndex, len(ranges)))
	}

	// Fast path for a single range (cursor)
	if len(ranges) == 1 {
		return Selection{ranges: []Range{ranges[0]}}
	}

	return normalize(ranges, primaryIndex)
}

// normalize sorts ranges by From and merges overlapping neighbours in a
// single pass. The primary is followed by its original index, so it ends
// up on its own surviving range or on the range it was merged into.
func normalize(ranges []Range, primaryIndex int) Selection {
	order := make([]int, len(ranges))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(ranges[a].From(), ranges[b].From())
	})

	result := make([]Range, 0, len(ranges))
	primary := 0

	for _, idx := range order {
		r := ranges[idx]
		if n := len(result); n > 0 && r.Overlaps(result[n-1]) {
			result[n-1] = merge(result[n-1], r)
			if idx == primaryIndex {
				primary = n - 1
			}
			continue
		}

		result = append(result, r)
		if idx == primaryIndex {
			primary = len(result) - 1
		}
	}

	return Selection{
		ranges:       result,
		primaryIndex: primary,
	}
}

// merge combines prev with the incoming range r, which starts at or after
// prev. The result takes the direction of r.
func merge(prev, r Range) Range {
	from := prev.From()
	to := max(r.To(), prev.To())

	if r.Anchor > r.Head {
		return Range{Anchor: to, Head: from}
	}
	return Range{Anchor: from, Head: to}
}

// Primary returns the primary range.
func (s Selection) Primary() Range {
	return s.ranges[s.primaryIndex]
}

// PrimaryIndex returns the index of the primary range within Ranges.
func (s Selection) PrimaryIndex() int {
	return s.primaryIndex
}

// Cursor returns the head of the primary range.
func (s Selection) Cursor() int {
	return s.Primary().Head
}

// Len returns the number of ranges.
func (s Selection) Len() int {
	return len(s.ranges)
}

// Ranges returns a copy of the ranges in ascending order.
// The returned slice is safe to modify without affecting the Selection.
func (s Selection) Ranges() []Range {
	return slices.Clone(s.ranges)
}

// IntoSingle returns a selection containing only the primary range.
func (s Selection) IntoSingle() Selection {
	if len(s.ranges) == 1 {
		return s
	}
	return Selection{
		ranges: []Range{s.Primary()},
	}
}

// Map remaps every range through a set of changes. Since an edit can make
// distant ranges collide, the result is normalized again.
func (s Selection) Map(changes PositionMapper) Selection {
	if changes.IsEmpty() {
		return s
	}

	mapped := make([]Range, len(s.ranges))
	for i, r := range s.ranges {
		mapped[i] = r.Map(changes)
	}
	return New(mapped, s.primaryIndex)
}

// Transform applies f to every range and normalizes the result.
// f must not depend on the order in which ranges are visited.
func (s Selection) Transform(f func(Range) Range) Selection {
	out := make([]Range, len(s.ranges))
	for i, r := range s.ranges {
		out[i] = f(r)
	}
	return New(out, s.primaryIndex)
}

// Push adds a range and makes it the primary.
func (s Selection) Push(r Range) Selection {
	ranges := make([]Range, len(s.ranges), len(s.ranges)+1)
	copy(ranges, s.ranges)
	ranges = append(ranges, r)
	return New(ranges, len(ranges)-1)
}

// Replace swaps the range at index i for r.
// It panics if i is out of bounds.
func (s Selection) Replace(i int, r Range) Selection {
	ranges := slices.Clone(s.ranges)
	ranges[i] = r
	return New(ranges, s.primaryIndex)
}

// Remove drops the range at index i. If the primary is removed, the range
// before it becomes primary. It panics if i is out of bounds or the
// selection has a single range.
func (s Selection) Remove(i int) Selection {
	if len(s.ranges) == 1 {
		panic("cursor: cannot remove the last range of a selection")
	}
	if i < 0 || i >= len(s.ranges) {
		panic(fmt.Sprintf("cursor: range index %d out of range [0, %d)", i, len(s.ranges)))
	}

	primary := s.primaryIndex
	if i < primary || (i == primary && primary > 0) {
		primary--
	}
	return Selection{
		ranges:       slices.Delete(slices.Clone(s.ranges), i, i+1),
		primaryIndex: primary,
	}
}

// Fragments returns an iterator over the text of each range, in the order
// of Ranges.
func (s Selection) Fragments(text Text) *FragmentIterator {
	return &FragmentIterator{
		ranges: s.ranges,
		text:   text,
		index:  -1,
	}
}

// Equal returns true if both selections hold the same ranges and primary.
func (s Selection) Equal(other Selection) bool {
	return s.primaryIndex == other.primaryIndex && slices.Equal(s.ranges, other.ranges)
}

// String returns a string representation of the selection.
// The primary range is marked with an asterisk.
func (s Selection) String() string {
	var sb strings.Builder
	sb.WriteString("Selection[")
	for i, r := range s.ranges {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i == s.primaryIndex {
			sb.WriteByte('*')
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
