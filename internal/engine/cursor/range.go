package cursor

import (
	"fmt"

	"github.com/dshills/multisel/internal/engine/changeset"
)

// Range is a single directional selection span.
// Anchor is where the span started; Head is the end that moves.
// When Anchor == Head, this represents a cursor with no extent.
// Range is an immutable value type.
type Range struct {
	Anchor int // Stays fixed when extending
	Head   int // Moves when extending; the cursor position
}

// NewRange creates a range from anchor to head.
func NewRange(anchor, head int) Range {
	return Range{Anchor: anchor, Head: head}
}

// From returns the lower bound of the range.
func (r Range) From() int {
	return min(r.Anchor, r.Head)
}

// To returns the upper bound of the range.
func (r Range) To() int {
	return max(r.Anchor, r.Head)
}

// Len returns the number of characters in [From, To).
func (r Range) Len() int {
	return r.To() - r.From()
}

// IsEmpty returns true if the range has no extent (just a cursor).
func (r Range) IsEmpty() bool {
	return r.Anchor == r.Head
}

// IsBackward returns true if the range was drawn backward (head < anchor).
func (r Range) IsBackward() bool {
	return r.Head < r.Anchor
}

// Overlaps reports whether r overlaps other.
// A cursor overlaps anything it touches or falls inside of, so adjacent
// cursors are detected. Two non-empty ranges must genuinely interleave.
// The check is asymmetric: r is expected to start at or after other.
func (r Range) Overlaps(other Range) bool {
	if r.IsEmpty() {
		return r.From() <= other.To()
	}
	return r.From() < other.To()
}

// Contains reports whether pos is inside the range.
// Cursors contain nothing. Forward ranges cover [Anchor, Head); backward
// ranges cover (Head, Anchor].
func (r Range) Contains(pos int) bool {
	if r.IsEmpty() {
		return false
	}
	if r.Anchor < r.Head {
		return r.Anchor <= pos && pos < r.Head
	}
	return r.Head < pos && pos <= r.Anchor
}

// Map returns the range remapped through a set of changes.
// Both ends associate after insertions, so text inserted exactly at a
// boundary ends up outside of the range.
func (r Range) Map(changes PositionMapper) Range {
	anchor := changes.MapPos(r.Anchor, changeset.After)
	head := changes.MapPos(r.Head, changeset.After)

	if anchor == r.Anchor && head == r.Head {
		return r
	}
	return Range{Anchor: anchor, Head: head}
}

// Extend returns a range covering at least [from, to].
// If the anchor already lies within [from, to] the result is exactly
// {from, to}. Otherwise the anchor stays and the head moves to whichever
// bound is farther from it.
func (r Range) Extend(from, to int) Range {
	if from <= r.Anchor && to >= r.Anchor {
		return Range{Anchor: from, Head: to}
	}

	head := to
	if absDiff(from, r.Anchor) > absDiff(to, r.Anchor) {
		head = from
	}
	return Range{Anchor: r.Anchor, Head: head}
}

// Fragment returns the text covered by the range.
// Unlike every other query, the upper bound is inclusive: the fragment
// spans [From, To] and so holds one more character than Len.
func (r Range) Fragment(text Text) string {
	return text.Slice(r.From(), r.To()+1)
}

// Flip returns a range with anchor and head swapped.
func (r Range) Flip() Range {
	return Range{Anchor: r.Head, Head: r.Anchor}
}

// Collapse returns a cursor at the head.
func (r Range) Collapse() Range {
	return Range{Anchor: r.Head, Head: r.Head}
}

// String returns a string representation of the range.
func (r Range) String() string {
	if r.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", r.Head)
	}
	dir := "→"
	if r.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Range(%d%s%d)", r.Anchor, dir, r.Head)
}

func absDiff(x, y int) int {
	if x < y {
		return y - x
	}
	return x - y
}
