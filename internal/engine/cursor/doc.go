// Package cursor provides the multi-range selection model for text editing.
//
// The cursor package handles:
//
//   - Directional selection spans with the Range type
//   - Multi-cursor selections with the Selection type
//   - Remapping selections through document edits
//   - Splitting selections on pattern matches
//
// Selection Model:
//
// Ranges use an anchor/head model where:
//   - Anchor: The end that stays put when extending
//   - Head: The end that moves (and the reported cursor position)
//
// When Anchor == Head, the range represents just a cursor with no
// selected text. A range is forward when head > anchor and backward when
// head < anchor; the direction is never stored separately.
//
// All positions are character offsets into the document, not bytes.
//
// Multi-Cursor Support:
//
// A Selection holds one or more ranges that are:
//   - Kept sorted by their lower bound
//   - Merged when they overlap
//   - Tracked through a primary index naming the active range
//
// Basic usage:
//
//	// Create a selection
//	sel := cursor.Point(10)
//
//	// Multi-cursor
//	sel = cursor.New([]cursor.Range{
//		cursor.NewRange(0, 4),
//		cursor.NewRange(10, 12),
//	}, 1)
//
//	// Remap after an edit
//	cs := changeset.New().Retain(2).Insert("abc")
//	sel = sel.Map(cs)
//
// Thread Safety:
//
// Range and Selection are immutable value types and safe for concurrent
// use. Every operation that changes a selection returns a new one.
package cursor
