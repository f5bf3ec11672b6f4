// Package engine provides a text document with a multi-range selection.
//
// The engine package serves as the facade over its sub-packages, combining
// text storage and selection handling into a single document type.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - rope: B+ tree rope for text storage (O(log n) operations)
//   - changeset: Edits expressed as retain/delete/insert operations
//   - cursor: Ranges, normalized multi-range selections and pattern splits
//
// # Values
//
// Ropes and selections are values: editing produces new ones
// and never alters those already handed out. The Engine itself holds the
// current text and selection and is meant for use from one goroutine.
//
// # Basic Usage
//
//	e := engine.New(
//	    engine.WithContent("hello world"),
//	    engine.WithSelection(cursor.Single(6, 10)),
//	)
//
//	// Insert before the selection; the selection moves with its text
//	e.Apply(changeset.New().Insert("big "))
//	e.Selection().Primary() // Range(10→14)
//	e.Fragments()           // ["world"]
//
// # Splitting
//
// SplitSelection cuts every selected range on the matches of a pattern:
//
//	e := engine.New(engine.WithContent("a, b, c"), engine.WithSelection(cursor.Single(0, 6)))
//	e.SplitSelection(regexp.MustCompile(`, `))
//	e.Fragments() // ["a", "b", "c"]
package engine
