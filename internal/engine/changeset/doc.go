// Package changeset describes a batch of document edits and remaps
// positions through them.
//
// A ChangeSet is a sequence of operations walked left to right over the
// old document: Retain keeps characters, Delete drops them and Insert adds
// new text. Any tail of the document the operations do not reach is kept
// as is.
//
// # Usage
//
//	// Replace "world" in "hello world" with "gopher"
//	cs := changeset.New().Retain(6).Delete(5).Insert("gopher")
//
//	// Or build it from edits in old-document coordinates
//	cs, err := changeset.FromChanges([]changeset.Change{
//	    changeset.NewReplaceChange(6, 11, "gopher"),
//	})
//
//	// Apply to text
//	r, err := cs.Apply(rope.FromString("hello world"))
//
//	// Remap a position
//	pos := cs.MapPos(11, changeset.After) // 12
//
// # Association
//
// A position sitting exactly where text is inserted is ambiguous. Before
// keeps it in front of the new text, After moves it past the new text.
// Positions inside deleted text collapse to where the deletion happened,
// and then follow the same rule for text inserted in its place.
//
// All offsets are character offsets.
package changeset
