package cursor

import "github.com/dshills/multisel/internal/engine/changeset"

// Text is the read-only document view used for fragment extraction.
// All offsets are character offsets unless stated otherwise.
type Text interface {
	// Slice returns the text in the character range [from, to).
	Slice(from, to int) string

	// CharToByte converts a character offset to a byte offset.
	CharToByte(pos int) int

	// ByteToChar converts a byte offset to a character offset.
	ByteToChar(pos int) int
}

// PositionMapper remaps positions through a batch of document edits.
// *changeset.ChangeSet implements it.
type PositionMapper interface {
	// IsEmpty reports whether no position can move.
	IsEmpty() bool

	// MapPos returns where pos lands once the edits are applied.
	MapPos(pos int, assoc changeset.Assoc) int
}

// Matcher finds non-overlapping pattern matches in a string, returning
// byte offset pairs in ascending order. *regexp.Regexp implements it.
type Matcher interface {
	FindAllStringIndex(s string, n int) [][]int
}
