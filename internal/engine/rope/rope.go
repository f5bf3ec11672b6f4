package rope

import (
	"io"
	"strings"
)

// Rope is an immutable rope data structure for text storage.
// Operations return new Rope values; the original is never modified.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return Rope{root: buildFromChunks(splitIntoChunks(s))}
}

// FromReader creates a rope from an io.Reader.
func FromReader(r io.Reader) (Rope, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Rope{}, err
	}
	return FromString(string(data)), nil
}

// Len returns the total byte length.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// CharLen returns the total number of characters.
func (r Rope) CharLen() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Chars
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Lines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{Flags: FlagASCII}
	}
	return r.root.summary
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(r.Len())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the character range [from, to).
// Bounds past the end of the rope are clamped.
func (r Rope) Slice(from, to int) string {
	return r.ByteSlice(r.CharToByte(from), r.CharToByte(to))
}

// ByteSlice returns the text in the byte range [start, end).
// Bounds past the end of the rope are clamped.
func (r Rope) ByteSlice(start, end int) string {
	if r.root == nil {
		return ""
	}
	end = min(end, r.Len())
	if start >= end {
		return ""
	}

	var sb strings.Builder
	sb.Grow(end - start)
	for _, chunk := range r.root.collectChunks(nil, start, end) {
		sb.WriteString(chunk.String())
	}
	return sb.String()
}

// CharToByte converts a character offset to a byte offset.
// Offsets past the end clamp to Len.
func (r Rope) CharToByte(pos int) int {
	if r.root == nil || pos <= 0 {
		return 0
	}
	return r.root.charToByte(pos)
}

// ByteToChar converts a byte offset to a character offset.
// Offsets past the end clamp to CharLen.
func (r Rope) ByteToChar(offset int) int {
	if r.root == nil || offset <= 0 {
		return 0
	}
	return r.root.byteToChar(offset)
}

// Insert inserts text at the given character offset.
// Returns a new rope; original is unchanged.
func (r Rope) Insert(pos int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.IsEmpty() {
		return FromString(text)
	}

	at := r.CharToByte(pos)
	chunks := r.root.collectChunks(nil, 0, at)
	chunks = append(chunks, splitIntoChunks(text)...)
	chunks = r.root.collectChunks(chunks, at, r.Len())
	return Rope{root: buildFromChunks(chunks)}
}

// Delete removes text in the character range [from, to).
// Returns a new rope; original is unchanged.
func (r Rope) Delete(from, to int) Rope {
	start, end := r.CharToByte(from), r.CharToByte(to)
	if start >= end {
		return r
	}

	chunks := r.root.collectChunks(nil, 0, start)
	chunks = r.root.collectChunks(chunks, end, r.Len())
	return Rope{root: buildFromChunks(chunks)}
}

// Replace replaces text in the character range [from, to) with new text.
// Returns a new rope; original is unchanged.
func (r Rope) Replace(from, to int, text string) Rope {
	return r.Delete(from, to).Insert(from, text)
}

// Equals returns true if two ropes contain the same text.
func (r Rope) Equals(other Rope) bool {
	if r.Len() != other.Len() {
		return false
	}
	return r.String() == other.String()
}
