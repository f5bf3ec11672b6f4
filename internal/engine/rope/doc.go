// Package rope provides an immutable rope used as the read-only text view
// for selections.
//
// A rope is a tree where leaf nodes contain text chunks and internal nodes
// store aggregated metrics (byte count, character count, line count). This
// implementation uses a B+ tree variant for better cache locality.
//
// Positions are character (rune) offsets unless a method says otherwise.
// The rope converts between character and byte offsets in O(log n), which
// pattern matchers operating on UTF-8 bytes rely on.
//
// Basic usage:
//
//	r := rope.FromString("hello wörld")
//	r = r.Insert(5, ",")           // "hello, wörld"
//	r = r.Delete(0, 7)             // "wörld"
//	b := r.CharToByte(2)           // 3, since ö is two bytes
//
// Ropes are safe for concurrent read access.
package rope
