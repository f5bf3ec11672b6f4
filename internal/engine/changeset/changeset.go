package changeset

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/multisel/internal/engine/rope"
)

// Assoc decides which side of an insertion a mapped position lands on.
type Assoc uint8

const (
	// Before keeps a position in front of text inserted at it.
	Before Assoc = iota

	// After moves a position past text inserted at it.
	After
)

// String returns a human-readable representation of the association.
func (a Assoc) String() string {
	if a == Before {
		return "before"
	}
	return "after"
}

// OpKind is the kind of a change set operation.
type OpKind uint8

const (
	// OpRetain keeps characters of the old document.
	OpRetain OpKind = iota

	// OpDelete drops characters of the old document.
	OpDelete

	// OpInsert adds new text.
	OpInsert
)

// Operation is one step of a change set.
// Retain and Delete use Len; Insert uses Text.
type Operation struct {
	Kind OpKind
	Len  int
	Text string
}

// String returns a human-readable representation of the operation.
func (op Operation) String() string {
	switch op.Kind {
	case OpRetain:
		return fmt.Sprintf("retain %d", op.Len)
	case OpDelete:
		return fmt.Sprintf("delete %d", op.Len)
	default:
		return fmt.Sprintf("insert %q", op.Text)
	}
}

// ChangeSet is an ordered batch of operations over a document.
// Build one with New and the chainable Retain, Delete and Insert methods,
// or with FromChanges. A built ChangeSet should be treated as immutable.
type ChangeSet struct {
	ops       []Operation
	lenBefore int // characters consumed from the old document
	lenAfter  int // characters produced in the new document
}

// New creates an empty change set.
func New() *ChangeSet {
	return &ChangeSet{}
}

// FromChanges builds a change set from edits given in old-document
// offsets. Changes must be sorted by From and must not overlap.
func FromChanges(changes []Change) (*ChangeSet, error) {
	cs := New()
	last := 0

	for i, c := range changes {
		if c.From < 0 || c.To < c.From {
			return nil, fmt.Errorf("change %d %v: %w", i, c, ErrInvalidChange)
		}
		if c.From < last {
			return nil, fmt.Errorf("change %d %v: %w", i, c, ErrChangesOverlap)
		}

		cs.Retain(c.From - last).Delete(c.To - c.From).Insert(c.Text)
		last = c.To
	}

	return cs, nil
}

// Retain keeps the next n characters.
func (cs *ChangeSet) Retain(n int) *ChangeSet {
	if n <= 0 {
		return cs
	}
	cs.lenBefore += n
	cs.lenAfter += n
	if last := cs.last(); last != nil && last.Kind == OpRetain {
		last.Len += n
		return cs
	}
	cs.ops = append(cs.ops, Operation{Kind: OpRetain, Len: n})
	return cs
}

// Delete drops the next n characters.
func (cs *ChangeSet) Delete(n int) *ChangeSet {
	if n <= 0 {
		return cs
	}
	cs.lenBefore += n
	if last := cs.last(); last != nil && last.Kind == OpDelete {
		last.Len += n
		return cs
	}
	cs.ops = append(cs.ops, Operation{Kind: OpDelete, Len: n})
	return cs
}

// Insert adds text at the current position.
func (cs *ChangeSet) Insert(text string) *ChangeSet {
	if text == "" {
		return cs
	}
	n := utf8.RuneCountInString(text)
	cs.lenAfter += n
	if last := cs.last(); last != nil && last.Kind == OpInsert {
		last.Text += text
		last.Len += n
		return cs
	}
	cs.ops = append(cs.ops, Operation{Kind: OpInsert, Len: n, Text: text})
	return cs
}

func (cs *ChangeSet) last() *Operation {
	if len(cs.ops) == 0 {
		return nil
	}
	return &cs.ops[len(cs.ops)-1]
}

// Operations returns a copy of the operations.
func (cs *ChangeSet) Operations() []Operation {
	ops := make([]Operation, len(cs.ops))
	copy(ops, cs.ops)
	return ops
}

// LenBefore returns the number of old-document characters the operations
// cover.
func (cs *ChangeSet) LenBefore() int {
	return cs.lenBefore
}

// LenAfter returns the number of characters the covered part of the
// document has once the changes are applied.
func (cs *ChangeSet) LenAfter() int {
	return cs.lenAfter
}

// IsEmpty returns true if applying the change set would change nothing.
func (cs *ChangeSet) IsEmpty() bool {
	for _, op := range cs.ops {
		if op.Kind != OpRetain {
			return false
		}
	}
	return true
}

// MapPos returns the position pos moves to once the changes are applied.
//
// Rules:
//   - Retained text shifts by the net length change before it
//   - A position inside deleted text collapses to where the deletion happened
//   - At an insertion, assoc picks the side of the new text
func (cs *ChangeSet) MapPos(pos int, assoc Assoc) int {
	oldPos, newPos := 0, 0

	for _, op := range cs.ops {
		switch op.Kind {
		case OpRetain:
			if pos < oldPos+op.Len {
				return newPos + (pos - oldPos)
			}
			oldPos += op.Len
			newPos += op.Len

		case OpDelete:
			if pos < oldPos+op.Len {
				// Treat as sitting at the end of the deleted text so a
				// following insertion is resolved by assoc.
				pos = oldPos + op.Len
			}
			oldPos += op.Len

		case OpInsert:
			if pos == oldPos && assoc == Before {
				return newPos
			}
			newPos += op.Len
		}
	}

	// Past the covered part: implicitly retained
	return newPos + (pos - oldPos)
}

// Apply applies the changes to r and returns the edited text.
func (cs *ChangeSet) Apply(r rope.Rope) (rope.Rope, error) {
	if cs.lenBefore > r.CharLen() {
		return r, fmt.Errorf("covers %d characters of %d: %w", cs.lenBefore, r.CharLen(), ErrLengthMismatch)
	}

	at := 0
	for _, op := range cs.ops {
		switch op.Kind {
		case OpRetain:
			at += op.Len
		case OpDelete:
			r = r.Delete(at, at+op.Len)
		case OpInsert:
			r = r.Insert(at, op.Text)
			at += op.Len
		}
	}
	return r, nil
}

// String returns a human-readable representation of the change set.
func (cs *ChangeSet) String() string {
	if len(cs.ops) == 0 {
		return "no changes"
	}
	parts := make([]string, len(cs.ops))
	for i, op := range cs.ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, ", ")
}
