package changeset

import "fmt"

// ChangeType categorizes the type of a change.
type ChangeType uint8

const (
	// ChangeInsert indicates text was inserted (nothing removed).
	ChangeInsert ChangeType = iota

	// ChangeDelete indicates text was deleted (Text is empty).
	ChangeDelete

	// ChangeReplace indicates text was replaced.
	ChangeReplace
)

// String returns a human-readable representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change is a single edit in old-document character offsets:
// the range [From, To) is replaced by Text.
type Change struct {
	From int
	To   int
	Text string
}

// NewInsertChange creates a change inserting text at pos.
func NewInsertChange(pos int, text string) Change {
	return Change{From: pos, To: pos, Text: text}
}

// NewDeleteChange creates a change deleting [from, to).
func NewDeleteChange(from, to int) Change {
	return Change{From: from, To: to}
}

// NewReplaceChange creates a change replacing [from, to) with text.
func NewReplaceChange(from, to int, text string) Change {
	return Change{From: from, To: to, Text: text}
}

// Type returns the kind of edit the change performs.
func (c Change) Type() ChangeType {
	switch {
	case c.From == c.To:
		return ChangeInsert
	case c.Text == "":
		return ChangeDelete
	default:
		return ChangeReplace
	}
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Type() {
	case ChangeInsert:
		return fmt.Sprintf("Insert %q at %d", c.Text, c.From)
	case ChangeDelete:
		return fmt.Sprintf("Delete [%d:%d)", c.From, c.To)
	default:
		return fmt.Sprintf("Replace [%d:%d) with %q", c.From, c.To, c.Text)
	}
}
