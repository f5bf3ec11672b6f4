package engine

import (
	"fmt"
	"io"

	"github.com/dshills/multisel/internal/engine/changeset"
	"github.com/dshills/multisel/internal/engine/cursor"
	"github.com/dshills/multisel/internal/engine/rope"
)

// Engine is a text document with a multi-range selection.
// It applies change sets to the text and keeps the selection mapped
// through them.
//
// An Engine is not safe for concurrent use. The rope and selection it
// hands out are immutable values and may be shared freely.
type Engine struct {
	text     rope.Rope
	sel      cursor.Selection
	revision int
	readOnly bool
}

// New creates a new Engine with the given options.
// Without WithSelection the selection is a cursor at the start of the text.
func New(opts ...Option) *Engine {
	e := &Engine{
		text: rope.New(),
		sel:  cursor.Point(0),
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.checkSelection(e.sel); err != nil {
		panic(fmt.Sprintf("engine.New: %v", err))
	}
	return e
}

// NewFromReader creates an Engine whose content is read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	text, err := rope.FromReader(r)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithRope(text)}, opts...)...), nil
}

// checkSelection reports whether every range of sel lies within the text.
func (e *Engine) checkSelection(sel cursor.Selection) error {
	n := e.text.CharLen()
	for _, r := range sel.Ranges() {
		if r.To() > n {
			return fmt.Errorf("%v past end of text (%d characters): %w", r, n, ErrOffsetOutOfRange)
		}
	}
	return nil
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the full document content.
func (e *Engine) Text() string {
	return e.text.String()
}

// Rope returns the document content. Ropes are immutable, so the result
// stays valid after further edits.
func (e *Engine) Rope() rope.Rope {
	return e.text
}

// Len returns the document length in characters.
func (e *Engine) Len() int {
	return e.text.CharLen()
}

// Revision returns the number of edits applied so far.
func (e *Engine) Revision() int {
	return e.revision
}

// IsReadOnly returns true if the engine rejects edits.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// ============================================================================
// Selection Operations
// ============================================================================

// Selection returns the current selection.
func (e *Engine) Selection() cursor.Selection {
	return e.sel
}

// SetSelection replaces the selection.
func (e *Engine) SetSelection(sel cursor.Selection) error {
	if err := e.checkSelection(sel); err != nil {
		return err
	}
	e.sel = sel
	return nil
}

// Fragments returns the text selected by each range, in selection order.
func (e *Engine) Fragments() []string {
	return e.sel.Fragments(e.text).Collect()
}

// SplitSelection splits every selected range on the matches of m.
// The text is not modified, so this is allowed on read-only engines.
func (e *Engine) SplitSelection(m cursor.Matcher) cursor.Selection {
	e.sel = cursor.SplitOnMatches(e.text, e.sel, m)
	return e.sel
}

// ============================================================================
// Edit Operations
// ============================================================================

// Apply applies cs to the text and maps the selection through it.
// On error the document is left unchanged.
func (e *Engine) Apply(cs *changeset.ChangeSet) error {
	if e.readOnly {
		return ErrReadOnly
	}

	text, err := cs.Apply(e.text)
	if err != nil {
		return fmt.Errorf("applying changes: %w", err)
	}
	if cs.IsEmpty() {
		return nil
	}

	e.text = text
	e.sel = e.sel.Map(cs)
	e.revision++
	return nil
}

// ApplyChanges builds a change set from changes and applies it.
func (e *Engine) ApplyChanges(changes []changeset.Change) error {
	cs, err := changeset.FromChanges(changes)
	if err != nil {
		return err
	}
	return e.Apply(cs)
}
