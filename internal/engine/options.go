package engine

import (
	"github.com/dshills/multisel/internal/engine/cursor"
	"github.com/dshills/multisel/internal/engine/rope"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.text = rope.FromString(content)
	}
}

// WithRope sets the initial content of the engine from an existing rope.
func WithRope(r rope.Rope) Option {
	return func(e *Engine) {
		e.text = r
	}
}

// WithSelection sets the initial selection.
// New panics if it does not fit the initial content.
func WithSelection(sel cursor.Selection) Option {
	return func(e *Engine) {
		e.sel = sel
	}
}

// WithReadOnly creates a read-only engine.
// Write operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
