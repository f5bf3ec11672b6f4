package changeset

import "errors"

// Errors returned by change set operations.
var (
	// ErrInvalidChange indicates a change whose end precedes its start.
	ErrInvalidChange = errors.New("invalid change range")

	// ErrChangesOverlap indicates changes overlap or are not in ascending order.
	ErrChangesOverlap = errors.New("changes overlap or are not in ascending order")

	// ErrLengthMismatch indicates the change set reaches past the end of the text.
	ErrLengthMismatch = errors.New("change set does not fit the document")
)
