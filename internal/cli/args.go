package cli

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dshills/multisel/internal/engine/changeset"
	"github.com/dshills/multisel/internal/engine/cursor"
	"github.com/dshills/multisel/internal/engine/rope"
)

// parseOffset parses a non-negative character offset.
func parseOffset(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("offset %q: %w", s, ErrInvalidUsage)
	}
	return n, nil
}

// parseRange parses ANCHOR:HEAD, or a single offset for a cursor.
func parseRange(s string) (cursor.Range, error) {
	a, h, found := strings.Cut(s, ":")
	anchor, err := parseOffset(a)
	if err != nil {
		return cursor.Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	if !found {
		return cursor.NewRange(anchor, anchor), nil
	}
	head, err := parseOffset(h)
	if err != nil {
		return cursor.Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	return cursor.NewRange(anchor, head), nil
}

// parseEdit parses FROM:TO:TEXT. TEXT may contain colons and may be
// omitted for a deletion.
func parseEdit(s string) (changeset.Change, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 {
		return changeset.Change{}, fmt.Errorf("edit %q (want FROM:TO:TEXT): %w", s, ErrInvalidUsage)
	}
	from, err := parseOffset(parts[0])
	if err != nil {
		return changeset.Change{}, fmt.Errorf("edit %q: %w", s, err)
	}
	to, err := parseOffset(parts[1])
	if err != nil {
		return changeset.Change{}, fmt.Errorf("edit %q: %w", s, err)
	}
	if to < from {
		return changeset.Change{}, fmt.Errorf("edit %q ends before it starts: %w", s, ErrInvalidUsage)
	}
	var text string
	if len(parts) == 3 {
		text = parts[2]
	}
	return changeset.NewReplaceChange(from, to, text), nil
}

// buildSelection parses the --range values against doc. With no ranges
// the whole document is selected.
func buildSelection(doc rope.Rope, values []string, primary int) (cursor.Selection, error) {
	n := doc.CharLen()
	if len(values) == 0 {
		if n == 0 {
			return cursor.Point(0), nil
		}
		return cursor.Single(0, n-1), nil
	}

	ranges := make([]cursor.Range, 0, len(values))
	for _, val := range values {
		r, err := parseRange(val)
		if err != nil {
			return cursor.Selection{}, err
		}
		if r.To() > n {
			return cursor.Selection{}, fmt.Errorf("range %q is past the end of the text (%d characters): %w",
				val, n, ErrInvalidUsage)
		}
		ranges = append(ranges, r)
	}

	if primary < 0 || primary >= len(ranges) {
		return cursor.Selection{}, fmt.Errorf("primary %d out of range [0, %d): %w", primary, len(ranges), ErrInvalidUsage)
	}
	return cursor.New(ranges, primary), nil
}

// buildChanges parses the --edit values into a change set over doc.
// Edits may be given in any order.
func buildChanges(doc rope.Rope, values []string) (*changeset.ChangeSet, error) {
	changes := make([]changeset.Change, 0, len(values))
	for _, val := range values {
		c, err := parseEdit(val)
		if err != nil {
			return nil, err
		}
		if c.To > doc.CharLen() {
			return nil, fmt.Errorf("edit %q is past the end of the text (%d characters): %w",
				val, doc.CharLen(), ErrInvalidUsage)
		}
		changes = append(changes, c)
	}
	slices.SortStableFunc(changes, func(a, b changeset.Change) int {
		return cmp.Compare(a.From, b.From)
	})

	cs, err := changeset.FromChanges(changes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	return cs, nil
}

// readInput reads the document from path, or from in when path is "-".
func readInput(path string, in io.Reader) (rope.Rope, error) {
	if path == "-" {
		doc, err := rope.FromReader(in)
		if err != nil {
			return rope.New(), fmt.Errorf("reading stdin: %w", err)
		}
		return doc, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return rope.New(), fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	doc, err := rope.FromReader(f)
	if err != nil {
		return rope.New(), fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}
