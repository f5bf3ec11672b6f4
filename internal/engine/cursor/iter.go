package cursor

// FragmentIterator yields the text of each range in a selection.
// Fragments are extracted lazily, one per call to Next.
type FragmentIterator struct {
	ranges []Range
	text   Text
	index  int
}

// Next advances to the next fragment.
// Returns false when there are no more fragments.
func (it *FragmentIterator) Next() bool {
	if it.index+1 >= len(it.ranges) {
		it.index = len(it.ranges)
		return false
	}
	it.index++
	return true
}

// Range returns the range of the current fragment.
func (it *FragmentIterator) Range() Range {
	return it.ranges[it.index]
}

// Fragment returns the text of the current range.
func (it *FragmentIterator) Fragment() string {
	return it.ranges[it.index].Fragment(it.text)
}

// Collect drains the iterator and returns the remaining fragments.
func (it *FragmentIterator) Collect() []string {
	var out []string
	for it.Next() {
		out = append(out, it.Fragment())
	}
	return out
}
