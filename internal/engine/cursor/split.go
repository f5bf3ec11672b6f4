package cursor

// SplitOnMatches splits every range of sel on the matches of m, treating
// the matches as separators: the text between matches becomes new ranges
// and the matched text itself is dropped.
//
// Each range is searched through its fragment, so the character at To is
// included in the search. Ranges produced by the split are forward and the
// primary index of the result is always 0.
func SplitOnMatches(text Text, sel Selection, m Matcher) Selection {
	result := make([]Range, 0, sel.Len())

	for _, r := range sel.ranges {
		fragment := r.Fragment(text)

		selEnd := r.To()
		start := r.From()
		startByte := text.CharToByte(start)

		for _, loc := range m.FindAllStringIndex(fragment, -1) {
			end := text.ByteToChar(startByte + loc[0])
			// A separator right at the scan position leaves nothing to keep.
			if end > start {
				result = append(result, Range{Anchor: start, Head: end - 1})
			}
			start = text.ByteToChar(startByte + loc[1])
		}

		if start <= selEnd {
			result = append(result, Range{Anchor: start, Head: selEnd})
		}
	}

	// Every range was consumed by separators.
	if len(result) == 0 {
		return Point(sel.Primary().From())
	}
	return New(result, 0)
}
