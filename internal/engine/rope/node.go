package rope

import "strings"

// Tree structure constants
const (
	// MaxChildren is the maximum children per internal node.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node represents a node in the rope B+ tree.
// Leaf nodes (height == 0) contain text chunks.
// Internal nodes (height > 0) contain child node references.
type Node struct {
	height  uint8       // 0 for leaves, >0 for internal
	summary TextSummary // Aggregated metrics for entire subtree

	// Internal node fields (height > 0)
	children []*Node

	// Leaf node fields (height == 0)
	chunks []Chunk
}

// newLeafNode creates an empty leaf node.
func newLeafNode() *Node {
	return &Node{summary: TextSummary{Flags: FlagASCII}}
}

// newLeafNodeWithChunks creates a leaf node with the given chunks.
func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	n.summary = TextSummary{Flags: FlagASCII}
	for _, chunk := range chunks {
		n.summary = n.summary.Add(chunk.Summary())
	}
	return n
}

// newInternalNode creates an internal node with the given children.
func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}

	total := TextSummary{Flags: FlagASCII}
	for _, child := range children {
		total = total.Add(child.summary)
	}

	return &Node{
		height:   children[0].height + 1,
		summary:  total,
		children: children,
	}
}

// buildFromChunks builds a balanced tree bottom-up from chunks.
func buildFromChunks(chunks []Chunk) *Node {
	if len(chunks) == 0 {
		return newLeafNode()
	}

	var nodes []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		leafChunks := make([]Chunk, end-i)
		copy(leafChunks, chunks[i:end])
		nodes = append(nodes, newLeafNodeWithChunks(leafChunks))
	}

	for len(nodes) > 1 {
		var parents []*Node
		for i := 0; i < len(nodes); i += MaxChildren {
			end := min(i+MaxChildren, len(nodes))
			children := make([]*Node, end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newInternalNode(children))
		}
		nodes = parents
	}

	return nodes[0]
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// appendTo appends all text in this subtree to the builder.
func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			sb.WriteString(chunk.String())
		}
		return
	}

	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// collectChunks appends the chunks covering the byte range [start, end)
// to out, trimming the chunks at either boundary.
func (n *Node) collectChunks(out []Chunk, start, end int) []Chunk {
	if start >= end {
		return out
	}

	if n.IsLeaf() {
		offset := 0
		for _, chunk := range n.chunks {
			chunkEnd := offset + chunk.Len()
			if chunkEnd <= start {
				offset = chunkEnd
				continue
			}
			if offset >= end {
				break
			}

			if start <= offset && chunkEnd <= end {
				out = append(out, chunk)
			} else {
				lo := max(start, offset) - offset
				hi := min(end, chunkEnd) - offset
				out = append(out, NewChunk(chunk.String()[lo:hi]))
			}
			offset = chunkEnd
		}
		return out
	}

	offset := 0
	for _, child := range n.children {
		childEnd := offset + child.summary.Bytes
		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}
		out = child.collectChunks(out, max(start, offset)-offset, min(end, childEnd)-offset)
		offset = childEnd
	}
	return out
}

// charToByte converts a character offset within the subtree to a byte
// offset. Offsets past the end clamp to the subtree length.
func (n *Node) charToByte(pos int) int {
	if pos >= n.summary.Chars {
		return n.summary.Bytes
	}
	if n.summary.Flags&FlagASCII != 0 {
		return pos
	}

	bytes := 0
	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			if pos < chunk.summary.Chars {
				return bytes + charToByte(chunk.data, chunk.isASCII(), pos)
			}
			pos -= chunk.summary.Chars
			bytes += chunk.Len()
		}
		return bytes
	}

	for _, child := range n.children {
		if pos < child.summary.Chars {
			return bytes + child.charToByte(pos)
		}
		pos -= child.summary.Chars
		bytes += child.summary.Bytes
	}
	return bytes
}

// byteToChar converts a byte offset within the subtree to a character
// offset. Offsets past the end clamp to the subtree character count.
func (n *Node) byteToChar(offset int) int {
	if offset >= n.summary.Bytes {
		return n.summary.Chars
	}
	if n.summary.Flags&FlagASCII != 0 {
		return offset
	}

	chars := 0
	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			if offset < chunk.Len() {
				return chars + byteToChar(chunk.data, chunk.isASCII(), offset)
			}
			offset -= chunk.Len()
			chars += chunk.summary.Chars
		}
		return chars
	}

	for _, child := range n.children {
		if offset < child.summary.Bytes {
			return chars + child.byteToChar(offset)
		}
		offset -= child.summary.Bytes
		chars += child.summary.Chars
	}
	return chars
}
