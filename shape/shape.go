// Package shape parses XML documents into shape-only trees.
//
// A shape tree records element names, attribute key sets, and child nesting.
// Attribute values, text content, comments, and processing instructions are
// discarded: two documents that differ only in values have identical shapes.
package shape

import (
	"sort"
	"strings"
)

// Node is one element in a shape tree. A Node has no identity beyond its
// name, attribute key set, and children: two nodes with identical fields at
// every depth are interchangeable for grouping.
type Node struct {
	// Name is the element local name, case-sensitive.
	Name string
	// AttrKeys holds the attribute names present on the element, sorted and
	// deduplicated. Attribute values are never recorded. Namespace
	// declarations (xmlns, xmlns:*) are not attribute keys.
	AttrKeys []string
	// Children holds one Node per child element, in document order.
	Children []*Node
}

// Signature returns a compact one-line representation of the full tree
// in the form name[attr1,attr2]{child1,child2}. Intended for display and
// debugging; grouping uses skeleton hashes, not signatures.
func (n *Node) Signature() string {
	var sb strings.Builder
	n.writeSignature(&sb)
	return sb.String()
}

func (n *Node) writeSignature(sb *strings.Builder) {
	sb.WriteString(n.Name)
	if len(n.AttrKeys) > 0 {
		sb.WriteByte('[')
		sb.WriteString(strings.Join(n.AttrKeys, ","))
		sb.WriteByte(']')
	}
	if len(n.Children) > 0 {
		sb.WriteByte('{')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			c.writeSignature(sb)
		}
		sb.WriteByte('}')
	}
}

// sortDedup sorts keys and removes duplicates in place.
func sortDedup(keys []string) []string {
	if len(keys) < 2 {
		return keys
	}
	sort.Strings(keys)
	out := keys[:1]
	for _, k := range keys[1:] {
		if k != out[len(out)-1] {
			out = append(out, k)
		}
	}
	return out
}
