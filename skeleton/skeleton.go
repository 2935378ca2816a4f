// Package skeleton reduces shape trees to compact, hashable skeletons.
//
// A skeleton is the merged, deduplicated shape of a whole document: at every
// level, all same-named sibling elements are unioned into one representative
// entry carrying the union of their attribute keys and the recursive union of
// their child shapes. The merge is idempotent, commutative, and associative,
// so the skeleton of a document does not depend on sibling order or on the
// order instances are merged in.
package skeleton

import (
	"hash"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	"github.com/telzey/xstruct/shape"
)

// AttributesKey is the reserved key under which an element's attribute-key
// union is recorded in the merged mapping. It begins with '@', which no XML
// element name can start with, so it can never collide with a child bucket.
const AttributesKey = "@attributes"

// Merged is one level of a reduced skeleton: the sorted union of attribute
// keys seen across all merged instances, plus one entry per distinct child
// element name.
type Merged struct {
	// Attrs is the sorted, deduplicated union of attribute keys.
	Attrs []string
	// Children maps child element name to the merged sub-skeleton of all
	// same-named instances.
	Children map[string]*Merged
}

// Skeleton is the reduced structural fingerprint of one document.
// A Skeleton is immutable once built.
type Skeleton struct {
	// Root is the name of the document's root element.
	Root string
	// Merged is the merged shape of the root element.
	Merged *Merged
	// Hash is an FNV-64a digest of the canonical serialized form.
	// Structurally equal skeletons always hash equal; use Equal to rule out
	// collisions before treating two skeletons as the same shape.
	Hash uint64
}

// Reduce builds the skeleton of a shape tree.
func Reduce(node *shape.Node) Skeleton {
	merged := reduceNode(node)
	return Skeleton{
		Root:   node.Name,
		Merged: merged,
		Hash:   hashSkeleton(node.Name, merged),
	}
}

// reduceNode reduces a single shape node bottom-up: each direct child is
// reduced to its own merged form, then unioned into the bucket for its name.
func reduceNode(node *shape.Node) *Merged {
	merged := &Merged{
		Attrs:    unionKeys(nil, node.AttrKeys),
		Children: make(map[string]*Merged, len(node.Children)),
	}
	for _, child := range node.Children {
		reduced := reduceNode(child)
		if existing, ok := merged.Children[child.Name]; ok {
			mergeInto(existing, reduced)
		} else {
			merged.Children[child.Name] = reduced
		}
	}
	return merged
}

// mergeInto unions src into dst: attribute keys by set union, child buckets
// recursively, bucket by bucket. src must not be used afterwards.
func mergeInto(dst, src *Merged) {
	dst.Attrs = unionKeys(dst.Attrs, src.Attrs)
	for name, sub := range src.Children {
		if existing, ok := dst.Children[name]; ok {
			mergeInto(existing, sub)
		} else {
			dst.Children[name] = sub
		}
	}
}

// unionKeys returns the sorted, deduplicated union of two key lists.
func unionKeys(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sort.Strings(out)
	dedup := out[:1]
	for _, k := range out[1:] {
		if k != dedup[len(dedup)-1] {
			dedup = append(dedup, k)
		}
	}
	return dedup
}

// Equal reports full structural equality with other. Hash equality alone is
// not sufficient: collisions must not silently merge distinct shapes.
func (s Skeleton) Equal(other Skeleton) bool {
	return s.Root == other.Root && mergedEqual(s.Merged, other.Merged)
}

func mergedEqual(a, b *Merged) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for i, key := range a.Attrs {
		if b.Attrs[i] != key {
			return false
		}
	}
	for name, sub := range a.Children {
		otherSub, ok := b.Children[name]
		if !ok || !mergedEqual(sub, otherSub) {
			return false
		}
	}
	return true
}

// Signature returns the compact textual form root:{...} with keys in
// canonical (lexicographic) order.
func (s Skeleton) Signature() string {
	var sb strings.Builder
	sb.WriteString(s.Root)
	sb.WriteByte(':')
	writeCanonical(&sb, s.Merged)
	return sb.String()
}

// hashSkeleton digests the canonical serialized form, which is independent
// of map iteration order.
func hashSkeleton(root string, merged *Merged) uint64 {
	hasher := fnv.New64a()
	writeString(hasher, root)
	writeString(hasher, ":")
	var sb strings.Builder
	writeCanonical(&sb, merged)
	writeString(hasher, sb.String())
	return hasher.Sum64()
}

// writeCanonical serializes a merged mapping as key-sorted JSON. The
// "@attributes" entry sorts before any element name because '@' precedes
// every character legal at the start of an XML name.
func writeCanonical(sb *strings.Builder, merged *Merged) {
	sb.WriteByte('{')
	first := true
	if len(merged.Attrs) > 0 {
		sb.WriteString(strconv.Quote(AttributesKey))
		sb.WriteString(":[")
		for i, key := range merged.Attrs {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(key))
		}
		sb.WriteByte(']')
		first = false
	}
	names := make([]string, 0, len(merged.Children))
	for name := range merged.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(strconv.Quote(name))
		sb.WriteByte(':')
		writeCanonical(sb, merged.Children[name])
	}
	sb.WriteByte('}')
}

func writeString(hasher hash.Hash64, s string) {
	_, _ = hasher.Write([]byte(s))
}

// MarshalJSON emits the canonical key-sorted JSON form of the merged mapping.
func (m *Merged) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	writeCanonical(&sb, m)
	return []byte(sb.String()), nil
}
