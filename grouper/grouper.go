// Package grouper accumulates document skeletons into groups of identical
// structure, safely from many concurrent producers.
package grouper

import (
	"sort"
	"sync"

	"github.com/telzey/xstruct/shape"
	"github.com/telzey/xstruct/skeleton"
)

// Group collects the documents sharing one skeleton.
// Groups are created on first sight of a novel skeleton and are never merged
// with each other or deleted during a run.
type Group struct {
	// Skeleton is the canonical skeleton for this shape class.
	Skeleton skeleton.Skeleton
	// Files holds the document identifiers in arrival order.
	Files []string
	// Count is len(Files), cached for fast reporting.
	Count int
	// Example is the full shape tree of the first document seen, retained
	// for display and debugging only. It takes no part in comparison.
	Example *shape.Node
}

// Result is the finished group table of one processing run.
type Result struct {
	// TotalFiles is the number of documents submitted, successful or not.
	TotalFiles int
	// FailedFiles is the number of documents skipped due to parse or read
	// failures.
	FailedFiles int
	// UniqueStructures is the number of distinct skeletons found.
	UniqueStructures int
	// Groups is sorted by Count descending; ties keep creation order.
	Groups []*Group
}

// Grouper accumulates (document, skeleton) pairs into groups keyed by
// skeleton hash. Offer may be called concurrently from many workers.
//
// The hash is an index, not an identity: each hash bucket holds one or more
// groups, and a full structural equality check decides membership, so hash
// collisions never silently merge distinct shapes.
type Grouper struct {
	mu      sync.Mutex
	buckets map[uint64][]*Group
	order   []*Group // creation order, for deterministic tie-breaking
	offered int
}

// NewGrouper creates an empty Grouper.
func NewGrouper() *Grouper {
	return &Grouper{buckets: make(map[uint64][]*Group)}
}

// Offer records that file has the given skeleton. The check-compare-create-
// or-append sequence is atomic per call, so at most one group is ever created
// per distinct skeleton regardless of interleaving. Offer never fails.
//
// example may be nil; when non-nil it is retained only for the first document
// of a new group.
func (g *Grouper) Offer(file string, skel skeleton.Skeleton, example *shape.Node) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.offered++
	for _, group := range g.buckets[skel.Hash] {
		if group.Skeleton.Equal(skel) {
			group.Files = append(group.Files, file)
			group.Count++
			return
		}
	}

	group := &Group{
		Skeleton: skel,
		Files:    []string{file},
		Count:    1,
		Example:  example,
	}
	g.buckets[skel.Hash] = append(g.buckets[skel.Hash], group)
	g.order = append(g.order, group)
}

// Offered returns the number of successful Offer calls so far.
func (g *Grouper) Offered() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.offered
}

// Snapshot returns the finished group table, sorted by member count
// descending with ties in group creation order. TotalFiles is the number of
// offered documents; callers that track failures adjust the totals.
//
// The returned groups are copies: later Offer calls do not mutate a snapshot.
func (g *Grouper) Snapshot() Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	groups := make([]*Group, len(g.order))
	for i, group := range g.order {
		files := make([]string, len(group.Files))
		copy(files, group.Files)
		groups[i] = &Group{
			Skeleton: group.Skeleton,
			Files:    files,
			Count:    group.Count,
			Example:  group.Example,
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	return Result{
		TotalFiles:       g.offered,
		UniqueStructures: len(groups),
		Groups:           groups,
	}
}
