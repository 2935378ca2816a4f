// Package xstruct provides tools for analyzing the structure of XML corpora.
//
// xstruct reduces each XML document to a shape-only description (element
// names, attribute key sets, child nesting) and groups documents that share
// an identical structural skeleton. Values and text content are discarded;
// only the shape of the markup matters.
//
// # Overview
//
// The library consists of five primary packages:
//
//   - shape: Parse an XML document into a tree of shape nodes
//   - skeleton: Reduce a shape tree to a merged, hashable skeleton
//   - grouper: Concurrently group documents by skeleton fingerprint
//   - report: Rank, summarize, and serialize grouping results
//   - linter: Apply TEI markup rules to individual documents
//
// # Quick Start
//
// Group a set of XML files by structural skeleton:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/telzey/xstruct/grouper"
//	    "github.com/telzey/xstruct/report"
//	)
//
//	p := grouper.NewProcessor()
//	result := p.ProcessFiles(context.Background(), paths)
//	report.WriteSummary(os.Stdout, result, 5)
//
// Reduce a single document to its skeleton:
//
//	import (
//	    "github.com/telzey/xstruct/shape"
//	    "github.com/telzey/xstruct/skeleton"
//	)
//
//	node, err := shape.New().Extract(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	skel := skeleton.Reduce(node)
//	fmt.Printf("%016x %s\n", skel.Hash, skel.Signature())
//
// The xstruct binary (cmd/xstruct) exposes the same functionality as a CLI
// with scan, lint, and mcp subcommands.
package xstruct
