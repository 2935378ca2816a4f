// Package report renders finished group tables: ranked human-readable
// summaries and JSON serialization.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/telzey/xstruct/grouper"
	"github.com/telzey/xstruct/internal/fileutil"
	"github.com/telzey/xstruct/skeleton"
)

// maxSignatureLen is the display length signatures are truncated to.
const maxSignatureLen = 80

// Ranked is one row of a summarized group table.
type Ranked struct {
	// Rank is the 1-based position by member count.
	Rank int
	// Count is the number of documents in the group.
	Count int
	// Hash is the group's skeleton fingerprint.
	Hash uint64
	// Signature is the group's compact signature, truncated for display.
	Signature string
}

// Summarize returns the top topN groups as ranked rows. The result order
// follows the group table, which is already sorted by count descending with
// ties in creation order. A non-positive topN returns all groups.
func Summarize(result grouper.Result, topN int) []Ranked {
	groups := result.Groups
	if topN > 0 && topN < len(groups) {
		groups = groups[:topN]
	}
	rows := make([]Ranked, len(groups))
	for i, group := range groups {
		rows[i] = Ranked{
			Rank:      i + 1,
			Count:     group.Count,
			Hash:      group.Skeleton.Hash,
			Signature: truncate(group.Skeleton.Signature(), maxSignatureLen),
		}
	}
	return rows
}

// WriteSummary writes a human-readable summary of the result to w.
func WriteSummary(w io.Writer, result grouper.Result, topN int) {
	fmt.Fprintf(w, "Total files processed: %d\n", result.TotalFiles)
	if result.FailedFiles > 0 {
		fmt.Fprintf(w, "Failed files: %d\n", result.FailedFiles)
	}
	fmt.Fprintf(w, "Unique structures found: %d\n", result.UniqueStructures)

	rows := Summarize(result, topN)
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(w, "\nTop %d structures by file count:\n", len(rows))
	for _, row := range rows {
		fmt.Fprintf(w, "  %d. %d files  %016x  %s\n", row.Rank, row.Count, row.Hash, row.Signature)
	}
}

// JSONOptions controls JSON serialization of a result.
type JSONOptions struct {
	// Pretty enables indented output.
	Pretty bool
	// IncludePaths includes the member file list of each group.
	IncludePaths bool
}

type jsonGroup struct {
	Root     string           `json:"root"`
	Skeleton *skeleton.Merged `json:"skeleton"`
	Hash     uint64           `json:"hash"`
	Files    []string         `json:"files,omitempty"`
	Count    int              `json:"count"`
}

type jsonResult struct {
	TotalFiles       int         `json:"total_files"`
	FailedFiles      int         `json:"failed_files"`
	UniqueStructures int         `json:"unique_structures"`
	Groups           []jsonGroup `json:"groups"`
}

// WriteJSON serializes the result to w.
func WriteJSON(w io.Writer, result grouper.Result, opts JSONOptions) error {
	out := jsonResult{
		TotalFiles:       result.TotalFiles,
		FailedFiles:      result.FailedFiles,
		UniqueStructures: result.UniqueStructures,
		Groups:           make([]jsonGroup, len(result.Groups)),
	}
	for i, group := range result.Groups {
		out.Groups[i] = jsonGroup{
			Root:     group.Skeleton.Root,
			Skeleton: group.Skeleton.Merged,
			Hash:     group.Skeleton.Hash,
			Count:    group.Count,
		}
		if opts.IncludePaths {
			out.Groups[i].Files = group.Files
		}
	}

	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

// WriteJSONFile serializes the result to path with restrictive permissions.
func WriteJSONFile(path string, result grouper.Result, opts JSONOptions) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileutil.OwnerReadWrite)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := WriteJSON(f, result, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	return f.Close()
}

// truncate shortens s to at most n runes, appending "..." when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
