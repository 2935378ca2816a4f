package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/telzey/xstruct/grouper"
	"github.com/telzey/xstruct/internal/fileutil"
	"github.com/telzey/xstruct/report"
	"github.com/telzey/xstruct/shape"
)

type scanInput struct {
	Directory    string   `json:"directory"               jsonschema:"Directory to scan recursively for XML files"`
	Extensions   []string `json:"extensions,omitempty"    jsonschema:"File extensions treated as XML (default xml and tei)"`
	MaxDepth     int      `json:"max_depth,omitempty"     jsonschema:"Directory traversal depth limit (0 = unlimited)"`
	Workers      int      `json:"workers,omitempty"       jsonschema:"Worker count (0 = server default)"`
	Top          int      `json:"top,omitempty"           jsonschema:"Number of groups to return (0 = server default)"`
	IncludePaths bool     `json:"include_paths,omitempty" jsonschema:"Include member file paths in each group"`
}

type scanGroup struct {
	Root      string   `json:"root"`
	Hash      string   `json:"hash"`
	Count     int      `json:"count"`
	Signature string   `json:"signature"`
	Files     []string `json:"files,omitempty"`
}

type scanOutput struct {
	TotalFiles       int         `json:"total_files"`
	FailedFiles      int         `json:"failed_files"`
	UniqueStructures int         `json:"unique_structures"`
	Groups           []scanGroup `json:"groups"`
}

func handleScan(ctx context.Context, _ *mcp.CallToolRequest, input scanInput) (*mcp.CallToolResult, scanOutput, error) {
	if input.Directory == "" {
		return errResult(fmt.Errorf("directory is required")), scanOutput{}, nil
	}
	if err := fileutil.ValidateDirectory(input.Directory); err != nil {
		return errResult(err), scanOutput{}, nil
	}

	exts := input.Extensions
	if len(exts) == 0 {
		exts = []string{"xml", "tei"}
	}
	files, err := fileutil.FindXMLFiles(input.Directory, exts, input.MaxDepth, nil)
	if err != nil {
		return errResult(err), scanOutput{}, nil
	}
	if len(files) > cfg.ScanMaxFiles {
		return errResult(fmt.Errorf("directory contains %d matching files, limit is %d", len(files), cfg.ScanMaxFiles)), scanOutput{}, nil
	}

	workers := input.Workers
	if workers <= 0 {
		workers = cfg.Workers
	}
	proc := &grouper.Processor{
		Workers: workers,
		Extractor: &shape.Extractor{
			MaxDepth:       cfg.XMLMaxDepth,
			MaxAttrs:       cfg.XMLMaxAttrs,
			DecodeCharsets: true,
		},
	}
	result := proc.ProcessFiles(ctx, files)

	top := input.Top
	if top <= 0 {
		top = cfg.ScanTop
	}
	includePaths := input.IncludePaths || cfg.ScanIncludePaths

	output := scanOutput{
		TotalFiles:       result.TotalFiles,
		FailedFiles:      result.FailedFiles,
		UniqueStructures: result.UniqueStructures,
		Groups:           make([]scanGroup, 0, top),
	}
	for _, row := range report.Summarize(result, top) {
		group := result.Groups[row.Rank-1]
		out := scanGroup{
			Root:      group.Skeleton.Root,
			Hash:      fmt.Sprintf("%016x", row.Hash),
			Count:     row.Count,
			Signature: row.Signature,
		}
		if includePaths {
			out.Files = group.Files
		}
		output.Groups = append(output.Groups, out)
	}
	return nil, output, nil
}
