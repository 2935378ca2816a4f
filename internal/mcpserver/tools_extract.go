package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/telzey/xstruct/shape"
	"github.com/telzey/xstruct/skeleton"
)

type extractInput struct {
	Doc docInput `json:"doc" jsonschema:"The XML document to extract"`
}

type extractOutput struct {
	Root      string           `json:"root"`
	Hash      string           `json:"hash"`
	Signature string           `json:"signature"`
	Skeleton  *skeleton.Merged `json:"skeleton"`
}

func handleExtract(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, extractOutput, error) {
	data, name, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	extractor := &shape.Extractor{
		MaxDepth:       cfg.XMLMaxDepth,
		MaxAttrs:       cfg.XMLMaxAttrs,
		DecodeCharsets: true,
	}
	node, err := extractor.ExtractNamed(data, name)
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	sk := skeleton.Reduce(node)
	return nil, extractOutput{
		Root:      sk.Root,
		Hash:      fmt.Sprintf("%016x", sk.Hash),
		Signature: sk.Signature(),
		Skeleton:  sk.Merged,
	}, nil
}
