package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/telzey/xstruct/linter"
)

type lintInput struct {
	Doc docInput `json:"doc" jsonschema:"The TEI XML document to lint"`
}

type lintOutput struct {
	Valid    bool             `json:"valid"`
	Errors   []linter.Message `json:"errors"`
	Warnings []linter.Message `json:"warnings"`
	Info     []linter.Message `json:"info"`
}

func handleLint(_ context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
	data, _, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	rep := linter.Lint(data)
	return nil, lintOutput{
		Valid:    rep.Valid(),
		Errors:   rep.Errors,
		Warnings: rep.Warnings,
		Info:     rep.Info,
	}, nil
}
