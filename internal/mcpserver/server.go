// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes xstruct capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/telzey/xstruct"
)

const serverInstructions = `xstruct MCP server — groups XML documents by structural skeleton and lints TEI encoding practice.

Configuration: All defaults are configurable via XSTRUCT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- XSTRUCT_WORKERS (default: number of CPUs) — worker count for scan
- XSTRUCT_XML_MAX_DEPTH (default: 256) — element nesting limit per document
- XSTRUCT_XML_MAX_ATTRS (default: 256) — attribute count limit per element
- XSTRUCT_SCAN_TOP (default: 10) — default number of groups returned by scan
- XSTRUCT_SCAN_MAX_FILES (default: 100000) — maximum files a scan will process
- XSTRUCT_SCAN_INCLUDE_PATHS (default: false) — include member file lists in scan groups`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "xstruct", Version: xstruct.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "Scan a directory of XML files and group them by structural skeleton (element names and attribute keys; values ignored). Returns groups ranked by file count with their fingerprint hashes and compact signatures. Use top to control how many groups are returned and include_paths to list member files per group.",
	}, handleScan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract",
		Description: "Extract the structural skeleton of a single XML document. Returns the root name, fingerprint hash, compact signature, and the merged skeleton tree. Provide the document via path or inline content, not both.",
	}, handleExtract)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint",
		Description: "Lint a TEI XML document against encoding-practice rules: <pb> must carry @ed and @n, <head> belongs inside <div>, the root element should be a TEI element. Malformed XML is reported as a lint error. Provide the document via path or inline content, not both.",
	}, handleLint)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
