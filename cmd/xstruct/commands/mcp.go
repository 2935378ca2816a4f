package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/telzey/xstruct/internal/mcpserver"
)

// HandleMCP runs the MCP server over stdio until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: xstruct mcp\n\n")
		Writef(output, "Run xstruct as an MCP server over stdio, exposing the scan,\n")
		Writef(output, "extract, and lint tools. Configure via XSTRUCT_* env vars.\n")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
