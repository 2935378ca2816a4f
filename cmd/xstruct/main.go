package main

import (
	"fmt"
	"os"

	"github.com/telzey/xstruct"
	"github.com/telzey/xstruct/cmd/xstruct/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("xstruct v%s\n", xstruct.Version())
	case "help", "-h", "--help":
		printUsage()
	case "scan":
		if err := commands.HandleScan(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "lint":
		if err := commands.HandleLint(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("xstruct v%s - XML structural skeleton grouping\n\n", xstruct.Version())
	fmt.Println("Usage:")
	fmt.Println("  xstruct <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan     Scan a directory and group XML files by structural skeleton")
	fmt.Println("  lint     Lint TEI XML documents against encoding-practice rules")
	fmt.Println("  mcp      Run as an MCP server over stdio")
	fmt.Println("  version  Show version information")
	fmt.Println("  help     Show this help message")
	fmt.Println()
	fmt.Println("Use 'xstruct <command> -h' for command-specific flags.")
}
