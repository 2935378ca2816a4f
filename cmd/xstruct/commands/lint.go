package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/telzey/xstruct/linter"
)

// lintFlags contains flags for the lint command.
type lintFlags struct {
	jsonOut bool
}

func setupLintFlags() (*flag.FlagSet, *lintFlags) {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	flags := &lintFlags{}

	fs.BoolVar(&flags.jsonOut, "json", false, "output reports as JSON")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: xstruct lint [flags] <file...>\n\n")
		Writef(output, "Lint TEI XML documents against encoding-practice rules.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  xstruct lint document.xml\n")
		Writef(output, "  xstruct lint --json corpus/*.xml\n")
	}

	return fs, flags
}

// fileReport pairs a lint report with the file it covers, for JSON output.
type fileReport struct {
	File   string         `json:"file"`
	Report *linter.Report `json:"report"`
}

// HandleLint runs the lint command.
func HandleLint(args []string) error {
	fs, flags := setupLintFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("lint command requires at least one file")
	}

	reports := make([]fileReport, 0, fs.NArg())
	for _, path := range fs.Args() {
		rep, err := linter.LintFile(path)
		if err != nil {
			return err
		}
		reports = append(reports, fileReport{File: path, Report: rep})
	}

	if flags.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, fr := range reports {
		Writef(os.Stdout, "%s:\n", fr.File)
		fr.Report.WriteText(os.Stdout)
	}
	return nil
}
