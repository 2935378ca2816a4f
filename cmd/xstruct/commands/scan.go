package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/telzey/xstruct"
	"github.com/telzey/xstruct/grouper"
	"github.com/telzey/xstruct/internal/fileutil"
	"github.com/telzey/xstruct/report"
)

// scanFlags contains flags for the scan command.
type scanFlags struct {
	output     string
	configPath string
	threads    int
	maxDepth   int
	top        int
	noPretty   bool
	noPaths    bool
	noProgress bool
	logLevel   string
	verbose    bool
}

func setupScanFlags() (*flag.FlagSet, *scanFlags) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	flags := &scanFlags{}

	fs.StringVar(&flags.output, "output", "", "write the full JSON result to this file")
	fs.StringVar(&flags.output, "o", "", "shorthand for -output")
	fs.StringVar(&flags.configPath, "config", "", "load configuration from this YAML file")
	fs.IntVar(&flags.threads, "threads", -1, "worker count (0 = number of CPUs)")
	fs.IntVar(&flags.threads, "t", -1, "shorthand for -threads")
	fs.IntVar(&flags.maxDepth, "max-depth", -1, "directory traversal depth limit (0 = unlimited)")
	fs.IntVar(&flags.maxDepth, "d", -1, "shorthand for -max-depth")
	fs.IntVar(&flags.top, "top", 10, "number of groups shown in the summary")
	fs.BoolVar(&flags.noPretty, "no-pretty", false, "disable indented JSON output")
	fs.BoolVar(&flags.noPaths, "no-paths", false, "omit member file lists from JSON output")
	fs.BoolVar(&flags.noProgress, "no-progress", false, "disable the progress counter")
	fs.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&flags.logLevel, "l", "", "shorthand for -log-level")
	fs.BoolVar(&flags.verbose, "verbose", false, "shorthand for -log-level debug")
	fs.BoolVar(&flags.verbose, "v", false, "shorthand for -verbose")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: xstruct scan [flags] <directory>\n\n")
		Writef(output, "Scan a directory recursively and group XML files by structural skeleton.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  xstruct scan corpus/\n")
		Writef(output, "  xstruct scan -o groups.json -t 8 corpus/\n")
		Writef(output, "  xstruct scan --config xstruct.yaml --top 20 corpus/\n")
	}

	return fs, flags
}

// HandleScan runs the scan command.
func HandleScan(args []string) error {
	fs, flags := setupScanFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("scan command requires exactly one directory")
	}
	dir := fs.Arg(0)

	cfg, err := loadScanConfig(flags)
	if err != nil {
		return err
	}

	logger, logCloser, err := setupLogger(cfg.Logging)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer func() { _ = logCloser.Close() }()
	}

	if err := fileutil.ValidateDirectory(dir); err != nil {
		return err
	}
	files, err := fileutil.FindXMLFiles(dir, cfg.Processing.FileExtensions, cfg.Processing.MaxDepth, logger)
	if err != nil {
		return err
	}

	var progress grouper.Progress = grouper.NopProgress{}
	if !flags.noProgress {
		progress = newTerminalProgress(os.Stderr)
	}

	proc := &grouper.Processor{
		Workers:  cfg.Processing.NumThreads,
		Logger:   logger,
		Progress: progress,
	}
	result := proc.ProcessFiles(context.Background(), files)

	report.WriteSummary(os.Stdout, result, flags.top)

	if cfg.Output.File != "" {
		opts := report.JSONOptions{
			Pretty:       cfg.Output.Pretty,
			IncludePaths: cfg.Output.IncludePaths,
		}
		if err := report.WriteJSONFile(cfg.Output.File, result, opts); err != nil {
			return err
		}
		logger.Info("wrote JSON result", "path", cfg.Output.File)
	}
	return nil
}

// loadScanConfig builds the effective configuration: defaults, then the
// config file if given, then explicit command-line flags on top.
func loadScanConfig(flags *scanFlags) (*xstruct.Config, error) {
	cfg := xstruct.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := xstruct.LoadConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.threads >= 0 {
		cfg.Processing.NumThreads = flags.threads
	}
	if flags.maxDepth >= 0 {
		cfg.Processing.MaxDepth = flags.maxDepth
	}
	if flags.output != "" {
		cfg.Output.File = flags.output
	}
	if flags.noPretty {
		cfg.Output.Pretty = false
	}
	if flags.noPaths {
		cfg.Output.IncludePaths = false
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
