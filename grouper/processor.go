package grouper

import (
	"context"
	"os"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/telzey/xstruct/shape"
	"github.com/telzey/xstruct/skeleton"
	"github.com/telzey/xstruct/xserrors"
)

// Document is one in-memory document to process.
type Document struct {
	// Path is the document identifier used in groups and logs.
	Path string
	// Content is the raw XML text.
	Content []byte
}

// Processor runs the extract-reduce-group pipeline over a batch of documents
// with a bounded worker pool, one task per document. Extraction and reduction
// run independently per task; the grouper table is the only shared state.
//
// Per-document failures (malformed XML, unreadable files) are logged and
// counted, never aborting the rest of the batch.
type Processor struct {
	// Workers is the maximum number of concurrent tasks (0 = GOMAXPROCS).
	Workers int
	// Extractor parses documents. If nil, shape.New() defaults are used.
	Extractor *shape.Extractor
	// Logger is the structured logger for per-document diagnostics.
	// If nil, logging is disabled.
	Logger Logger
	// Progress receives per-document completion notifications.
	// If nil, progress reporting is disabled.
	Progress Progress
}

// NewProcessor creates a Processor with default settings.
func NewProcessor() *Processor {
	return &Processor{}
}

// Process groups the given in-memory documents by skeleton.
func (p *Processor) Process(ctx context.Context, docs []Document) Result {
	return p.run(ctx, len(docs), func(i int) (string, []byte, error) {
		return docs[i].Path, docs[i].Content, nil
	})
}

// ProcessFiles groups the documents at the given paths by skeleton, reading
// each file inside its worker task. Unreadable files follow the same
// skip-and-count policy as malformed ones.
func (p *Processor) ProcessFiles(ctx context.Context, paths []string) Result {
	return p.run(ctx, len(paths), func(i int) (string, []byte, error) {
		content, err := os.ReadFile(paths[i])
		if err != nil {
			return paths[i], nil, xserrors.NewIOError(paths[i], "read", err)
		}
		return paths[i], content, nil
	})
}

func (p *Processor) run(ctx context.Context, total int, load func(int) (string, []byte, error)) Result {
	logger := p.log()
	progress := p.progress()
	extractor := p.extractor()
	workers := p.workers()

	logger.Info("processing documents", "count", total, "workers", workers)
	progress.Start(total)

	groups := NewGrouper()
	var failed atomic.Int64

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range total {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer progress.Increment()

			path, content, err := load(i)
			if err != nil {
				failed.Add(1)
				logger.Error("failed to read document", "path", path, "error", err)
				return nil
			}
			node, err := extractor.ExtractNamed(content, path)
			if err != nil {
				failed.Add(1)
				logger.Error("failed to parse document", "path", path, "error", err)
				return nil
			}
			skel := skeleton.Reduce(node)
			groups.Offer(path, skel, node)
			logger.Debug("processed document", "path", path, "hash", skel.Hash)
			return nil
		})
	}
	_ = eg.Wait()
	progress.Done()

	result := groups.Snapshot()
	result.FailedFiles = int(failed.Load())
	result.TotalFiles += result.FailedFiles

	logger.Info("processing complete",
		"total", result.TotalFiles,
		"unique", result.UniqueStructures,
		"failed", result.FailedFiles)
	return result
}

func (p *Processor) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Processor) progress() Progress {
	if p.Progress != nil {
		return p.Progress
	}
	return NopProgress{}
}

func (p *Processor) extractor() *shape.Extractor {
	if p.Extractor != nil {
		return p.Extractor
	}
	return shape.New()
}

func (p *Processor) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}
