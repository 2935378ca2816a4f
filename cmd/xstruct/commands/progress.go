package commands

import (
	"fmt"
	"io"
	"sync"
)

// terminalProgress renders a single-line processed/total counter to a
// terminal, overwriting the line on each update.
type terminalProgress struct {
	mu    sync.Mutex
	w     io.Writer
	total int
	done  int
}

func newTerminalProgress(w io.Writer) *terminalProgress {
	return &terminalProgress{w: w}
}

// Start implements grouper.Progress.
func (p *terminalProgress) Start(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = total
	p.done = 0
	fmt.Fprintf(p.w, "\rProcessing 0/%d files", total)
}

// Increment implements grouper.Progress.
func (p *terminalProgress) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	fmt.Fprintf(p.w, "\rProcessing %d/%d files", p.done, p.total)
}

// Done implements grouper.Progress.
func (p *terminalProgress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w)
}
