package grouper

// Progress receives completion notifications while a batch is processed.
// It is an injected collaborator: the core never renders progress itself.
// Implementations must be safe for concurrent Increment calls.
type Progress interface {
	// Start is called once before processing with the total document count.
	Start(total int)

	// Increment is called once per document after it finishes,
	// whether it succeeded or failed.
	Increment()

	// Done is called once after the batch completes.
	Done()
}

// NopProgress is a no-op progress sink.
// It is the default sink used when no progress sink is configured.
type NopProgress struct{}

// Start implements Progress.
func (NopProgress) Start(_ int) {}

// Increment implements Progress.
func (NopProgress) Increment() {}

// Done implements Progress.
func (NopProgress) Done() {}

// Ensure NopProgress implements Progress at compile time.
var _ Progress = NopProgress{}
