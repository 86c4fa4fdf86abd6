package extract

import (
	"context"
	"sync"

	"github.com/jackzampolin/dramatis/internal/providers"
)

// Runner enforces single-flight extraction per document: starting a new run
// for a document first cancels the prior run and awaits its termination, so
// two runs never interleave writes to the same accumulated maps.
type Runner struct {
	mu     sync.Mutex
	active map[string]*run
}

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner creates an empty runner.
func NewRunner() *Runner {
	return &Runner{active: make(map[string]*run)}
}

// Start runs the pipeline for the given document id. If a run is already
// active for that id it is cancelled and awaited before the new run begins.
func (r *Runner) Start(ctx context.Context, docID string, client providers.LLMClient, fullText string, opts Options) (*Result, error) {
	r.mu.Lock()
	// Another Start racing for the same document may have registered a fresh
	// run while this one was waiting, so re-check until the slot is free.
	for {
		prev, ok := r.active[docID]
		if !ok {
			break
		}
		prev.cancel()
		r.mu.Unlock()
		<-prev.done
		r.mu.Lock()
	}

	runCtx, cancel := context.WithCancel(ctx)
	cur := &run{cancel: cancel, done: make(chan struct{})}
	r.active[docID] = cur
	r.mu.Unlock()

	defer func() {
		cancel()
		close(cur.done)
		r.mu.Lock()
		if r.active[docID] == cur {
			delete(r.active, docID)
		}
		r.mu.Unlock()
	}()

	return Run(runCtx, client, fullText, opts)
}

// Cancel requests cancellation of the active run for a document, if any.
// It does not wait for the run to terminate.
func (r *Runner) Cancel(docID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.active[docID]; ok {
		cur.cancel()
	}
}

// Active reports whether a run is in flight for the document.
func (r *Runner) Active(docID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[docID]
	return ok
}
