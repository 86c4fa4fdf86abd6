package extract

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackzampolin/dramatis/internal/providers"
)

// overlapClient records the highest number of Chat calls it ever had in
// flight at once.
type overlapClient struct {
	latency  time.Duration
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (c *overlapClient) Name() string { return "overlap" }

func (c *overlapClient) Chat(ctx context.Context, req *providers.ChatRequest) (*providers.ChatResult, error) {
	n := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)
	for {
		seen := c.maxSeen.Load()
		if n <= seen || c.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	select {
	case <-ctx.Done():
		return nil, &providers.CallError{Kind: providers.KindCancelled, Message: ctx.Err().Error()}
	case <-time.After(c.latency):
	}
	return &providers.ChatResult{
		Content:       `{"characters": [], "scenes": []}`,
		ExecutionTime: c.latency,
	}, nil
}

func TestRunner(t *testing.T) {
	t.Run("second start for a document cancels the first run", func(t *testing.T) {
		r := NewRunner()
		client := &providers.MockClient{
			Latency:      50 * time.Millisecond,
			ResponseJSON: []byte(`{"characters": [], "scenes": []}`),
		}

		opts := fastOpts()
		opts.MaxChunkChars = 2

		var wg sync.WaitGroup
		var firstResult *Result
		var firstErr error

		wg.Add(1)
		go func() {
			defer wg.Done()
			firstResult, firstErr = r.Start(context.Background(), "doc-1", client, "1234567890", opts)
		}()

		// Let the first run get into its first call before superseding it.
		for i := 0; i < 100 && client.Requests() == 0; i++ {
			time.Sleep(time.Millisecond)
		}

		second, err := r.Start(context.Background(), "doc-1", client, "12", opts)
		if err != nil {
			t.Fatalf("second run failed: %v", err)
		}
		if second.Cancelled {
			t.Error("second run should complete normally")
		}

		wg.Wait()
		if firstErr != nil {
			t.Fatalf("cancelled first run returned error: %v", firstErr)
		}
		if !firstResult.Cancelled {
			t.Error("first run not marked cancelled")
		}
		if firstResult.Completed >= firstResult.Segments {
			t.Errorf("first run completed %d of %d segments despite cancellation",
				firstResult.Completed, firstResult.Segments)
		}
	})

	t.Run("racing starts for one document never overlap", func(t *testing.T) {
		r := NewRunner()
		client := &overlapClient{latency: 30 * time.Millisecond}

		opts := fastOpts()
		opts.MaxChunkChars = 2

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Start(context.Background(), "doc-race", client, "1234567890", opts); err != nil {
				t.Errorf("first run returned error: %v", err)
			}
		}()

		for i := 0; i < 100 && !r.Active("doc-race"); i++ {
			time.Sleep(time.Millisecond)
		}

		// Two superseding starts arrive while the first run is mid-call;
		// both wait out the prior run, but only one may hold the slot at
		// a time.
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := r.Start(context.Background(), "doc-race", client, "1234", opts); err != nil {
					t.Errorf("superseding run returned error: %v", err)
				}
			}()
		}
		wg.Wait()

		if seen := client.maxSeen.Load(); seen > 1 {
			t.Errorf("%d calls in flight concurrently for one document", seen)
		}
	})

	t.Run("cancel stops an active run", func(t *testing.T) {
		r := NewRunner()
		client := &providers.MockClient{
			Latency:      20 * time.Millisecond,
			ResponseJSON: []byte(`{"characters": [], "scenes": []}`),
		}

		opts := fastOpts()
		opts.MaxChunkChars = 2

		done := make(chan *Result, 1)
		go func() {
			result, err := r.Start(context.Background(), "doc-2", client, "1234567890", opts)
			if err != nil {
				t.Errorf("run returned error: %v", err)
			}
			done <- result
		}()

		for i := 0; i < 100 && !r.Active("doc-2"); i++ {
			time.Sleep(time.Millisecond)
		}
		r.Cancel("doc-2")

		select {
		case result := <-done:
			if !result.Cancelled {
				t.Error("run not marked cancelled")
			}
		case <-time.After(5 * time.Second):
			t.Fatal("run did not terminate after cancel")
		}

		if r.Active("doc-2") {
			t.Error("document still active after run ended")
		}
	})

	t.Run("independent documents do not interfere", func(t *testing.T) {
		r := NewRunner()
		client := &providers.MockClient{ResponseJSON: []byte(`{"characters": [], "scenes": []}`)}

		opts := fastOpts()
		a, errA := r.Start(context.Background(), "doc-a", client, "1234", opts)
		b, errB := r.Start(context.Background(), "doc-b", client, "1234", opts)
		if errA != nil || errB != nil {
			t.Fatalf("runs failed: %v, %v", errA, errB)
		}
		if a.Cancelled || b.Cancelled {
			t.Error("neither run should be cancelled")
		}
	})
}
