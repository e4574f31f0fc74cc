package dashboard

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrSupersededLoad is returned by a load that a newer load of the same page
// replaced. Its result is discarded.
var ErrSupersededLoad = errors.New("page load superseded by a newer one")

// LoadState is where a page is in its load cycle
type LoadState string

const (
	StateIdle    LoadState = "idle"
	StateLoading LoadState = "loading"
	StateLoaded  LoadState = "loaded"
	StateFailed  LoadState = "failed"
)

// FetchAll runs the fetches concurrently and waits for all of them. The
// first failure cancels the others and fails the whole batch.
func FetchAll(ctx context.Context, fetches ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		g.Go(func() error {
			return fetch(gctx)
		})
	}
	return g.Wait()
}

// View is a snapshot of a page
type View[T any] struct {
	State LoadState `json:"state"`
	// Error is the message of the failed load when State is failed
	Error string `json:"error,omitempty"`
	Seq   uint64 `json:"seq"`
	Data  T      `json:"data"`
}

// Page keeps the latest successful or failed load of one screen. Each load
// gets a sequence number and cancels the one still in flight, so a slow
// older response can never overwrite a newer one.
type Page[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	view   View[T]
}

// Load runs fetch and publishes its result unless another Load started in
// the meantime, in which case it returns ErrSupersededLoad.
func (p *Page[T]) Load(ctx context.Context, fetch func(ctx context.Context) (T, error)) (View[T], error) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.seq++
	seq := p.seq
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.view.State = StateLoading
	p.view.Seq = seq
	p.mu.Unlock()

	data, err := fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	cancel()

	if seq != p.seq {
		return p.view, ErrSupersededLoad
	}
	p.cancel = nil

	if err != nil {
		p.view = View[T]{State: StateFailed, Error: err.Error(), Seq: seq}
		return p.view, err
	}
	p.view = View[T]{State: StateLoaded, Seq: seq, Data: data}
	return p.view, nil
}

// View returns the current snapshot
func (p *Page[T]) View() View[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	view := p.view
	if view.State == "" {
		view.State = StateIdle
	}
	return view
}
