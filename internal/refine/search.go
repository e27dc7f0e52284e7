package refine

import (
	"context"
	"errors"
	"net/url"
	"sync"
)

// ErrSuperseded is returned by Search when a newer search started before this one finished.
var ErrSuperseded = errors.New("refine: search superseded by a newer one")

type Fetcher interface {
	ListProperties(ctx context.Context, params url.Values) ([]map[string]any, error)
}

// Searcher runs one search at a time. Starting a search cancels the one in flight, and a
// result that arrives after a newer search started is discarded.
type Searcher struct {
	f Fetcher

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func NewSearcher(f Fetcher) *Searcher { return &Searcher{f: f} }

// Search fetches with f's parameters and refines the result locally.
func (s *Searcher) Search(ctx context.Context, f Filters) ([]Item, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.cancel = cancel
	s.mu.Unlock()

	items, err := s.f.ListProperties(ctx, f.Params())

	s.mu.Lock()
	stale := gen != s.gen
	s.mu.Unlock()
	if stale {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return Apply(items, f), nil
}
