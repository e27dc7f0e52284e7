package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"realty_listings/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	mu        sync.Mutex
	props     map[string]domain.Property
	finds     int
	lastQuery domain.Query
	lastLimit int
	findErr   error
}

func newFakeRepo(ps ...domain.Property) *fakeRepo {
	r := &fakeRepo{props: map[string]domain.Property{}}
	for _, p := range ps {
		r.props[p.ID] = p
	}
	return r
}

func (f *fakeRepo) Insert(ctx context.Context, p domain.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.props[p.ID] = p
	return nil
}

func (f *fakeRepo) Replace(ctx context.Context, p domain.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.props[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.props[p.ID] = p
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.props[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, nil
}

// Find ignores the query and returns every record; tests assert on lastQuery instead.
func (f *fakeRepo) Find(ctx context.Context, q domain.Query, limit int) ([]domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	f.lastQuery, f.lastLimit = q, limit
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []domain.Property
	for _, p := range f.props {
		out = append(out, p)
	}
	return out, nil
}

// fakeCache stores JSON so Get behaves like the Redis adapter for any dst type.
type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

func (c *fakeCache) Incr(ctx context.Context, key string) (int64, error) {
	var n int64
	if b, ok := c.store[key]; ok {
		if err := json.Unmarshal(b, &n); err != nil {
			return 0, errors.New("not an integer")
		}
	}
	n++
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	c.store[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

func ptr[T any](v T) *T { return &v }
