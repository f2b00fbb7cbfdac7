package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/straye-as/sales-dashboard/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Fetcher loads the full contents of a kind for filter
type Fetcher[T any] func(ctx context.Context, filter domain.DateRange) ([]T, error)

// Cache holds the last fetched slice of one kind. The slice is only ever
// replaced wholesale by Refresh; readers receive copies.
type Cache[T any] struct {
	kind   Kind
	fetch  Fetcher[T]
	logger *zap.Logger
	group  singleflight.Group

	mu          sync.Mutex
	items       []T
	filter      domain.DateRange
	requested   domain.DateRange // filter of the last Refresh call
	inflight    int              // Refresh calls waiting on a fetch
	loaded      bool
	generation  uint64 // bumped by Invalidate; part of the singleflight key
	dispatched  uint64 // sequence of the last fetch started
	applied     uint64 // sequence of the fetch whose result is cached
	subscribers []func([]T)
}

// NewCache creates an empty cache for kind
func NewCache[T any](kind Kind, fetch Fetcher[T], logger *zap.Logger) *Cache[T] {
	return &Cache[T]{
		kind:   kind,
		fetch:  fetch,
		logger: logger.With(zap.String("kind", string(kind))),
		items:  []T{},
	}
}

func (c *Cache[T]) Kind() Kind {
	return c.kind
}

// Get returns a copy of the cached slice
func (c *Cache[T]) Get() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.items)
}

// Loaded reports whether any fetch has been applied
func (c *Cache[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Filter returns the filter of the currently applied result
func (c *Cache[T]) Filter() domain.DateRange {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Requested returns the filter of the most recent Refresh call, which may
// still be in flight
func (c *Cache[T]) Requested() domain.DateRange {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requested
}

// Pending reports whether a Refresh call is waiting on a fetch
func (c *Cache[T]) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Subscribe registers fn to receive a copy of every applied replacement
func (c *Cache[T]) Subscribe(fn func([]T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Invalidate makes later Refresh calls start a new fetch instead of joining
// one dispatched before this call
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
}

// Refresh fetches the kind for filter and replaces the cache with the result.
// Calls with the same filter made while a fetch is in flight share that fetch.
// A result is applied only if no later-dispatched fetch has been applied
// already; a discarded result returns the newer cached slice instead.
// The fetch is detached from ctx cancellation.
func (c *Cache[T]) Refresh(ctx context.Context, filter domain.DateRange) ([]T, error) {
	c.mu.Lock()
	key := fmt.Sprintf("%d|%s", c.generation, filterKey(filter))
	c.requested = filter
	c.inflight++
	c.mu.Unlock()

	fetchCtx := context.WithoutCancel(ctx)
	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		return c.run(fetchCtx, filter)
	})

	c.mu.Lock()
	c.inflight--
	c.mu.Unlock()
	if shared {
		refreshShared.WithLabelValues(string(c.kind)).Inc()
	}
	if err != nil {
		return nil, err
	}
	return clone(v.([]T)), nil
}

func (c *Cache[T]) run(ctx context.Context, filter domain.DateRange) ([]T, error) {
	c.mu.Lock()
	c.dispatched++
	seq := c.dispatched
	c.mu.Unlock()

	items, err := c.fetch(ctx, filter)
	if err != nil {
		refreshTotal.WithLabelValues(string(c.kind), outcomeFailed).Inc()
		c.logger.Warn("refresh failed", zap.Uint64("seq", seq), zap.Error(err))
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	c.mu.Lock()
	if seq < c.applied {
		current := clone(c.items)
		c.mu.Unlock()
		refreshTotal.WithLabelValues(string(c.kind), outcomeDiscarded).Inc()
		c.logger.Debug("discarded stale refresh", zap.Uint64("seq", seq))
		return current, nil
	}
	c.items = items
	c.filter = filter
	c.loaded = true
	c.applied = seq
	subscribers := append([]func([]T){}, c.subscribers...)
	c.mu.Unlock()

	refreshTotal.WithLabelValues(string(c.kind), outcomeApplied).Inc()
	for _, fn := range subscribers {
		fn(clone(items))
	}
	return items, nil
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func filterKey(r domain.DateRange) string {
	start, end := "", ""
	if r.StartDate != nil {
		start = r.StartDate.String()
	}
	if r.EndDate != nil {
		end = r.EndDate.String()
	}
	return start + ".." + end
}
