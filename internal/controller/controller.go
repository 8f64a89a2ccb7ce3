// Package controller keeps the query state of one list screen: the current
// spec, the last published page and the loading/error status of the fetch
// behind it.
package controller

import (
	"context"
	"sync"
	"time"

	"dentalclinic/internal/query"
)

// Status is the controller's load state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Source supplies the full collection a screen queries.
type Source[T any] interface {
	FetchAll(ctx context.Context) ([]T, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func(ctx context.Context) ([]T, error)

func (f SourceFunc[T]) FetchAll(ctx context.Context) ([]T, error) { return f(ctx) }

// Snapshot is a consistent copy of the controller state.
type Snapshot[T any] struct {
	Status Status        `json:"status"`
	Spec   query.Spec    `json:"spec"`
	Page   query.Page[T] `json:"page"`
	Error  string        `json:"error,omitempty"`
	Seq    uint64        `json:"seq"`
}

// Hooks observe request outcomes. All fields are optional.
type Hooks struct {
	// OnResult runs when the latest request settles.
	OnResult func(seq uint64, took time.Duration, err error)
	// OnStale runs when a superseded request settles and its result is dropped.
	OnStale func(seq uint64)
}

// Controller owns a screen's Spec and Page. Every spec change starts a new
// request tagged with an increasing sequence number; only the latest request
// may publish, and starting one cancels the context of the one before it.
type Controller[T any] struct {
	engine *query.Engine[T]
	source Source[T]
	hooks  Hooks

	mu     sync.Mutex
	spec   query.Spec
	status Status
	page   query.Page[T]
	err    error
	seq    uint64
	cancel context.CancelFunc
	subs   []func(Snapshot[T])
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithHooks installs request observers.
func WithHooks[T any](h Hooks) Option[T] {
	return func(c *Controller[T]) { c.hooks = h }
}

// New returns an idle controller. Nothing is fetched until Load or a Set* call.
func New[T any](engine *query.Engine[T], source Source[T], spec query.Spec, opts ...Option[T]) *Controller[T] {
	spec = spec.Normalize()
	c := &Controller[T]{
		engine: engine,
		source: source,
		spec:   spec,
		status: StatusIdle,
		page: query.Page[T]{
			Data: []T{},
			Meta: query.Meta{CurrentPage: spec.Page, PerPage: spec.PageSize, LastPage: 1},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn to receive every published snapshot. Callbacks run
// on the goroutine that caused the transition, outside the controller lock.
func (c *Controller[T]) Subscribe(fn func(Snapshot[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Snapshot returns the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Spec returns the current spec.
func (c *Controller[T]) Spec() query.Spec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spec
}

// Err returns the error of the last settled request, if it failed.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Load fetches with the current spec (screen mount).
func (c *Controller[T]) Load(ctx context.Context) error {
	return c.request(ctx, func(s query.Spec) query.Spec { return s })
}

// Retry re-runs the current spec, typically after an error.
func (c *Controller[T]) Retry(ctx context.Context) error {
	return c.Load(ctx)
}

// SetSearch changes the search term and returns to page 1.
func (c *Controller[T]) SetSearch(ctx context.Context, term string) error {
	return c.request(ctx, func(s query.Spec) query.Spec { return s.WithSearch(term) })
}

// SetFilter sets or clears one filter and returns to page 1.
func (c *Controller[T]) SetFilter(ctx context.Context, field, value string) error {
	return c.request(ctx, func(s query.Spec) query.Spec { return s.WithFilter(field, value) })
}

// SetSort toggles the direction when key is already selected, otherwise sorts
// ascending by key.
func (c *Controller[T]) SetSort(ctx context.Context, key string) error {
	return c.request(ctx, func(s query.Spec) query.Spec { return s.WithSort(key) })
}

// SetPage moves to page n; the applied page is clamped to the result.
func (c *Controller[T]) SetPage(ctx context.Context, n int) error {
	return c.request(ctx, func(s query.Spec) query.Spec { return s.WithPage(n) })
}

// SetPageSize changes the page size and returns to page 1.
func (c *Controller[T]) SetPageSize(ctx context.Context, n int) error {
	return c.request(ctx, func(s query.Spec) query.Spec { return s.WithPageSize(n) })
}

// Close cancels the in-flight request, if any.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// request applies change, fetches and publishes. It blocks until its own
// fetch returns. A request overtaken by a newer one returns nil and leaves
// the state alone.
func (c *Controller[T]) request(ctx context.Context, change func(query.Spec) query.Spec) error {
	c.mu.Lock()
	spec := change(c.spec).Normalize()
	c.spec = spec
	c.seq++
	seq := c.seq
	if c.cancel != nil {
		c.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.cancel = cancel
	c.status = StatusLoading
	c.err = nil
	loading := c.snapshotLocked()
	subs := c.subs
	c.mu.Unlock()

	notify(subs, loading)

	start := time.Now()
	records, err := c.source.FetchAll(reqCtx)
	var (
		page    query.Page[T]
		applied = spec
	)
	if err == nil {
		page, applied = c.engine.QueryClamped(records, spec)
	}

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		if c.hooks.OnStale != nil {
			c.hooks.OnStale(seq)
		}
		return nil
	}
	c.cancel = nil
	if err != nil {
		c.status = StatusError
		c.err = err
	} else {
		c.status = StatusReady
		c.page = page
		c.spec = applied
	}
	settled := c.snapshotLocked()
	subs = c.subs
	c.mu.Unlock()

	notify(subs, settled)
	if c.hooks.OnResult != nil {
		c.hooks.OnResult(seq, time.Since(start), err)
	}
	return err
}

func (c *Controller[T]) snapshotLocked() Snapshot[T] {
	snap := Snapshot[T]{
		Status: c.status,
		Spec:   c.spec,
		Page:   c.page,
		Seq:    c.seq,
	}
	if c.err != nil {
		snap.Error = c.err.Error()
	}
	return snap
}

func notify[T any](subs []func(Snapshot[T]), snap Snapshot[T]) {
	for _, fn := range subs {
		fn(snap)
	}
}
