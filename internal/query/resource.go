package query

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/pkg/interfaces"
)

// Result is what a fetch function produces. Single-entity queries leave Pagination
// zero.
type Result[T any] struct {
	Data       T
	Pagination domain.Pagination
}

// PageResult adapts a list envelope.
func PageResult[T any](page domain.Page[T]) Result[[]T] {
	return Result[[]T]{Data: page.Data, Pagination: page.Pagination}
}

// FetchFunc loads data for params. It must honour ctx cancellation.
type FetchFunc[P, T any] func(ctx context.Context, params P) (Result[T], error)

// State is the observable snapshot of a Resource.
type State[T any] struct {
	Data       T                 `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
	Loading    bool              `json:"loading"`
	Error      string            `json:"error,omitempty"`
}

// Option configures a Resource.
type Option[T any] func(*resourceOptions[T])

type resourceOptions[T any] struct {
	empty    Result[T]
	messages func(error) string
	locale   domain.Locale
	logger   interfaces.Logger
	base     context.Context
}

// WithEmpty sets the value shown before the first response and after errors.
func WithEmpty[T any](empty Result[T]) Option[T] {
	return func(o *resourceOptions[T]) {
		o.empty = empty
	}
}

// WithMessages replaces the error to display string conversion.
func WithMessages[T any](fn func(error) string) Option[T] {
	return func(o *resourceOptions[T]) {
		if fn != nil {
			o.messages = fn
		}
	}
}

// WithLocale selects the language of the default display messages.
func WithLocale[T any](locale domain.Locale) Option[T] {
	return func(o *resourceOptions[T]) {
		if locale.Valid() {
			o.locale = locale
		}
	}
}

func WithLogger[T any](logger interfaces.Logger) Option[T] {
	return func(o *resourceOptions[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithContext sets the parent context of every fetch. Cancelling it cancels
// in-flight work.
func WithContext[T any](ctx context.Context) Option[T] {
	return func(o *resourceOptions[T]) {
		if ctx != nil {
			o.base = ctx
		}
	}
}

// Resource is a paginated-resource query. The zero value is not usable; construct
// one with NewResource and start it with Mount.
//
// Subscribers see every state change in the order the changes were made. Callbacks
// run on a goroutine that produced a change and may call back into the Resource.
type Resource[P, T any] struct {
	fetch FetchFunc[P, T]
	opts  resourceOptions[T]

	mu          sync.Mutex
	params      P
	mounted     bool
	closed      bool
	state       State[T]
	generation  uint64
	cancel      context.CancelFunc
	subscribers map[int]func(State[T])
	nextSub     int
	pending     []delivery[T]
	delivering  bool
	quiescent   chan struct{}
}

type delivery[T any] struct {
	state State[T]
	subs  []func(State[T])
}

// NewResource constructs an idle Resource.
func NewResource[P, T any](fetch FetchFunc[P, T], opts ...Option[T]) *Resource[P, T] {
	options := resourceOptions[T]{
		locale: domain.DefaultLocale,
		logger: logging.NoOp(),
		base:   context.Background(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if options.messages == nil {
		locale := options.locale
		options.messages = func(err error) string {
			return domain.DisplayMessage(err, locale)
		}
	}
	r := &Resource[P, T]{
		fetch:       fetch,
		opts:        options,
		subscribers: map[int]func(State[T]){},
		quiescent:   make(chan struct{}),
	}
	r.state = r.emptyState(false)
	return r
}

// Mount stores params and starts the first fetch with an empty, loading state.
func (r *Resource[P, T]) Mount(params P) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.mounted = true
	r.params = params
	r.state = r.emptyState(true)
	r.startLocked()
}

// SetParams refetches when params differ from the current ones. Calling it on an
// unmounted Resource mounts it.
func (r *Resource[P, T]) SetParams(params P) {
	r.UpdateParams(func(P) P { return params })
}

// UpdateParams derives the next params from the current ones while holding the
// Resource lock, then behaves like SetParams.
func (r *Resource[P, T]) UpdateParams(next func(P) P) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	params := next(r.params)
	if !r.mounted {
		r.mounted = true
		r.params = params
		r.state = r.emptyState(true)
		r.startLocked()
		return
	}
	if reflect.DeepEqual(r.params, params) {
		r.mu.Unlock()
		return
	}
	r.params = params
	r.state.Loading = true
	r.state.Error = ""
	r.startLocked()
}

// Refetch repeats the fetch with the current params.
func (r *Resource[P, T]) Refetch() {
	r.mu.Lock()
	if r.closed || !r.mounted {
		r.mu.Unlock()
		return
	}
	r.state.Loading = true
	r.state.Error = ""
	r.startLocked()
}

// Params returns the current params.
func (r *Resource[P, T]) Params() P {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.params
}

// State returns the current snapshot.
func (r *Resource[P, T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Subscribe registers fn for every state change and returns the function that removes
// it.
func (r *Resource[P, T]) Subscribe(fn func(State[T])) func() {
	if fn == nil {
		return func() {}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextSub
	r.nextSub++
	r.subscribers[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subscribers, id)
	}
}

// Wait blocks until the Resource is no longer loading and subscribers have been told
// so, or ctx ends.
func (r *Resource[P, T]) Wait(ctx context.Context) (State[T], error) {
	for {
		r.mu.Lock()
		if r.closed || (!r.state.Loading && !r.delivering && len(r.pending) == 0) {
			state := r.state
			r.mu.Unlock()
			return state, nil
		}
		quiescent := r.quiescent
		r.mu.Unlock()

		select {
		case <-quiescent:
		case <-ctx.Done():
			return r.State(), ctx.Err()
		}
	}
}

// Close cancels in-flight work and discards state. A closed Resource ignores further
// calls.
func (r *Resource[P, T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.generation++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.state = r.emptyState(false)
	r.subscribers = map[int]func(State[T]){}
	r.pending = nil
	r.broadcastLocked()
}

// startLocked begins a new generation, publishes the loading state and launches the
// fetch. It is entered with r.mu held and returns with it released.
func (r *Resource[P, T]) startLocked() {
	r.generation++
	gen := r.generation
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(r.opts.base)
	r.cancel = cancel
	params := r.params

	r.publishLocked()
	go r.run(ctx, gen, params)
	r.deliverAndUnlock()
}

func (r *Resource[P, T]) run(ctx context.Context, gen uint64, params P) {
	result, err := r.safeFetch(ctx, params)

	r.mu.Lock()
	if r.closed || gen != r.generation {
		r.mu.Unlock()
		r.opts.logger.Debug("query.response.discarded", "generation", gen)
		return
	}
	if err != nil {
		r.state = r.emptyState(false)
		r.state.Error = r.opts.messages(err)
		r.opts.logger.Warn("query.fetch.failed", "generation", gen, "error", err)
	} else {
		r.state = State[T]{Data: result.Data, Pagination: result.Pagination}
	}
	r.cancel()
	r.cancel = nil
	r.publishLocked()
	r.deliverAndUnlock()
}

func (r *Resource[P, T]) safeFetch(ctx context.Context, params P) (result Result[T], err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("query: fetch panicked: %v", p)
		}
	}()
	return r.fetch(ctx, params)
}

// publishLocked queues the current state for the current subscribers.
func (r *Resource[P, T]) publishLocked() {
	if len(r.subscribers) == 0 {
		return
	}
	subs := make([]func(State[T]), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		subs = append(subs, fn)
	}
	r.pending = append(r.pending, delivery[T]{state: r.state, subs: subs})
}

// deliverAndUnlock drains queued notifications in order. Only one goroutine drains at
// a time; a change made while another goroutine is draining is delivered by that
// goroutine. Entered with r.mu held, returns with it released.
func (r *Resource[P, T]) deliverAndUnlock() {
	if r.delivering {
		r.mu.Unlock()
		return
	}
	r.delivering = true
	for len(r.pending) > 0 {
		next := r.pending[0]
		r.pending = r.pending[1:]
		r.mu.Unlock()
		for _, fn := range next.subs {
			fn(next.state)
		}
		r.mu.Lock()
	}
	r.delivering = false
	r.broadcastLocked()
	r.mu.Unlock()
}

func (r *Resource[P, T]) broadcastLocked() {
	close(r.quiescent)
	r.quiescent = make(chan struct{})
}

func (r *Resource[P, T]) emptyState(loading bool) State[T] {
	return State[T]{
		Data:       r.opts.empty.Data,
		Pagination: r.opts.empty.Pagination,
		Loading:    loading,
	}
}
