package query

import (
	"sync"
	"time"
)

// DefaultDebounce is the delay used when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// DebounceOption configures a Debouncer.
type DebounceOption func(*debounceOptions)

type debounceOptions struct {
	clock Clock
}

// WithDebounceClock replaces the system clock.
func WithDebounceClock(clock Clock) DebounceOption {
	return func(o *debounceOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// Debouncer keeps an immediate value that changes on every Set and a committed value
// that only follows once no Set happened for the configured delay.
type Debouncer[V any] struct {
	mu        sync.Mutex
	clock     Clock
	delay     time.Duration
	value     V
	committed V
	timer     Timer
	seq       uint64
	stopped   bool
	onCommit  func(V)
}

// NewDebouncer constructs a Debouncer. A non-positive delay falls back to
// DefaultDebounce. onCommit may be nil.
func NewDebouncer[V any](initial V, delay time.Duration, onCommit func(V), opts ...DebounceOption) *Debouncer[V] {
	options := debounceOptions{clock: SystemClock()}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer[V]{
		clock:     options.clock,
		delay:     delay,
		value:     initial,
		committed: initial,
		onCommit:  onCommit,
	}
}

// Set records v as the immediate value and restarts the timer.
func (d *Debouncer[V]) Set(v V) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.value = v
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(seq) })
}

// Value returns the immediate value.
func (d *Debouncer[V]) Value() V {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Committed returns the last value that survived the delay.
func (d *Debouncer[V]) Committed() V {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.committed
}

// Flush commits the immediate value now when a timer is pending.
func (d *Debouncer[V]) Flush() {
	d.mu.Lock()
	if d.timer == nil || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	seq := d.seq
	d.mu.Unlock()
	d.fire(seq)
}

// Stop cancels the pending timer. Later calls to Set are ignored.
func (d *Debouncer[V]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[V]) fire(seq uint64) {
	d.mu.Lock()
	if d.stopped || seq != d.seq || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.committed = d.value
	value, fn := d.value, d.onCommit
	d.mu.Unlock()

	if fn != nil {
		fn(value)
	}
}
