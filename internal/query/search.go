package query

import (
	"strings"
	"time"

	"github.com/goliatone/go-portal/internal/domain"
)

// Search binds a debounced search term to a Resource. Every committed term is applied
// to the resource params through apply, which is expected to reset the page to 1.
type Search[P, T any] struct {
	resource  *Resource[P, T]
	debouncer *Debouncer[string]
}

// NewSearch wires resource to a Debouncer with delay.
func NewSearch[P, T any](resource *Resource[P, T], delay time.Duration, apply func(P, string) P, opts ...DebounceOption) *Search[P, T] {
	s := &Search[P, T]{resource: resource}
	s.debouncer = NewDebouncer("", delay, func(term string) {
		resource.UpdateParams(func(p P) P { return apply(p, term) })
	}, opts...)
	return s
}

// SetTerm records a keystroke.
func (s *Search[P, T]) SetTerm(term string) {
	s.debouncer.Set(term)
}

// Term returns the immediate, not yet committed, term.
func (s *Search[P, T]) Term() string {
	return s.debouncer.Value()
}

func (s *Search[P, T]) Committed() string {
	return s.debouncer.Committed()
}

func (s *Search[P, T]) Resource() *Resource[P, T] {
	return s.resource
}

// Close stops the debouncer and closes the resource.
func (s *Search[P, T]) Close() {
	s.debouncer.Stop()
	s.resource.Close()
}

// ApplySearch sets the search term of q and returns to the first page.
func ApplySearch(q domain.ListQuery, term string) domain.ListQuery {
	q.Search = strings.TrimSpace(term)
	q.Page = 1
	return q
}
