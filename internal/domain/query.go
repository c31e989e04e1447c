package domain

import (
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultPageSize applies when a caller leaves PageSize unset.
	DefaultPageSize = 10
	// MaxPageSize bounds repository reads.
	MaxPageSize = 100
)

// ListQuery carries the parameters of every list and by-parent read.
type ListQuery struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Search   string `json:"search,omitempty"`
}

// NewListQuery is shorthand for the common page/pageSize/search triple.
func NewListQuery(page, pageSize int, search string) ListQuery {
	return ListQuery{Page: page, PageSize: pageSize, Search: search}
}

// Validate rejects non-positive page and pageSize values.
func (q ListQuery) Validate() error {
	err := validation.ValidateStruct(&q,
		validation.Field(&q.Page, validation.Required.Error("page must be at least 1"), validation.Min(1)),
		validation.Field(&q.PageSize, validation.Required.Error("pageSize must be at least 1"), validation.Min(1)),
	)
	if err != nil {
		return InvalidParameter(err)
	}
	return nil
}

// Clamp returns a copy bounded to [1, maxPageSize] with defaults applied.
func (q ListQuery) Clamp(defaultPageSize, maxPageSize int) ListQuery {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	if maxPageSize <= 0 {
		maxPageSize = MaxPageSize
	}
	out := q
	if out.Page < 1 {
		out.Page = 1
	}
	if out.PageSize < 1 {
		out.PageSize = defaultPageSize
	}
	if out.PageSize > maxPageSize {
		out.PageSize = maxPageSize
	}
	out.Search = strings.TrimSpace(out.Search)
	return out
}

// Offset is the zero-based index of the first item of the page. Pages past the
// addressable range saturate at math.MaxInt so stores return an empty page.
func (q ListQuery) Offset() int {
	if q.Page < 1 || q.PageSize < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return (q.Page - 1) * q.PageSize
}

// Needle returns the lower-cased trimmed search term.
func (q ListQuery) Needle() string {
	return strings.ToLower(strings.TrimSpace(q.Search))
}
