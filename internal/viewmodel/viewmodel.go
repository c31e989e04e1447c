// Package viewmodel instantiates query.Resource for every content screen. Each
// constructor binds the matching service call and the empty default; callers Mount
// the returned resource with their params.
package viewmodel

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/query"
)

// ChildParams are the params of a by-parent list.
type ChildParams struct {
	ParentID string
	Query    domain.ListQuery
}

// NewChildParams is shorthand for the first page of parentID's children.
func NewChildParams(parentID string, pageSize int) ChildParams {
	return ChildParams{ParentID: parentID, Query: domain.NewListQuery(1, pageSize, "")}
}

// ApplyChildSearch sets the search term and returns to the first page.
func ApplyChildSearch(p ChildParams, term string) ChildParams {
	p.Query = query.ApplySearch(p.Query, term)
	return p
}

// ListSearch binds a debounced search box to a list resource.
func ListSearch[T any](r *query.Resource[domain.ListQuery, []T], delay time.Duration, opts ...query.DebounceOption) *query.Search[domain.ListQuery, []T] {
	return query.NewSearch(r, delay, query.ApplySearch, opts...)
}

// ChildSearch binds a debounced search box to a by-parent resource.
func ChildSearch[T any](r *query.Resource[ChildParams, []T], delay time.Duration, opts ...query.DebounceOption) *query.Search[ChildParams, []T] {
	return query.NewSearch(r, delay, ApplyChildSearch, opts...)
}

func emptyList[T any]() query.Result[[]T] {
	return query.Result[[]T]{Data: []T{}}
}

func list[T any](fetch func(context.Context, domain.ListQuery) (domain.Page[T], error), opts []query.Option[[]T]) *query.Resource[domain.ListQuery, []T] {
	all := append([]query.Option[[]T]{query.WithEmpty(emptyList[T]())}, opts...)
	return query.NewResource(func(ctx context.Context, q domain.ListQuery) (query.Result[[]T], error) {
		page, err := fetch(ctx, q)
		if err != nil {
			return query.Result[[]T]{}, err
		}
		return query.PageResult(page), nil
	}, all...)
}

func children[T any](fetch func(context.Context, string, domain.ListQuery) (domain.Page[T], error), opts []query.Option[[]T]) *query.Resource[ChildParams, []T] {
	all := append([]query.Option[[]T]{query.WithEmpty(emptyList[T]())}, opts...)
	return query.NewResource(func(ctx context.Context, p ChildParams) (query.Result[[]T], error) {
		page, err := fetch(ctx, p.ParentID, p.Query)
		if err != nil {
			return query.Result[[]T]{}, err
		}
		return query.PageResult(page), nil
	}, all...)
}

func detail[T any](fetch func(context.Context, string) (*T, error), opts []query.Option[*T]) *query.Resource[string, *T] {
	return query.NewResource(func(ctx context.Context, key string) (query.Result[*T], error) {
		item, err := fetch(ctx, strings.TrimSpace(key))
		if err != nil {
			return query.Result[*T]{}, err
		}
		return query.Result[*T]{Data: item}, nil
	}, opts...)
}
