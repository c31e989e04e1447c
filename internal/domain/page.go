package domain

// Pagination describes the slice of a result set returned by a list query.
type Pagination struct {
	ItemsCount  int `json:"itemsCount"`
	PagesCount  int `json:"pagesCount"`
	PageSize    int `json:"pageSize"`
	CurrentPage int `json:"currentPage"`
}

// NewPagination computes pagesCount from itemsCount and pageSize. currentPage is
// echoed as supplied.
func NewPagination(itemsCount, pageSize, currentPage int) Pagination {
	if itemsCount < 0 {
		itemsCount = 0
	}
	pages := 0
	if itemsCount > 0 && pageSize > 0 {
		pages = (itemsCount + pageSize - 1) / pageSize
	}
	return Pagination{
		ItemsCount:  itemsCount,
		PagesCount:  pages,
		PageSize:    pageSize,
		CurrentPage: currentPage,
	}
}

// Page is the envelope returned by every list-style query.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPage builds an envelope, never leaving Data nil.
func NewPage[T any](data []T, itemsCount int, q ListQuery) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:       data,
		Pagination: NewPagination(itemsCount, q.PageSize, q.Page),
	}
}

// EmptyPage is the valid envelope for zero matches.
func EmptyPage[T any](q ListQuery) Page[T] {
	return NewPage[T](nil, 0, q)
}

// MapPage converts the items of a page while keeping its pagination.
func MapPage[S, T any](page Page[S], fn func(S) T) Page[T] {
	out := make([]T, 0, len(page.Data))
	for _, item := range page.Data {
		out = append(out, fn(item))
	}
	return Page[T]{Data: out, Pagination: page.Pagination}
}
