// Package query implements the view-model side of the content layer: a generic
// paginated-resource query with an idle/loading/success/error lifecycle, a debouncer
// for search input and the binding that ties the two together.
//
// Fetches run on goroutines. Each request carries a generation number and its own
// context; a response from a superseded request is discarded and its context is
// cancelled. Errors never escape a Resource: they are turned into a display string
// and the data falls back to the configured empty value.
package query
