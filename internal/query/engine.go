package query

import (
	"slices"

	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale when none is configured.
var DefaultLocale = language.BrazilianPortuguese

// Engine runs the search → filter → sort → paginate pipeline over a record
// slice. It keeps no state between calls and never modifies its input.
type Engine[T any] struct {
	schema   *Schema[T]
	registry *Registry[T]
}

// EngineOption configures an Engine.
type EngineOption[T any] func(*Engine[T])

// WithComparator overrides the comparator used for one sort key.
func WithComparator[T any](key string, cmp Comparator[T]) EngineOption[T] {
	return func(e *Engine[T]) { e.registry.Register(key, cmp) }
}

// NewEngine builds an engine for schema. String fields collate with locale;
// language.Und falls back to DefaultLocale.
func NewEngine[T any](schema *Schema[T], locale language.Tag, opts ...EngineOption[T]) *Engine[T] {
	if locale == language.Und {
		locale = DefaultLocale
	}
	e := &Engine[T]{
		schema:   schema,
		registry: NewRegistry(schema, locale),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine[T]) Schema() *Schema[T]     { return e.schema }
func (e *Engine[T]) Registry() *Registry[T] { return e.registry }

// Filter returns the records matching the search term and every active
// filter, in source order, as a new slice.
func (e *Engine[T]) Filter(source []T, spec Spec) []T {
	search := newSearchMatcher(e.schema, spec.SearchTerm, e.schema.searchable)
	preds := compileFilters(e.schema, spec.Filters)

	out := make([]T, 0, len(source))
next:
	for _, rec := range source {
		if !search.Match(rec) {
			continue
		}
		for _, p := range preds {
			if !p(rec) {
				continue next
			}
		}
		out = append(out, rec)
	}
	return out
}

// Sort orders records in place with a stable sort; equal keys keep their
// relative order.
func (e *Engine[T]) Sort(records []T, key string, order Order) {
	slices.SortStableFunc(records, e.registry.Comparator(key, order))
}

// Query runs the full pipeline. The requested page is used as is: a page past
// the end yields empty Data.
func (e *Engine[T]) Query(source []T, spec Spec) Page[T] {
	spec = spec.Normalize()
	rows := e.Filter(source, spec)
	e.Sort(rows, spec.SortKey, spec.SortOrder)
	return Paginate(rows, spec.Page, spec.PageSize)
}

// QueryClamped runs the pipeline after bounding the page into [1, lastPage]
// for the filtered total. It returns the spec that was actually applied.
func (e *Engine[T]) QueryClamped(source []T, spec Spec) (Page[T], Spec) {
	spec = spec.Normalize()
	rows := e.Filter(source, spec)
	spec.Page = ClampPage(spec.Page, LastPage(len(rows), spec.PageSize))
	e.Sort(rows, spec.SortKey, spec.SortOrder)
	return Paginate(rows, spec.Page, spec.PageSize), spec
}
