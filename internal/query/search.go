package query

import (
	"strings"

	"golang.org/x/text/cases"
)

// searchMatcher holds the folded term for one query run. A cases.Caser keeps
// state between calls, so a matcher must not be shared across goroutines.
type searchMatcher[T any] struct {
	schema *Schema[T]
	fields []string
	term   string
	fold   cases.Caser
	blank  bool
}

func newSearchMatcher[T any](schema *Schema[T], term string, fields []string) *searchMatcher[T] {
	m := &searchMatcher[T]{
		schema: schema,
		fields: fields,
		fold:   cases.Fold(),
		blank:  strings.TrimSpace(term) == "",
	}
	if !m.blank {
		m.term = m.fold.String(term)
	}
	return m
}

// Match reports whether any configured field contains the term as a
// case-insensitive substring. A blank term matches everything.
func (m *searchMatcher[T]) Match(rec T) bool {
	if m.blank {
		return true
	}
	for _, name := range m.fields {
		if strings.Contains(m.fold.String(m.schema.Text(rec, name)), m.term) {
			return true
		}
	}
	return false
}

// MatchSearch is the one-shot form of the search predicate.
func MatchSearch[T any](schema *Schema[T], rec T, term string, fields []string) bool {
	return newSearchMatcher(schema, term, fields).Match(rec)
}
