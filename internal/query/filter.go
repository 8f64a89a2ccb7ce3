package query

import "strings"

// Predicate is a boolean test over one record.
type Predicate[T any] func(T) bool

// FilterPredicate builds the equality predicate for one (field, expected)
// pair. An empty expected value is an inactive filter and always passes.
func FilterPredicate[T any](schema *Schema[T], field, expected string) Predicate[T] {
	if expected == "" {
		return func(T) bool { return true }
	}
	want := normalizeFilterValue(expected)
	return func(rec T) bool {
		return filterEqual(normalizeFilterValue(schema.Value(rec, field)), want)
	}
}

// MatchFilters ANDs all active filters. There is no OR, NOT or range support.
func MatchFilters[T any](schema *Schema[T], rec T, filters map[string]string) bool {
	for field, expected := range filters {
		if expected == "" {
			continue
		}
		if !FilterPredicate(schema, field, expected)(rec) {
			return false
		}
	}
	return true
}

func compileFilters[T any](schema *Schema[T], filters map[string]string) []Predicate[T] {
	out := make([]Predicate[T], 0, len(filters))
	for field, expected := range filters {
		if expected == "" {
			continue
		}
		out = append(out, FilterPredicate(schema, field, expected))
	}
	return out
}

// normalizeFilterValue turns the strings "true"/"false" into booleans and
// everything else into its display string.
func normalizeFilterValue(v any) any {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		switch strings.TrimSpace(x) {
		case "true":
			return true
		case "false":
			return false
		}
		return x
	default:
		s := Stringify(v)
		switch s {
		case "true":
			return true
		case "false":
			return false
		}
		return s
	}
}

func filterEqual(got, want any) bool {
	gb, gok := got.(bool)
	wb, wok := want.(bool)
	if gok || wok {
		return gok && wok && gb == wb
	}
	return got.(string) == want.(string)
}
