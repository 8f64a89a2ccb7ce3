package query

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders two records: negative, zero or positive.
type Comparator[T any] func(a, b T) int

// Registry resolves a sort key to a comparator. Kinds come from the schema;
// Register overrides a key with a custom comparator.
type Registry[T any] struct {
	schema *Schema[T]
	locale language.Tag
	custom map[string]Comparator[T]
}

// NewRegistry builds a registry over schema. String fields collate with locale.
func NewRegistry[T any](schema *Schema[T], locale language.Tag) *Registry[T] {
	return &Registry[T]{
		schema: schema,
		locale: locale,
		custom: map[string]Comparator[T]{},
	}
}

// Register installs a comparator for key, replacing the schema-derived one.
func (r *Registry[T]) Register(key string, cmp Comparator[T]) {
	r.custom[key] = cmp
}

// Has reports whether key resolves to a real comparator.
func (r *Registry[T]) Has(key string) bool {
	if _, ok := r.custom[key]; ok {
		return true
	}
	_, ok := r.schema.Field(key)
	return ok
}

// Comparator returns the ascending or descending comparator for key. Unknown
// keys get a comparator that reports every pair equal, so a stable sort
// leaves the input order untouched.
//
// String comparators carry their own collator; collators are not safe for
// concurrent use, so call Comparator once per sort.
func (r *Registry[T]) Comparator(key string, order Order) Comparator[T] {
	base := r.base(key)
	if order == Desc {
		return func(a, b T) int { return -base(a, b) }
	}
	return base
}

func (r *Registry[T]) base(key string) Comparator[T] {
	if cmp, ok := r.custom[key]; ok {
		return cmp
	}
	f, ok := r.schema.Field(key)
	if !ok || f.Value == nil {
		return noopComparator[T]
	}
	switch f.Kind {
	case KindNumber:
		return func(a, b T) int { return sign(toNumber(f.Value(a)) - toNumber(f.Value(b))) }
	case KindDate:
		return func(a, b T) int { return sign(toMillis(f.Value(a)) - toMillis(f.Value(b))) }
	case KindOrdinal:
		ranks := f.Ranks
		return func(a, b T) int {
			return sign(float64(ranks.Rank(Stringify(f.Value(a))) - ranks.Rank(Stringify(f.Value(b)))))
		}
	case KindBool:
		return func(a, b T) int { return sign(boolRank(f.Value(a)) - boolRank(f.Value(b))) }
	default:
		col := collate.New(r.locale)
		return func(a, b T) int {
			return col.CompareString(Stringify(f.Value(a)), Stringify(f.Value(b)))
		}
	}
}

func boolRank(v any) float64 {
	if b, ok := normalizeFilterValue(v).(bool); ok && b {
		return 1
	}
	return 0
}

func noopComparator[T any](T, T) int { return 0 }

func sign(d float64) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
