package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind selects how a field is compared when sorting.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindDate
	KindOrdinal
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindOrdinal:
		return "ordinal"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Field exposes one named value of a record to the engine.
type Field[T any] struct {
	Name  string
	Label string
	Kind  Kind
	Value func(T) any
	// Ranks is required for KindOrdinal fields.
	Ranks *Ordinal
}

// Schema is the engine's only view into a record type: the fields it may
// read, and which of them take part in search.
type Schema[T any] struct {
	fields     map[string]Field[T]
	order      []string
	searchable []string
}

// NewSchema registers fields in declaration order. Later duplicates replace
// earlier ones.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{fields: make(map[string]Field[T], len(fields))}
	for _, f := range fields {
		if _, ok := s.fields[f.Name]; !ok {
			s.order = append(s.order, f.Name)
		}
		s.fields[f.Name] = f
	}
	return s
}

// Searchable sets the fields the search matcher looks at. Names the schema
// does not know are kept; they read as empty strings.
func (s *Schema[T]) Searchable(names ...string) *Schema[T] {
	s.searchable = append([]string(nil), names...)
	return s
}

// SearchFields returns the configured search fields.
func (s *Schema[T]) SearchFields() []string {
	return append([]string(nil), s.searchable...)
}

// Field looks up a field by name.
func (s *Schema[T]) Field(name string) (Field[T], bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Fields returns all fields in declaration order.
func (s *Schema[T]) Fields() []Field[T] {
	out := make([]Field[T], 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.fields[name])
	}
	return out
}

// Value reads a field off a record. Unknown fields and nil accessors yield nil.
func (s *Schema[T]) Value(rec T, name string) any {
	f, ok := s.fields[name]
	if !ok || f.Value == nil {
		return nil
	}
	return f.Value(rec)
}

// Text reads a field as display text.
func (s *Schema[T]) Text(rec T, name string) string {
	return Stringify(s.Value(rec, name))
}

// Stringify renders a field value the way search and filters see it.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format("2006-01-02")
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// toMillis converts a date-ish value to epoch milliseconds. Unparseable
// values read as 0.
func toMillis(v any) float64 {
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return 0
		}
		return float64(x.UnixMilli())
	case *time.Time:
		if x == nil {
			return 0
		}
		return toMillis(*x)
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return float64(t.UnixMilli())
			}
		}
		return 0
	default:
		return toNumber(v)
	}
}

// toNumber converts a numeric-ish value to float64. Unparseable values read as 0.
func toNumber(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
