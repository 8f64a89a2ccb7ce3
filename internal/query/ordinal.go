package query

import "strings"

// Ordinal is an ordered enumeration: a value's rank is its index in the
// declaration. It replaces alphabetic ordering for fields such as risk level
// or priority.
type Ordinal struct {
	name   string
	values []string
	rank   map[string]int
	folded map[string]int
}

// NewOrdinal declares values from lowest to highest rank.
func NewOrdinal(name string, values ...string) *Ordinal {
	o := &Ordinal{
		name:   name,
		values: append([]string(nil), values...),
		rank:   make(map[string]int, len(values)),
		folded: make(map[string]int, len(values)),
	}
	for i, v := range values {
		o.rank[v] = i
		o.folded[strings.ToLower(v)] = i
	}
	return o
}

func (o *Ordinal) Name() string { return o.name }

// Values returns the declared values in rank order.
func (o *Ordinal) Values() []string {
	return append([]string(nil), o.values...)
}

// Rank returns the rank of v, matching exactly first and then ignoring case.
// Unknown values rank -1 and therefore sort before every declared value.
func (o *Ordinal) Rank(v string) int {
	if o == nil {
		return -1
	}
	if r, ok := o.rank[v]; ok {
		return r
	}
	if r, ok := o.folded[strings.ToLower(strings.TrimSpace(v))]; ok {
		return r
	}
	return -1
}

// Contains reports whether v is one of the declared values.
func (o *Ordinal) Contains(v string) bool {
	return o.Rank(v) >= 0
}
