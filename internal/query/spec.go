package query

import (
	"fmt"
	"maps"
	"strings"
)

// DefaultPageSize is used when a Spec carries a non-positive page size.
const DefaultPageSize = 15

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder accepts "asc"/"desc" in any case. Empty input means ascending.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return "", fmt.Errorf("invalid sort order %q", s)
	}
}

// Spec describes the desired view of a collection. It is a value: the With*
// methods return a modified copy and never touch the receiver's filter map.
type Spec struct {
	SearchTerm string            `json:"search_term"`
	Filters    map[string]string `json:"filters"`
	SortKey    string            `json:"sort_key"`
	SortOrder  Order             `json:"sort_order"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// NewSpec returns the spec a screen starts with.
func NewSpec(sortKey string, order Order, pageSize int) Spec {
	if order == "" {
		order = Asc
	}
	return Spec{
		Filters:   map[string]string{},
		SortKey:   sortKey,
		SortOrder: order,
		Page:      1,
		PageSize:  pageSize,
	}.Normalize()
}

// WithSearch replaces the search term and goes back to the first page.
func (s Spec) WithSearch(term string) Spec {
	out := s.clone()
	out.SearchTerm = term
	out.Page = 1
	return out
}

// WithFilter sets (or clears, with value "") one filter and goes back to the first page.
func (s Spec) WithFilter(field, value string) Spec {
	out := s.clone()
	if value == "" {
		delete(out.Filters, field)
	} else {
		out.Filters[field] = value
	}
	out.Page = 1
	return out
}

// WithSort selects a sort key. Selecting the current key again flips the
// direction; a different key starts ascending.
func (s Spec) WithSort(key string) Spec {
	out := s.clone()
	if key == s.SortKey {
		if s.SortOrder == Desc {
			out.SortOrder = Asc
		} else {
			out.SortOrder = Desc
		}
		return out
	}
	out.SortKey = key
	out.SortOrder = Asc
	return out
}

// WithPage moves to page n. The page is not bounded here; see Engine.QueryClamped.
func (s Spec) WithPage(n int) Spec {
	out := s.clone()
	out.Page = n
	return out
}

// WithPageSize changes the page size and goes back to the first page.
func (s Spec) WithPageSize(n int) Spec {
	out := s.clone()
	out.PageSize = n
	out.Page = 1
	return out
}

// Normalize fixes values the engine cannot work with: page < 1 becomes 1,
// page size <= 0 becomes DefaultPageSize and unknown orders become Asc.
func (s Spec) Normalize() Spec {
	out := s.clone()
	if out.Page < 1 {
		out.Page = 1
	}
	if out.PageSize <= 0 {
		out.PageSize = DefaultPageSize
	}
	if out.SortOrder != Desc {
		out.SortOrder = Asc
	}
	return out
}

// ActiveFilters returns the filters whose expected value is non-empty.
func (s Spec) ActiveFilters() map[string]string {
	out := make(map[string]string, len(s.Filters))
	for k, v := range s.Filters {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func (s Spec) clone() Spec {
	out := s
	if s.Filters == nil {
		out.Filters = map[string]string{}
	} else {
		out.Filters = maps.Clone(s.Filters)
	}
	return out
}
