package query

import (
	"testing"
	"time"
)

func TestMatchSearch(t *testing.T) {
	schema := patientSchema()
	note := "Alergia a PENICILINA"
	rec := patient{Name: "Joana Prado", Code: "ACS-0042", Notes: &note}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{name: "empty term", term: "", want: true},
		{name: "whitespace term", term: "  \t", want: true},
		{name: "case insensitive name", term: "joana", want: true},
		{name: "substring of code", term: "s-004", want: true},
		{name: "pointer field", term: "penicilina", want: true},
		{name: "not tokenized", term: "prado joana", want: false},
		{name: "no diacritic folding", term: "joána", want: false},
		{name: "no match", term: "carlos", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchSearch(schema, rec, tc.term, schema.SearchFields()); got != tc.want {
				t.Fatalf("MatchSearch(%q) = %v, want %v", tc.term, got, tc.want)
			}
		})
	}
}

func TestMatchSearchMissingFields(t *testing.T) {
	schema := patientSchema()
	rec := patient{Name: "Rui"}
	if MatchSearch(schema, rec, "x", []string{"unknown", "notes"}) {
		t.Fatalf("missing fields should read as empty strings")
	}
	if !MatchSearch(schema, rec, "rui", []string{"unknown", "name"}) {
		t.Fatalf("expected match on name after unknown field")
	}
}

func TestMatchFilters(t *testing.T) {
	schema := patientSchema()
	rec := patient{ID: 7, Name: "Lia", Risk: "alto", Active: true, Amount: 150.5}

	tests := []struct {
		name    string
		filters map[string]string
		want    bool
	}{
		{name: "nil filters", filters: nil, want: true},
		{name: "inactive filter", filters: map[string]string{"risk": ""}, want: true},
		{name: "equal string", filters: map[string]string{"risk": "alto"}, want: true},
		{name: "string is case sensitive", filters: map[string]string{"risk": "Alto"}, want: false},
		{name: "bool true", filters: map[string]string{"active": "true"}, want: true},
		{name: "bool false", filters: map[string]string{"active": "false"}, want: false},
		{name: "number as text", filters: map[string]string{"id": "7"}, want: true},
		{name: "float as text", filters: map[string]string{"amount": "150.5"}, want: true},
		{name: "all must hold", filters: map[string]string{"risk": "alto", "active": "false"}, want: false},
		{name: "both hold", filters: map[string]string{"risk": "alto", "active": "true", "name": "Lia"}, want: true},
		{name: "unknown field", filters: map[string]string{"city": "Recife"}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchFilters(schema, rec, tc.filters); got != tc.want {
				t.Fatalf("MatchFilters(%v) = %v, want %v", tc.filters, got, tc.want)
			}
		})
	}
}

func TestFilterBooleanEncodedAsString(t *testing.T) {
	type row struct{ Flag string }
	schema := NewSchema(Field[row]{Name: "flag", Kind: KindBool, Value: func(r row) any { return r.Flag }})

	if !FilterPredicate(schema, "flag", "true")(row{Flag: "true"}) {
		t.Fatalf("string-encoded true should equal filter true")
	}
	if FilterPredicate(schema, "flag", "true")(row{Flag: "sim"}) {
		t.Fatalf("non-boolean text must not equal a boolean filter")
	}
}

func TestSpecTransitions(t *testing.T) {
	base := NewSpec("name", Asc, 10).WithPage(3)

	if s := base.WithSearch("x"); s.Page != 1 || s.SearchTerm != "x" {
		t.Fatalf("WithSearch should reset page: %+v", s)
	}
	if s := base.WithFilter("risk", "alto"); s.Page != 1 || s.Filters["risk"] != "alto" {
		t.Fatalf("WithFilter should reset page: %+v", s)
	}
	if s := base.WithPageSize(25); s.Page != 1 || s.PageSize != 25 {
		t.Fatalf("WithPageSize should reset page: %+v", s)
	}
	if s := base.WithSort("name"); s.SortOrder != Desc || s.Page != 3 {
		t.Fatalf("reselecting the sort key should toggle: %+v", s)
	}
	if s := base.WithSort("name").WithSort("name"); s.SortOrder != Asc {
		t.Fatalf("second toggle should return to asc: %+v", s)
	}
	if s := base.WithSort("name").WithSort("risk"); s.SortKey != "risk" || s.SortOrder != Asc {
		t.Fatalf("new key should start ascending: %+v", s)
	}

	filtered := base.WithFilter("risk", "alto")
	_ = filtered.WithFilter("risk", "baixo")
	if filtered.Filters["risk"] != "alto" {
		t.Fatalf("WithFilter mutated the receiver's filters")
	}
	if cleared := filtered.WithFilter("risk", ""); len(cleared.Filters) != 0 {
		t.Fatalf("empty value should clear the filter: %v", cleared.Filters)
	}
}

func TestSpecNormalize(t *testing.T) {
	s := Spec{Page: -2, PageSize: 0, SortOrder: "sideways"}.Normalize()
	if s.Page != 1 || s.PageSize != DefaultPageSize || s.SortOrder != Asc || s.Filters == nil {
		t.Fatalf("unexpected normalized spec: %+v", s)
	}
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{"": Asc, "ASC": Asc, " desc ": Desc} {
		got, err := ParseOrder(in)
		if err != nil || got != want {
			t.Fatalf("ParseOrder(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseOrder("up"); err == nil {
		t.Fatalf("expected error for invalid order")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{true, "true"},
		{42, "42"},
		{int64(-3), "-3"},
		{12.50, "12.5"},
		{time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC), "2024-05-06"},
		{time.Time{}, ""},
	}
	for _, tc := range tests {
		if got := Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOrdinalRank(t *testing.T) {
	if r := riskLevel.Rank("critico"); r != 3 {
		t.Fatalf("rank(critico) = %d", r)
	}
	if r := riskLevel.Rank(" ALTO "); r != 2 {
		t.Fatalf("case/space-insensitive fallback failed: %d", r)
	}
	if r := riskLevel.Rank("extremo"); r != -1 {
		t.Fatalf("unknown value rank = %d, want -1", r)
	}
	var nilOrdinal *Ordinal
	if nilOrdinal.Rank("x") != -1 {
		t.Fatalf("nil ordinal should rank -1")
	}
}
