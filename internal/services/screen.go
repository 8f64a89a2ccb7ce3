package services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"dentalclinic/internal/controller"
	"dentalclinic/internal/domain"
	"dentalclinic/internal/metrics"
	"dentalclinic/internal/query"
	"dentalclinic/internal/utils"

	"golang.org/x/text/language"
)

// Column describes one field of a screen for clients building the table.
type Column struct {
	Name       string   `json:"name"`
	Label      string   `json:"label"`
	Kind       string   `json:"kind"`
	Searchable bool     `json:"searchable"`
	Filterable bool     `json:"filterable"`
	Options    []string `json:"options,omitempty"`
}

// ScreenInfo is a screen's catalog entry.
type ScreenInfo struct {
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Columns      []Column    `json:"columns"`
	DefaultSort  string      `json:"default_sort"`
	DefaultOrder query.Order `json:"default_order"`
	PageSize     int         `json:"page_size"`
}

// Table is a queried page rendered as display text, one row per record.
type Table struct {
	Screen  string
	Title   string
	Headers []string
	Rows    [][]string
	Meta    query.Meta
	Spec    query.Spec
}

// ViewState is a controller snapshot with the record type erased.
type ViewState struct {
	Status controller.Status `json:"status"`
	Spec   query.Spec        `json:"spec"`
	Page   query.Page[any]   `json:"page"`
	Error  string            `json:"error,omitempty"`
	Seq    uint64            `json:"seq"`
}

// View is a stateful query session over one screen.
type View interface {
	Load(ctx context.Context) error
	Retry(ctx context.Context) error
	SetSearch(ctx context.Context, term string) error
	SetFilter(ctx context.Context, field, value string) error
	SetSort(ctx context.Context, key string) error
	SetPage(ctx context.Context, n int) error
	SetPageSize(ctx context.Context, n int) error
	State() ViewState
	Close()
}

// Screen is one list screen of the dashboard: its record source plus the
// schema the query engine runs against.
type Screen interface {
	Info() ScreenInfo
	DefaultSpec() query.Spec
	// Validate rejects filters on fields the screen does not expose for filtering.
	Validate(spec query.Spec) error
	Query(ctx context.Context, spec query.Spec) (query.Page[any], query.Spec, error)
	Table(ctx context.Context, spec query.Spec) (Table, error)
	Count(ctx context.Context) (int, error)
	NewView(hooks controller.Hooks) View
}

type screenConfig[T any] struct {
	name       string
	title      string
	fields     []query.Field[T]
	searchable []string
	filterable []string
	money      []string
	sortKey    string
	order      query.Order
	pageSize   int
	source     controller.Source[T]
	options    []query.EngineOption[T]
}

type screen[T any] struct {
	cfg     screenConfig[T]
	engine  *query.Engine[T]
	metrics *metrics.Recorder
}

func newScreen[T any](cfg screenConfig[T], locale language.Tag, pageSize int, rec *metrics.Recorder) *screen[T] {
	if cfg.pageSize <= 0 {
		cfg.pageSize = pageSize
	}
	schema := query.NewSchema(cfg.fields...).Searchable(cfg.searchable...)
	return &screen[T]{
		cfg:     cfg,
		engine:  query.NewEngine(schema, locale, cfg.options...),
		metrics: rec,
	}
}

func (s *screen[T]) Info() ScreenInfo {
	info := ScreenInfo{
		Name:         s.cfg.name,
		Title:        s.cfg.title,
		DefaultSort:  s.cfg.sortKey,
		DefaultOrder: s.cfg.order,
		PageSize:     s.cfg.pageSize,
	}
	for _, f := range s.engine.Schema().Fields() {
		col := Column{
			Name:       f.Name,
			Label:      f.Label,
			Kind:       f.Kind.String(),
			Searchable: slices.Contains(s.cfg.searchable, f.Name),
			Filterable: slices.Contains(s.cfg.filterable, f.Name),
		}
		if f.Ranks != nil {
			col.Options = f.Ranks.Values()
		}
		info.Columns = append(info.Columns, col)
	}
	return info
}

func (s *screen[T]) DefaultSpec() query.Spec {
	return query.NewSpec(s.cfg.sortKey, s.cfg.order, s.cfg.pageSize)
}

func (s *screen[T]) Validate(spec query.Spec) error {
	keys := make([]string, 0, len(spec.Filters))
	for k := range spec.ActiveFilters() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !slices.Contains(s.cfg.filterable, k) {
			return domain.ValidationError{Field: "filter[" + k + "]", Msg: "campo não pode ser filtrado nesta tela"}
		}
	}
	return nil
}

func (s *screen[T]) query(ctx context.Context, spec query.Spec) (query.Page[T], query.Spec, error) {
	if err := s.Validate(spec); err != nil {
		return query.Page[T]{}, spec, err
	}
	start := time.Now()
	records, err := s.cfg.source.FetchAll(ctx)
	if err != nil {
		s.metrics.ObserveQuery(s.cfg.name, time.Since(start), err)
		return query.Page[T]{}, spec, fmt.Errorf("fetch %s: %w", s.cfg.name, err)
	}
	page, applied := s.engine.QueryClamped(records, spec)
	s.metrics.ObserveQuery(s.cfg.name, time.Since(start), nil)
	return page, applied, nil
}

func (s *screen[T]) Query(ctx context.Context, spec query.Spec) (query.Page[any], query.Spec, error) {
	page, applied, err := s.query(ctx, spec)
	if err != nil {
		return query.Page[any]{}, applied, err
	}
	return query.MapPage(page, toAny[T]), applied, nil
}

func (s *screen[T]) Table(ctx context.Context, spec query.Spec) (Table, error) {
	page, applied, err := s.query(ctx, spec)
	if err != nil {
		return Table{}, err
	}
	schema := s.engine.Schema()
	fields := schema.Fields()

	t := Table{Screen: s.cfg.name, Title: s.cfg.title, Meta: page.Meta, Spec: applied}
	for _, f := range fields {
		label := f.Label
		if label == "" {
			label = f.Name
		}
		t.Headers = append(t.Headers, label)
	}
	for _, rec := range page.Data {
		row := make([]string, 0, len(fields))
		for _, f := range fields {
			row = append(row, s.cellText(rec, f.Name))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (s *screen[T]) cellText(rec T, field string) string {
	v := s.engine.Schema().Value(rec, field)
	if amount, ok := v.(float64); ok && slices.Contains(s.cfg.money, field) {
		return utils.FormatBRL(amount)
	}
	switch x := v.(type) {
	case bool:
		if x {
			return "sim"
		}
		return "não"
	}
	return query.Stringify(v)
}

func (s *screen[T]) Count(ctx context.Context) (int, error) {
	records, err := s.cfg.source.FetchAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", s.cfg.name, err)
	}
	return len(records), nil
}

func (s *screen[T]) NewView(hooks controller.Hooks) View {
	c := controller.New(s.engine, s.cfg.source, s.DefaultSpec(), controller.WithHooks[T](hooks))
	return &view[T]{Controller: c}
}

type view[T any] struct {
	*controller.Controller[T]
}

func (v *view[T]) State() ViewState {
	snap := v.Snapshot()
	return ViewState{
		Status: snap.Status,
		Spec:   snap.Spec,
		Page:   query.MapPage(snap.Page, toAny[T]),
		Error:  snap.Error,
		Seq:    snap.Seq,
	}
}

func toAny[T any](rec T) any { return rec }
