package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"dentalclinic/internal/query"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

type supplier struct {
	ID       int
	Name     string
	Category string
}

func supplierEngine() *query.Engine[supplier] {
	schema := query.NewSchema(
		query.Field[supplier]{Name: "id", Kind: query.KindNumber, Value: func(s supplier) any { return s.ID }},
		query.Field[supplier]{Name: "name", Kind: query.KindString, Value: func(s supplier) any { return s.Name }},
		query.Field[supplier]{Name: "category", Kind: query.KindString, Value: func(s supplier) any { return s.Category }},
	).Searchable("name")
	return query.NewEngine(schema, language.BrazilianPortuguese)
}

func suppliers(n int, prefix string) []supplier {
	out := make([]supplier, 0, n)
	for i := 1; i <= n; i++ {
		cat := "materiais"
		if i%3 == 0 {
			cat = "equipamentos"
		}
		out = append(out, supplier{ID: i, Name: fmt.Sprintf("%s %02d", prefix, i), Category: cat})
	}
	return out
}

// stubSource serves a fixed slice. Calls listed in gates block until the gate
// is closed, ignoring context cancellation, to model a slow backend.
type stubSource struct {
	mu      sync.Mutex
	records []supplier
	err     error
	calls   int
	gates   map[int]chan struct{}
	started chan int
}

func (s *stubSource) FetchAll(ctx context.Context) ([]supplier, error) {
	s.mu.Lock()
	s.calls++
	n := s.calls
	gate := s.gates[n]
	err := s.err
	recs := slices.Clone(s.records)
	s.mu.Unlock()

	if s.started != nil {
		s.started <- n
	}
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *stubSource) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func TestLoadPublishesLoadingThenReady(t *testing.T) {
	src := &stubSource{records: suppliers(20, "Dental")}
	c := New(supplierEngine(), src, query.NewSpec("id", query.Asc, 15))

	if got := c.Snapshot().Status; got != StatusIdle {
		t.Fatalf("initial status = %s, want idle", got)
	}

	var seen []Status
	c.Subscribe(func(s Snapshot[supplier]) { seen = append(seen, s.Status) })

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff([]Status{StatusLoading, StatusReady}, seen); diff != "" {
		t.Fatalf("transitions mismatch (-want +got):\n%s", diff)
	}

	snap := c.Snapshot()
	if len(snap.Page.Data) != 15 || snap.Page.Meta.Total != 20 || snap.Page.Meta.LastPage != 2 {
		t.Fatalf("unexpected page meta: %+v (len %d)", snap.Page.Meta, len(snap.Page.Data))
	}
	if snap.Seq != 1 {
		t.Fatalf("seq = %d, want 1", snap.Seq)
	}
}

func TestLoadingKeepsPreviousPage(t *testing.T) {
	gate := make(chan struct{})
	src := &stubSource{
		records: suppliers(5, "Orto"),
		gates:   map[int]chan struct{}{2: gate},
		started: make(chan int, 4),
	}
	c := New(supplierEngine(), src, query.NewSpec("id", query.Asc, 15))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	<-src.started
	before := c.Snapshot().Page

	done := make(chan error, 1)
	go func() { done <- c.SetSearch(context.Background(), "orto 01") }()
	<-src.started

	mid := c.Snapshot()
	if mid.Status != StatusLoading {
		t.Fatalf("status while in flight = %s, want loading", mid.Status)
	}
	if diff := cmp.Diff(before, mid.Page); diff != "" {
		t.Fatalf("page changed while loading (-before +during):\n%s", diff)
	}
	if mid.Spec.SearchTerm != "orto 01" {
		t.Fatalf("spec not updated on request start: %+v", mid.Spec)
	}

	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("SetSearch error: %v", err)
	}
	if got := c.Snapshot().Page.Meta.Total; got != 1 {
		t.Fatalf("total after search = %d, want 1", got)
	}
}

func TestFetchErrorKeepsPageAndRetryRecovers(t *testing.T) {
	src := &stubSource{records: suppliers(8, "Lab")}
	c := New(supplierEngine(), src, query.NewSpec("id", query.Asc, 5))
	ctx := context.Background()

	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	good := c.Snapshot().Page

	boom := errors.New("conexão recusada")
	src.setErr(boom)
	if err := c.SetPage(ctx, 2); !errors.Is(err, boom) {
		t.Fatalf("SetPage error = %v, want %v", err, boom)
	}

	failed := c.Snapshot()
	if failed.Status != StatusError || failed.Error != boom.Error() {
		t.Fatalf("unexpected error snapshot: status=%s error=%q", failed.Status, failed.Error)
	}
	if diff := cmp.Diff(good, failed.Page); diff != "" {
		t.Fatalf("page lost on error (-want +got):\n%s", diff)
	}
	if failed.Spec.Page != 2 {
		t.Fatalf("spec page = %d, want 2 kept for retry", failed.Spec.Page)
	}

	src.setErr(nil)
	if err := c.Retry(ctx); err != nil {
		t.Fatalf("Retry error: %v", err)
	}
	ok := c.Snapshot()
	if ok.Status != StatusReady || ok.Error != "" || c.Err() != nil {
		t.Fatalf("retry did not recover: %+v", ok)
	}
	if ok.Page.Meta.CurrentPage != 2 || len(ok.Page.Data) != 3 {
		t.Fatalf("retry page: meta=%+v len=%d", ok.Page.Meta, len(ok.Page.Data))
	}
}

// A slow request issued first must not overwrite the result of a faster
// request issued after it.
func TestLatestRequestWins(t *testing.T) {
	slowGate := make(chan struct{})
	records := append(suppliers(4, "slow"), suppliers(3, "fast")...)
	src := &stubSource{
		records: records,
		gates:   map[int]chan struct{}{1: slowGate},
		started: make(chan int, 4),
	}

	var stale []uint64
	var mu sync.Mutex
	c := New(supplierEngine(), src, query.NewSpec("name", query.Asc, 15),
		WithHooks[supplier](Hooks{OnStale: func(seq uint64) {
			mu.Lock()
			defer mu.Unlock()
			stale = append(stale, seq)
		}}))

	slowDone := make(chan error, 1)
	go func() { slowDone <- c.SetSearch(context.Background(), "slow") }()
	if n := <-src.started; n != 1 {
		t.Fatalf("first fetch = call %d", n)
	}

	if err := c.SetSearch(context.Background(), "fast"); err != nil {
		t.Fatalf("fast SetSearch error: %v", err)
	}
	<-src.started

	close(slowGate)
	if err := <-slowDone; err != nil {
		t.Fatalf("superseded request should return nil, got %v", err)
	}

	snap := c.Snapshot()
	if snap.Status != StatusReady || snap.Spec.SearchTerm != "fast" {
		t.Fatalf("final state reflects wrong spec: status=%s term=%q", snap.Status, snap.Spec.SearchTerm)
	}
	if snap.Page.Meta.Total != 3 {
		t.Fatalf("total = %d, want 3 fast records", snap.Page.Meta.Total)
	}
	for _, s := range snap.Page.Data {
		if !strings.HasPrefix(s.Name, "fast") {
			t.Fatalf("stale record %q published", s.Name)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if diff := cmp.Diff([]uint64{1}, stale); diff != "" {
		t.Fatalf("stale hook mismatch (-want +got):\n%s", diff)
	}
}

func TestSupersededRequestIsCancelled(t *testing.T) {
	started := make(chan struct{}, 1)
	var calls int
	var mu sync.Mutex
	src := SourceFunc[supplier](func(ctx context.Context) ([]supplier, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			started <- struct{}{}
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return suppliers(2, "Novo"), nil
	})
	c := New(supplierEngine(), src, query.NewSpec("id", query.Asc, 10))

	firstDone := make(chan error, 1)
	go func() { firstDone <- c.Load(context.Background()) }()
	<-started

	if err := c.SetFilter(context.Background(), "category", "materiais"); err != nil {
		t.Fatalf("SetFilter error: %v", err)
	}
	select {
	case err := <-firstDone:
		if err != nil {
			t.Fatalf("cancelled stale request should return nil, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("first request was not cancelled")
	}

	snap := c.Snapshot()
	if snap.Status != StatusReady || snap.Error != "" {
		t.Fatalf("stale cancellation leaked into state: %+v", snap)
	}
}

func TestSetSortToggles(t *testing.T) {
	src := &stubSource{records: suppliers(6, "Implante")}
	c := New(supplierEngine(), src, query.NewSpec("name", query.Asc, 10))
	ctx := context.Background()

	if err := c.SetSort(ctx, "name"); err != nil {
		t.Fatal(err)
	}
	snap := c.Snapshot()
	if snap.Spec.SortOrder != query.Desc || snap.Page.Data[0].ID != 6 {
		t.Fatalf("toggle to desc failed: order=%s first=%d", snap.Spec.SortOrder, snap.Page.Data[0].ID)
	}

	if err := c.SetSort(ctx, "id"); err != nil {
		t.Fatal(err)
	}
	snap = c.Snapshot()
	if snap.Spec.SortKey != "id" || snap.Spec.SortOrder != query.Asc || snap.Page.Data[0].ID != 1 {
		t.Fatalf("new key should sort asc: %+v", snap.Spec)
	}
}

func TestPageIsClampedAndResetOnChanges(t *testing.T) {
	src := &stubSource{records: suppliers(23, "Clinica")}
	c := New(supplierEngine(), src, query.NewSpec("id", query.Asc, 10))
	ctx := context.Background()

	if err := c.SetPage(ctx, 9); err != nil {
		t.Fatal(err)
	}
	snap := c.Snapshot()
	if snap.Spec.Page != 3 || snap.Page.Meta.CurrentPage != 3 || len(snap.Page.Data) != 3 {
		t.Fatalf("page not clamped: spec=%d meta=%+v", snap.Spec.Page, snap.Page.Meta)
	}

	if err := c.SetFilter(ctx, "category", "equipamentos"); err != nil {
		t.Fatal(err)
	}
	if got := c.Spec().Page; got != 1 {
		t.Fatalf("filter change should reset page, got %d", got)
	}

	if err := c.SetPage(ctx, 2); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPageSize(ctx, 5); err != nil {
		t.Fatal(err)
	}
	snap = c.Snapshot()
	if snap.Spec.Page != 1 || snap.Page.Meta.PerPage != 5 || snap.Page.Meta.Total != 7 {
		t.Fatalf("page size change: spec=%+v meta=%+v", snap.Spec, snap.Page.Meta)
	}
}

func TestOnResultHook(t *testing.T) {
	var got []error
	src := &stubSource{records: suppliers(1, "X")}
	c := New(supplierEngine(), src, query.NewSpec("", query.Asc, 10),
		WithHooks[supplier](Hooks{OnResult: func(_ uint64, _ time.Duration, err error) { got = append(got, err) }}))

	_ = c.Load(context.Background())
	src.setErr(errors.New("down"))
	_ = c.Load(context.Background())

	if len(got) != 2 || got[0] != nil || got[1] == nil {
		t.Fatalf("OnResult calls = %v", got)
	}
}
