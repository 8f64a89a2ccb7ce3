package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dentalclinic/internal/controller"
	"dentalclinic/internal/domain"
	"dentalclinic/internal/metrics"
	"dentalclinic/internal/utils"

	"github.com/google/uuid"
)

// MaxPageSize bounds page sizes accepted from clients.
const MaxPageSize = 100

type viewSession struct {
	id       string
	screen   Screen
	view     View
	lastUsed time.Time
}

// ViewService keeps open view sessions, one query controller each, keyed by a
// random id. Sessions idle longer than TTL are dropped by Sweep.
type ViewService struct {
	Catalog *Catalog
	TTL     time.Duration
	Metrics *metrics.Recorder
	Now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*viewSession
}

func NewViewService(catalog *Catalog, ttl time.Duration, rec *metrics.Recorder) *ViewService {
	return &ViewService{
		Catalog:  catalog,
		TTL:      ttl,
		Metrics:  rec,
		sessions: map[string]*viewSession{},
	}
}

func (s *ViewService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Open starts a session on screenName and runs its first load. The session
// is kept even when that load fails, so the client can retry it.
func (s *ViewService) Open(ctx context.Context, screenName, requestID string) (string, ViewState, error) {
	scr, err := s.Catalog.Get(screenName)
	if err != nil {
		return "", ViewState{}, err
	}
	id := uuid.NewString()
	v := scr.NewView(s.hooks(screenName, id))

	s.mu.Lock()
	s.sessions[id] = &viewSession{id: id, screen: scr, view: v, lastUsed: s.now()}
	s.mu.Unlock()
	s.Metrics.ViewOpened()
	utils.LogEvent(requestID, "views", "open", fmt.Sprintf("view_id=%s screen=%s", id, screenName))

	err = v.Load(ctx)
	return id, v.State(), err
}

func (s *ViewService) hooks(screenName, id string) controller.Hooks {
	return controller.Hooks{
		OnResult: func(seq uint64, took time.Duration, err error) {
			s.Metrics.ObserveQuery(screenName, took, err)
			if err != nil {
				utils.LogEvent("", "views", "fetch_failed", fmt.Sprintf("view_id=%s seq=%d err=%v", id, seq, err))
			}
		},
		OnStale: func(seq uint64) {
			s.Metrics.ObserveStale(screenName)
			utils.LogEvent("", "views", "stale_result", fmt.Sprintf("view_id=%s seq=%d", id, seq))
		},
	}
}

func (s *ViewService) session(id string) (*viewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "visão", ID: id}
	}
	sess.lastUsed = s.now()
	return sess, nil
}

// State returns the current state of a session.
func (s *ViewService) State(id string) (ViewState, error) {
	sess, err := s.session(id)
	if err != nil {
		return ViewState{}, err
	}
	return sess.view.State(), nil
}

// Close drops a session and cancels its in-flight fetch.
func (s *ViewService) Close(id, requestID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return domain.NotFoundError{Resource: "visão", ID: id}
	}
	sess.view.Close()
	s.Metrics.ViewClosed()
	utils.LogEvent(requestID, "views", "close", "view_id="+id)
	return nil
}

func (s *ViewService) apply(ctx context.Context, id string, action func(*viewSession) error) (ViewState, error) {
	sess, err := s.session(id)
	if err != nil {
		return ViewState{}, err
	}
	err = action(sess)
	return sess.view.State(), err
}

func (s *ViewService) Search(ctx context.Context, id, term string) (ViewState, error) {
	return s.apply(ctx, id, func(sess *viewSession) error {
		return sess.view.SetSearch(ctx, utils.TrimOrEmpty(term))
	})
}

// Filter sets field to value; an empty value clears the filter.
func (s *ViewService) Filter(ctx context.Context, id, field, value string) (ViewState, error) {
	sess, err := s.session(id)
	if err != nil {
		return ViewState{}, err
	}
	next := sess.view.State().Spec.WithFilter(field, value)
	if err := sess.screen.Validate(next); err != nil {
		return sess.view.State(), err
	}
	err = sess.view.SetFilter(ctx, field, value)
	return sess.view.State(), err
}

func (s *ViewService) Sort(ctx context.Context, id, key string) (ViewState, error) {
	return s.apply(ctx, id, func(sess *viewSession) error {
		return sess.view.SetSort(ctx, key)
	})
}

func (s *ViewService) Page(ctx context.Context, id string, n int) (ViewState, error) {
	if n < 1 {
		return ViewState{}, domain.ValidationError{Field: "page", Msg: "deve ser maior que zero"}
	}
	return s.apply(ctx, id, func(sess *viewSession) error {
		return sess.view.SetPage(ctx, n)
	})
}

func (s *ViewService) PageSize(ctx context.Context, id string, n int) (ViewState, error) {
	if n < 1 || n > MaxPageSize {
		return ViewState{}, domain.ValidationError{Field: "page_size", Msg: fmt.Sprintf("deve estar entre 1 e %d", MaxPageSize)}
	}
	return s.apply(ctx, id, func(sess *viewSession) error {
		return sess.view.SetPageSize(ctx, n)
	})
}

func (s *ViewService) Retry(ctx context.Context, id string) (ViewState, error) {
	return s.apply(ctx, id, func(sess *viewSession) error {
		return sess.view.Retry(ctx)
	})
}

// Len returns the number of open sessions.
func (s *ViewService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep closes sessions idle for longer than TTL and returns how many it
// closed. A non-positive TTL keeps sessions forever.
func (s *ViewService) Sweep() int {
	if s.TTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.TTL)

	s.mu.Lock()
	var expired []*viewSession
	for id, sess := range s.sessions {
		if sess.lastUsed.Before(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.view.Close()
		s.Metrics.ViewClosed()
		utils.LogEvent("", "views", "expire", "view_id="+sess.id)
	}
	return len(expired)
}

// Run sweeps periodically until ctx is done.
func (s *ViewService) Run(ctx context.Context) {
	if s.TTL <= 0 {
		return
	}
	interval := max(s.TTL/2, time.Second)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
