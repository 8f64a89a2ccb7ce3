package services

import (
	"context"
	"fmt"

	"dentalclinic/internal/utils"

	"golang.org/x/sync/errgroup"
)

// ScreenTotal is the record count behind one screen.
type ScreenTotal struct {
	Screen string `json:"screen"`
	Title  string `json:"title"`
	Total  int    `json:"total"`
}

// SummaryService builds the dashboard home counters.
type SummaryService struct {
	Catalog   *Catalog
	RequestID string
}

// Totals fetches every screen concurrently. The first failing source cancels
// the rest and its error is returned.
func (s SummaryService) Totals(ctx context.Context) ([]ScreenTotal, error) {
	names := s.Catalog.Names()
	out := make([]ScreenTotal, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		scr, err := s.Catalog.Get(name)
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			n, err := scr.Count(gctx)
			if err != nil {
				return err
			}
			out[i] = ScreenTotal{Screen: name, Title: scr.Info().Title, Total: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "dashboard", "summary", fmt.Sprintf("screens=%d", len(out)))
	return out, nil
}
