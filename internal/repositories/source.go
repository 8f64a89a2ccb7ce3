package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	intconfig "dentalclinic/internal/config"
	intdb "dentalclinic/internal/db"
	"dentalclinic/internal/domain"
)

// MemorySource serves a fixed slice, optionally after an artificial delay.
// FetchAll hands out a copy, so callers may sort or modify the result freely.
type MemorySource[T any] struct {
	Name    string
	Records []T
	Delay   time.Duration
	// Fail, when set, is returned instead of the records.
	Fail error
}

func (s MemorySource[T]) FetchAll(ctx context.Context) ([]T, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Fail != nil {
		return nil, domain.UnavailableError{Source: s.Name, Err: s.Fail}
	}
	return slices.Clone(s.Records), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func dbOrDefault(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

// fetchTable runs query against table and scans every row. A missing table
// yields an empty list, like the rest of the dashboard does for optional tables.
func fetchTable[T any](ctx context.Context, db *sql.DB, table, query string, scan func(rowScanner) (T, error)) ([]T, error) {
	if db == nil {
		return nil, domain.UnavailableError{Source: table, Err: fmt.Errorf("banco de dados não conectado")}
	}
	exists, err := intdb.HasTable(ctx, db, table)
	if err != nil {
		return nil, domain.UnavailableError{Source: table, Err: err}
	}
	if !exists {
		return []T{}, nil
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.UnavailableError{Source: table, Err: err}
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.UnavailableError{Source: table, Err: err}
	}
	return out, nil
}
