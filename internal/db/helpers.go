package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"log"
)

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HasTable reports whether table exists in the current schema. Only an empty
// lookup means "missing"; any other failure is returned to the caller.
func HasTable(ctx context.Context, q QueryRower, table string) (bool, error) {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		if errors.Is(err, driver.ErrBadConn) {
			log.Println("HasTable", table, "driver.ErrBadConn")
		}
		return false, err
	}
	return name.Valid && name.String != "", nil
}

// HasColumn reports whether table has column.
func HasColumn(ctx context.Context, q QueryRower, table, column string) (bool, error) {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return name.Valid && name.String != "", nil
}
