// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoRecord is returned by Get when the statement matched zero rows.
var ErrNoRecord = errors.New("no record")

// Scanner is satisfied by both *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Gateway executes single parameterized statements against the database.
// Every call is independent; there are no multi-statement transactions.
type Gateway struct {
	db *sql.DB
}

func NewGateway(db *sql.DB) *Gateway {
	return &Gateway{db: db}
}

// DB returns the underlying handle.
func (g *Gateway) DB() *sql.DB {
	return g.db
}

// Get fetches at most one record. A statement that matches nothing yields
// ErrNoRecord; if it matches several, only the first row is read.
func Get[T any](ctx context.Context, g *Gateway, scan func(Scanner) (T, error), query string, args ...any) (T, error) {
	var zero T

	row := g.db.QueryRowContext(ctx, query, args...)
	v, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNoRecord
	}
	if err != nil {
		return zero, fmt.Errorf("failed to fetch row: %w", err)
	}

	return v, nil
}

// All fetches every matching record in statement order. The result is never
// nil so it encodes as an empty JSON array.
func All[T any](ctx context.Context, g *Gateway, scan func(Scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return items, nil
}

// Run executes a mutation and reports the number of rows affected.
func (g *Gateway) Run(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute statement: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return n, nil
}
