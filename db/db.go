// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/survey-score/cliparse"
)

const (
	sqliteDriver   = "sqlite"
	postgresDriver = "postgres"

	defaultPingTimeout  = 5 * time.Second
	defaultBusyTimeout  = 5 * time.Second
	defaultConnMaxIdle  = 2 * time.Minute
	defaultConnMaxLife  = 30 * time.Minute
	defaultMaxIdleConns = 5
	defaultMaxOpenConns = 25
)

// Open connects to the database selected by cfg and verifies the connection.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		conn, err = sql.Open(sqliteDriver, sqliteDSN(cfg.DatabaseURL, cfg.ForeignKeys))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		// SQLite allows a single writer; one connection keeps writes
		// serialized in-process instead of surfacing SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
	case cliparse.DatabasePostgres:
		conn, err = sql.Open(postgresDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		conn.SetConnMaxIdleTime(defaultConnMaxIdle)
		conn.SetConnMaxLifetime(defaultConnMaxLife)
		conn.SetMaxIdleConns(defaultMaxIdleConns)
		conn.SetMaxOpenConns(defaultMaxOpenConns)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// sqliteDSN appends the per-connection pragmas to a file path or file: URI.
func sqliteDSN(path string, foreignKeys bool) string {
	fk := 0
	if foreignKeys {
		fk = 1
	}

	params := []string{
		fmt.Sprintf("_pragma=busy_timeout(%d)", defaultBusyTimeout.Milliseconds()),
		fmt.Sprintf("_pragma=foreign_keys(%d)", fk),
		"_time_format=sqlite",
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}
