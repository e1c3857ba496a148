// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/survey-score/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, databaseType string) error {
	var statements []string
	switch databaseType {
	case cliparse.DatabaseSQLite:
		statements = sqliteSchema
	case cliparse.DatabasePostgres:
		statements = postgresSchema
	default:
		return fmt.Errorf("unsupported database type %q", databaseType)
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Foreign keys are declared on both dialects. SQLite only checks them when
// the connection has PRAGMA foreign_keys on.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT UNIQUE,
		full_name TEXT,
		email TEXT UNIQUE,
		company TEXT,
		role TEXT,
		scored BOOLEAN NOT NULL DEFAULT 0,
		created_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		score INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scores_user_id ON scores(user_id)`,
	`CREATE TABLE IF NOT EXISTS survey_responses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		question_id INTEGER NOT NULL,
		answer TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_survey_responses_user_question ON survey_responses(user_id, question_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		uuid TEXT UNIQUE,
		full_name TEXT,
		email TEXT UNIQUE,
		company TEXT,
		role TEXT,
		scored BOOLEAN NOT NULL DEFAULT FALSE,
		created_date TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS scores (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		score INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scores_user_id ON scores(user_id)`,
	`CREATE TABLE IF NOT EXISTS survey_responses (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		question_id INTEGER NOT NULL,
		answer TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_survey_responses_user_question ON survey_responses(user_id, question_id)`,
}
