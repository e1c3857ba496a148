// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and executes statements.

# Connecting

Open picks the driver from the configuration and pings the database:

	conn, err := db.Open(ctx, cfg)

  - sqlite: modernc.org/sqlite, DatabaseURL is a file path. The pool is
    limited to one connection and every connection gets busy_timeout and
    foreign_keys pragmas.
  - postgres: github.com/lib/pq, DatabaseURL is a connection string.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: registered users, unique uuid and email
  - scores: integer scores per user
  - survey_responses: free-text answers per user and question

# Relationships

	users 1──* scores
	users 1──* survey_responses

# Gateway

Gateway runs one parameterized statement per call in one of three modes:

	user, err := db.Get(ctx, g, scanUser, "SELECT ... WHERE uuid = $1", uuid)
	list, err := db.All(ctx, g, scanResponse, "SELECT ... ORDER BY question_id", id)
	n, err := g.Run(ctx, "UPDATE users SET scored = $1 WHERE uuid = $2", true, uuid)

Get returns ErrNoRecord when nothing matched. Statements use $n
placeholders, which both drivers accept.
*/
package db
