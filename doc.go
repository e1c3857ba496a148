// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the survey-score API server.

survey-score registers users, records their survey answers and stores
their scores in SQLite (default) or PostgreSQL.

# Starting the Server

With no configuration the server listens on :3000 and stores data in
./database.db:

	go run .

Or with flags:

	go run . -p 8080 -d /var/lib/survey/data.db -fk
	go run . -t postgres -d "postgres://..."

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: ./database.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - FOREIGN_KEYS (-fk): reject scores and answers for unknown users (SQLite)
  - ENV_FILE (-env): .env file to load first (default: .env)

# Architecture

  - db: connection, schema and the statement gateway
  - queries: named user, score and survey operations
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
