// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: ./database.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - ForeignKeys: enforce foreign keys on SQLite (default: false)
  - EnvFile: .env file loaded before env fallbacks (default: .env)

# CLI Flags

	-p    Server port
	-d    Database URL
	-t    Database type
	-fk   Enforce foreign keys (SQLite)
	-env  Path to .env file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	FOREIGN_KEYS  → -fk
	ENV_FILE      → -env

CLI flags take precedence over environment variables, and variables already
present in the environment take precedence over the .env file.

# Validation

ParseFlags returns an error if:

  - PORT or FOREIGN_KEYS cannot be parsed
  - DATABASE_TYPE is not sqlite or postgres
  - DATABASE_TYPE is postgres and no DATABASE_URL is given
*/
package cliparse
