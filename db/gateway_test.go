// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/survey-score/cliparse"
	"github.com/danielhkuo/survey-score/db"
	"github.com/danielhkuo/survey-score/testutil"
)

func scanInt(s db.Scanner) (int, error) {
	var v int
	err := s.Scan(&v)
	return v, err
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	// SetupTestDB already ran it once
	if err := db.CreateSchema(context.Background(), conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}

	for _, table := range []string{"users", "scores", "survey_responses"} {
		if n := testutil.CountRows(t, conn, table); n != 0 {
			t.Errorf("Expected empty %s, got %d rows", table, n)
		}
	}
}

func TestCreateSchema_UnsupportedType(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if err := db.CreateSchema(context.Background(), conn, "mysql"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	cfg := testutil.GetTestConfig(t)
	cfg.DatabaseType = "mysql"

	if _, err := db.Open(context.Background(), cfg); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestGateway_Get(t *testing.T) {
	ctx := context.Background()
	g := db.NewGateway(testutil.SetupTestDB(t))

	if _, err := g.Run(ctx, `INSERT INTO scores (user_id, score) VALUES ($1, $2)`, 7, 90); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	t.Run("match", func(t *testing.T) {
		v, err := db.Get(ctx, g, scanInt, `SELECT score FROM scores WHERE user_id = $1`, 7)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if v != 90 {
			t.Errorf("Expected 90, got %d", v)
		}
	})

	t.Run("no match", func(t *testing.T) {
		_, err := db.Get(ctx, g, scanInt, `SELECT score FROM scores WHERE user_id = $1`, 8)
		if !errors.Is(err, db.ErrNoRecord) {
			t.Errorf("Expected ErrNoRecord, got %v", err)
		}
	})

	t.Run("malformed statement", func(t *testing.T) {
		_, err := db.Get(ctx, g, scanInt, `SELECT nope FROM nowhere`)
		if err == nil || errors.Is(err, db.ErrNoRecord) {
			t.Errorf("Expected storage error, got %v", err)
		}
	})
}

func TestGateway_All(t *testing.T) {
	ctx := context.Background()
	g := db.NewGateway(testutil.SetupTestDB(t))

	t.Run("empty result is not nil", func(t *testing.T) {
		items, err := db.All(ctx, g, scanInt, `SELECT score FROM scores WHERE user_id = $1`, 1)
		if err != nil {
			t.Fatalf("All failed: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("Expected empty non-nil slice, got %#v", items)
		}
	})

	t.Run("statement order", func(t *testing.T) {
		for _, s := range []int{30, 10, 20} {
			if _, err := g.Run(ctx, `INSERT INTO scores (user_id, score) VALUES ($1, $2)`, 1, s); err != nil {
				t.Fatalf("Insert failed: %v", err)
			}
		}

		items, err := db.All(ctx, g, scanInt, `SELECT score FROM scores WHERE user_id = $1 ORDER BY score`, 1)
		if err != nil {
			t.Fatalf("All failed: %v", err)
		}
		expected := []int{10, 20, 30}
		if len(items) != len(expected) {
			t.Fatalf("Expected %d items, got %d", len(expected), len(items))
		}
		for i := range expected {
			if items[i] != expected[i] {
				t.Errorf("Item %d: expected %d, got %d", i, expected[i], items[i])
			}
		}
	})
}

func TestGateway_Run(t *testing.T) {
	ctx := context.Background()
	g := db.NewGateway(testutil.SetupTestDB(t))

	n, err := g.Run(ctx, `UPDATE users SET scored = $1 WHERE uuid = $2`, true, "missing")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 rows affected, got %d", n)
	}

	if _, err := g.Run(ctx, `INSERT INTO nowhere VALUES (1)`); err == nil {
		t.Error("Expected error for unknown table")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	g := db.NewGateway(testutil.SetupTestDB(t))

	const insert = `INSERT INTO users (uuid, email) VALUES ($1, $2)`
	if _, err := g.Run(ctx, insert, "u-1", "dup@example.com"); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	_, err := g.Run(ctx, insert, "u-2", "dup@example.com")
	if err == nil {
		t.Fatal("Expected duplicate email to fail")
	}
	if !db.IsUniqueViolation(err) {
		t.Errorf("Expected unique violation, got %v", err)
	}

	if db.IsUniqueViolation(errors.New("something else")) {
		t.Error("Plain errors are not unique violations")
	}
}

func TestForeignKeys(t *testing.T) {
	ctx := context.Background()
	const orphan = `INSERT INTO scores (user_id, score) VALUES ($1, $2)`

	t.Run("off by default", func(t *testing.T) {
		g := db.NewGateway(testutil.SetupTestDB(t))
		if _, err := g.Run(ctx, orphan, 999, 1); err != nil {
			t.Errorf("Expected orphan insert to succeed, got %v", err)
		}
	})

	t.Run("enforced when enabled", func(t *testing.T) {
		cfg := testutil.GetTestConfig(t)
		cfg.ForeignKeys = true
		g := db.NewGateway(testutil.SetupTestDBWithConfig(t, cfg))

		if _, err := g.Run(ctx, orphan, 999, 1); err == nil {
			t.Error("Expected orphan insert to fail with foreign keys on")
		}
	})
}
