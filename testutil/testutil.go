// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/survey-score/cliparse"
	"github.com/danielhkuo/survey-score/db"
	"github.com/danielhkuo/survey-score/models"
	"github.com/danielhkuo/survey-score/queries"
)

// GetTestConfig returns a configuration pointing at a fresh SQLite file
// in the test's temp dir
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  filepath.Join(t.TempDir(), "test.db"),
		DatabaseType: cliparse.DatabaseSQLite,
	}
}

// SetupTestDB opens a fresh SQLite database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return SetupTestDBWithConfig(t, GetTestConfig(t))
}

// SetupTestDBWithConfig is SetupTestDB for a caller-tuned configuration,
// e.g. with ForeignKeys on
func SetupTestDBWithConfig(t *testing.T, cfg cliparse.Config) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestStore returns a query store over a fresh database
func NewTestStore(t *testing.T) (*queries.Store, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	return queries.NewStore(db.NewGateway(conn)), conn
}

// CreateTestUser registers a user and returns its uuid and internal id
func CreateTestUser(t *testing.T, store *queries.Store, email string) (string, int64) {
	t.Helper()

	ctx := context.Background()
	userUUID, err := store.CreateUser(ctx, models.NewUser{
		FullName: Ptr("Test User"),
		Email:    Ptr(email),
		Company:  Ptr("Acme"),
		Role:     Ptr("Engineer"),
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	user, err := store.GetUserByUUID(ctx, userUUID)
	if err != nil {
		t.Fatalf("Failed to read back test user: %v", err)
	}

	return userUUID, user.ID
}

// Ptr returns a pointer to v, for filling optional request fields
func Ptr[T any](v T) *T {
	return &v
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
