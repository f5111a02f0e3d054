// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/partmark/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedLabel inserts a test label and returns its ID.
func seedLabel(t *testing.T, db *sql.DB, id, serial, part string) string {
	t.Helper()
	if id == "" {
		id = "LBL-001"
	}
	if serial == "" {
		serial = "SN12345678"
	}
	if part == "" {
		part = "GEAR-7"
	}
	payload := "SN:" + serial + "|SC:1000|PN:" + part
	_, err := db.Exec(
		"INSERT INTO labels (id, serial_number, part_number, service_cycles, payload, image_path) VALUES (?, ?, ?, 1000, ?, 'barcodes/"+id+".jpeg')",
		id, serial, part, payload,
	)
	if err != nil {
		t.Fatalf("failed to seed label: %v", err)
	}
	return id
}
