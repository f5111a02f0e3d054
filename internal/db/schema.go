package db

// SchemaSQL is the complete modern schema for fresh partmark installs.
// This schema reflects the current state after all migrations.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(), which provides two layers of protection:
//
//  1. No hardcoded schemas: tests must use db.GetSchemaSQL() instead of
//     their own CREATE TABLE statements.
//
//  2. Immediate failure on drift: if repository code references a column that
//     doesn't exist in this schema, tests fail immediately with "no such column".
//     This catches drift at development time, not production.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
//  3. Run `make test` to verify alignment
const SchemaSQL = `
-- Labels (one row per generated label image)
CREATE TABLE IF NOT EXISTS labels (
	id TEXT PRIMARY KEY,
	serial_number TEXT NOT NULL,
	part_number TEXT NOT NULL,
	service_cycles INTEGER NOT NULL,
	payload TEXT NOT NULL,
	symbology TEXT NOT NULL CHECK(symbology IN ('code128', 'qr')) DEFAULT 'code128',
	image_format TEXT NOT NULL CHECK(image_format IN ('jpeg', 'png')) DEFAULT 'jpeg',
	image_path TEXT NOT NULL,
	run_id TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_labels_serial ON labels(serial_number);
CREATE INDEX IF NOT EXISTS idx_labels_part ON labels(part_number);
CREATE INDEX IF NOT EXISTS idx_labels_run ON labels(run_id);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Completely fresh install - create the modern schema directly and
		// mark all migrations as applied so they never re-run.
		_, err = db.Exec(SchemaSQL)
		if err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, migration := range migrations {
			_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
			if err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
