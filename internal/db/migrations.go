package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_labels_table",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_symbology_and_image_format",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_run_id_and_lookup_indexes",
		Up:      migrationV3,
	},
}

// LatestVersion returns the highest known migration version.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	// Create schema_version table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		// Begin transaction
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		// Run migration
		if err := migration.Up(db); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		// Record migration
		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		// Commit transaction
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 creates the original labels table (before symbology tracking)
func migrationV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS labels (
			id TEXT PRIMARY KEY,
			serial_number TEXT NOT NULL,
			part_number TEXT NOT NULL,
			service_cycles INTEGER NOT NULL,
			payload TEXT NOT NULL,
			image_path TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create labels table: %w", err)
	}
	return nil
}

// migrationV2 records which symbology and image format produced each label
func migrationV2(db *sql.DB) error {
	_, err := db.Exec(`ALTER TABLE labels ADD COLUMN symbology TEXT NOT NULL CHECK(symbology IN ('code128', 'qr')) DEFAULT 'code128'`)
	if err != nil {
		return fmt.Errorf("failed to add symbology column: %w", err)
	}

	_, err = db.Exec(`ALTER TABLE labels ADD COLUMN image_format TEXT NOT NULL CHECK(image_format IN ('jpeg', 'png')) DEFAULT 'jpeg'`)
	if err != nil {
		return fmt.Errorf("failed to add image_format column: %w", err)
	}

	return nil
}

// migrationV3 adds batch run tracking and lookup indexes
func migrationV3(db *sql.DB) error {
	_, err := db.Exec(`ALTER TABLE labels ADD COLUMN run_id TEXT`)
	if err != nil {
		return fmt.Errorf("failed to add run_id column: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_labels_serial ON labels(serial_number)`,
		`CREATE INDEX IF NOT EXISTS idx_labels_part ON labels(part_number)`,
		`CREATE INDEX IF NOT EXISTS idx_labels_run ON labels(run_id)`,
	}
	for _, stmt := range indexes {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
