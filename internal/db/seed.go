package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures.
// The data mirrors a small shop floor: a few singleton labels plus one
// batch run sharing a run ID.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)

	singles := []struct {
		id     string
		serial string
		part   string
		cycles int
	}{
		{"LBL-001", "SN12345678", "GEAR-7", 5000},
		{"LBL-002", "SN00881234", "HOUSING-A1", 1000},
	}
	for _, l := range singles {
		payload := fmt.Sprintf("SN:%s|SC:%d|PN:%s", l.serial, l.cycles, l.part)
		imagePath := fmt.Sprintf("barcodes/barcode_%s_20240115090507.jpeg", l.serial)
		if _, err := database.Exec(
			`INSERT INTO labels (id, serial_number, part_number, service_cycles, payload, symbology, image_format, image_path, created_at)
			 VALUES (?, ?, ?, ?, ?, 'code128', 'jpeg', ?, ?)`,
			l.id, l.serial, l.part, l.cycles, payload, imagePath, now,
		); err != nil {
			return fmt.Errorf("seed labels: %w", err)
		}
	}

	// One batch run of three labels for the same part
	runID := "3f2d8a1e-6c54-4b8e-9a7d-0b1c2d3e4f50"
	batch := []struct {
		id     string
		serial string
	}{
		{"LBL-003", "SN55501001"},
		{"LBL-004", "SN55501002"},
		{"LBL-005", "SN55501003"},
	}
	for _, l := range batch {
		payload := fmt.Sprintf("SN:%s|SC:1000|PN:SHAFT-B2", l.serial)
		imagePath := fmt.Sprintf("barcodes/barcode_%s_20240116141500.jpeg", l.serial)
		if _, err := database.Exec(
			`INSERT INTO labels (id, serial_number, part_number, service_cycles, payload, symbology, image_format, image_path, run_id, created_at)
			 VALUES (?, ?, 'SHAFT-B2', 1000, ?, 'code128', 'jpeg', ?, ?, ?)`,
			l.id, l.serial, payload, imagePath, runID, now,
		); err != nil {
			return fmt.Errorf("seed batch labels: %w", err)
		}
	}

	return nil
}
