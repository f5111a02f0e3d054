// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/partmark/internal/ports/secondary"
)

// LabelRepository implements secondary.LabelRepository with SQLite.
type LabelRepository struct {
	db *sql.DB
}

// NewLabelRepository creates a new SQLite label repository.
func NewLabelRepository(db *sql.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// scanLabel scans a label row into a LabelRecord.
func scanLabel(scanner interface {
	Scan(dest ...any) error
}) (*secondary.LabelRecord, error) {
	var (
		runID     sql.NullString
		createdAt time.Time
	)

	record := &secondary.LabelRecord{}
	err := scanner.Scan(
		&record.ID, &record.SerialNumber, &record.PartNumber, &record.ServiceCycles,
		&record.Payload, &record.Symbology, &record.ImageFormat, &record.ImagePath,
		&runID, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.RunID = runID.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

const labelSelectCols = "id, serial_number, part_number, service_cycles, payload, symbology, image_format, image_path, run_id, created_at"

// Create persists a new label.
func (r *LabelRepository) Create(ctx context.Context, label *secondary.LabelRecord) error {
	var runID sql.NullString
	if label.RunID != "" {
		runID = sql.NullString{String: label.RunID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO labels (id, serial_number, part_number, service_cycles, payload, symbology, image_format, image_path, run_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		label.ID, label.SerialNumber, label.PartNumber, label.ServiceCycles,
		label.Payload, label.Symbology, label.ImageFormat, label.ImagePath, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to create label: %w", err)
	}

	return nil
}

// GetByID retrieves a label by its ID.
func (r *LabelRepository) GetByID(ctx context.Context, id string) (*secondary.LabelRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+labelSelectCols+" FROM labels WHERE id = ?",
		id,
	)

	record, err := scanLabel(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("label %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get label: %w", err)
	}

	return record, nil
}

// GetBySerial retrieves the most recent label for a serial number.
func (r *LabelRepository) GetBySerial(ctx context.Context, serialNumber string) (*secondary.LabelRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+labelSelectCols+" FROM labels WHERE serial_number = ? ORDER BY created_at DESC, id DESC LIMIT 1",
		serialNumber,
	)

	record, err := scanLabel(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("label for serial %s not found", serialNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get label: %w", err)
	}

	return record, nil
}

// List retrieves labels matching the given filters, newest first.
func (r *LabelRepository) List(ctx context.Context, filters secondary.LabelFilters) ([]*secondary.LabelRecord, error) {
	query := "SELECT " + labelSelectCols + " FROM labels WHERE 1=1"
	args := []any{}

	if filters.PartNumber != "" {
		query += " AND part_number = ?"
		args = append(args, filters.PartNumber)
	}

	if filters.SerialNumber != "" {
		query += " AND serial_number = ?"
		args = append(args, filters.SerialNumber)
	}

	if filters.RunID != "" {
		query += " AND run_id = ?"
		args = append(args, filters.RunID)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	defer rows.Close()

	var labels []*secondary.LabelRecord
	for rows.Next() {
		record, err := scanLabel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, record)
	}

	return labels, nil
}

// CountBySerial returns the number of labels recorded for a serial number.
func (r *LabelRepository) CountBySerial(ctx context.Context, serialNumber string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM labels WHERE serial_number = ?",
		serialNumber,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count labels: %w", err)
	}

	return count, nil
}

// GetNextID returns the next available label ID.
func (r *LabelRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM labels",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next label ID: %w", err)
	}

	return fmt.Sprintf("LBL-%03d", maxID+1), nil
}

// Ensure LabelRepository implements the interface.
var _ secondary.LabelRepository = (*LabelRepository)(nil)
