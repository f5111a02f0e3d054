// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// LabelRepository defines the secondary port for label persistence.
type LabelRepository interface {
	// Create persists a new label record.
	Create(ctx context.Context, label *LabelRecord) error

	// GetByID retrieves a label by its ID.
	GetByID(ctx context.Context, id string) (*LabelRecord, error)

	// GetBySerial retrieves the most recent label for a serial number.
	GetBySerial(ctx context.Context, serialNumber string) (*LabelRecord, error)

	// List retrieves labels matching the given filters, newest first.
	List(ctx context.Context, filters LabelFilters) ([]*LabelRecord, error)

	// CountBySerial returns the number of labels recorded for a serial number.
	CountBySerial(ctx context.Context, serialNumber string) (int, error)

	// GetNextID returns the next available label ID.
	GetNextID(ctx context.Context) (string, error)
}

// LabelRecord represents a generated label as stored in persistence.
type LabelRecord struct {
	ID            string
	SerialNumber  string
	PartNumber    string
	ServiceCycles int
	Payload       string
	Symbology     string
	ImageFormat   string
	ImagePath     string
	RunID         string // Empty string means null (label not part of a batch run)
	CreatedAt     string
}

// LabelFilters contains filter options for querying labels.
type LabelFilters struct {
	PartNumber   string
	SerialNumber string
	RunID        string
	Limit        int
}
