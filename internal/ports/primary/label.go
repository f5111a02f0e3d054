// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces through which the CLI drives the
// application services.
package primary

import "context"

// LabelService defines the primary port for barcode label operations.
type LabelService interface {
	// GenerateLabel renders a label image for an explicit serial number.
	GenerateLabel(ctx context.Context, req GenerateLabelRequest) (*GenerateLabelResponse, error)

	// GenerateLabelWithDefaultCycles renders a label using the configured
	// default service cycle count.
	GenerateLabelWithDefaultCycles(ctx context.Context, req GenerateLabelWithDefaultCyclesRequest) (*GenerateLabelResponse, error)

	// GenerateLabelWithRandomSerial draws a random serial number and
	// renders a label for it.
	GenerateLabelWithRandomSerial(ctx context.Context, req GenerateLabelWithRandomSerialRequest) (*GenerateLabelResponse, error)

	// GenerateLabelBatch renders one label per distinct random serial,
	// all recorded under a shared run ID.
	GenerateLabelBatch(ctx context.Context, req GenerateLabelBatchRequest) (*GenerateLabelBatchResponse, error)

	// GetLabel retrieves a recorded label by ID.
	GetLabel(ctx context.Context, labelID string) (*Label, error)

	// GetLabelBySerial retrieves the most recent recorded label for a
	// serial number.
	GetLabelBySerial(ctx context.Context, serialNumber string) (*Label, error)

	// ListLabels retrieves recorded labels, newest first.
	ListLabels(ctx context.Context, req ListLabelsRequest) ([]*Label, error)
}

// GenerateLabelRequest contains parameters for rendering a single label.
// Empty Symbology or ImageFormat fall back to the configured defaults.
type GenerateLabelRequest struct {
	SerialNumber  string
	ServiceCycles int
	PartNumber    string
	Symbology     string
	ImageFormat   string
}

// GenerateLabelWithDefaultCyclesRequest omits the cycle count; the
// configured default is applied.
type GenerateLabelWithDefaultCyclesRequest struct {
	SerialNumber string
	PartNumber   string
	Symbology    string
	ImageFormat  string
}

// GenerateLabelWithRandomSerialRequest draws the serial number instead of
// receiving it. Empty SerialPrefix and zero SerialLength fall back to the
// configured defaults.
type GenerateLabelWithRandomSerialRequest struct {
	PartNumber    string
	ServiceCycles int
	SerialPrefix  string
	SerialLength  int
	Symbology     string
	ImageFormat   string
}

// GenerateLabelResponse contains the result of rendering one label.
// Path is the final image path as reported by the renderer, extension
// included.
type GenerateLabelResponse struct {
	LabelID      string
	SerialNumber string
	Payload      string
	Path         string
}

// GenerateLabelBatchRequest contains parameters for rendering a batch of
// labels with distinct random serials.
type GenerateLabelBatchRequest struct {
	Count         int
	PartNumber    string
	ServiceCycles int
	SerialPrefix  string
	SerialLength  int
	Symbology     string
	ImageFormat   string
}

// GenerateLabelBatchResponse contains the shared run ID and the per-label
// results.
type GenerateLabelBatchResponse struct {
	RunID  string
	Labels []*GenerateLabelResponse
}

// ListLabelsRequest contains filter options for listing recorded labels.
// Empty fields match all records.
type ListLabelsRequest struct {
	PartNumber   string
	SerialNumber string
	RunID        string
	Limit        int
}

// Label represents a recorded label at the port boundary.
type Label struct {
	ID            string
	SerialNumber  string
	PartNumber    string
	ServiceCycles int
	Payload       string
	Symbology     string
	ImageFormat   string
	ImagePath     string
	RunID         string
	CreatedAt     string
}
