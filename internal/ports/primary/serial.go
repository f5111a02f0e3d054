package primary

import "context"

// SerialService defines the primary port for serial number operations
// that do not render anything.
type SerialService interface {
	// NewSerial draws a single random serial number.
	NewSerial(ctx context.Context, req NewSerialRequest) (string, error)

	// NewSerialBatch draws count distinct random serial numbers.
	NewSerialBatch(ctx context.Context, req NewSerialBatchRequest) ([]string, error)
}

// NewSerialRequest contains parameters for drawing a serial number.
// An empty Prefix and zero Length fall back to the configured defaults.
type NewSerialRequest struct {
	Prefix string
	Length int
}

// NewSerialBatchRequest contains parameters for drawing a batch of
// distinct serial numbers.
type NewSerialBatchRequest struct {
	Count  int
	Prefix string
	Length int
}
