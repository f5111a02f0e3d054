package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/partmark/internal/config"
	"github.com/example/partmark/internal/core/label"
	"github.com/example/partmark/internal/core/serial"
	"github.com/example/partmark/internal/ports/primary"
	"github.com/example/partmark/internal/ports/secondary"
)

// LabelServiceImpl implements the LabelService interface.
type LabelServiceImpl struct {
	labelRepo secondary.LabelRepository
	renderer  secondary.SymbolRenderer
	serials   *serial.Generator
	cfg       *config.Config
}

// NewLabelService creates a new LabelService with injected dependencies.
func NewLabelService(
	labelRepo secondary.LabelRepository,
	renderer secondary.SymbolRenderer,
	serials *serial.Generator,
	cfg *config.Config,
) *LabelServiceImpl {
	return &LabelServiceImpl{
		labelRepo: labelRepo,
		renderer:  renderer,
		serials:   serials,
		cfg:       cfg,
	}
}

// GenerateLabel renders a label image for an explicit serial number and
// records the emission in the ledger.
func (s *LabelServiceImpl) GenerateLabel(ctx context.Context, req primary.GenerateLabelRequest) (*primary.GenerateLabelResponse, error) {
	symbology, format, err := s.resolveRendering(req.Symbology, req.ImageFormat)
	if err != nil {
		return nil, err
	}

	return s.generateOne(ctx, req.SerialNumber, req.ServiceCycles, req.PartNumber, symbology, format, "")
}

// GenerateLabelWithDefaultCycles renders a label using the configured
// default service cycle count.
func (s *LabelServiceImpl) GenerateLabelWithDefaultCycles(ctx context.Context, req primary.GenerateLabelWithDefaultCyclesRequest) (*primary.GenerateLabelResponse, error) {
	return s.GenerateLabel(ctx, primary.GenerateLabelRequest{
		SerialNumber:  req.SerialNumber,
		ServiceCycles: s.cfg.DefaultCycles,
		PartNumber:    req.PartNumber,
		Symbology:     req.Symbology,
		ImageFormat:   req.ImageFormat,
	})
}

// GenerateLabelWithRandomSerial draws a random serial number and renders a
// label for it. The response carries the serial that was drawn.
func (s *LabelServiceImpl) GenerateLabelWithRandomSerial(ctx context.Context, req primary.GenerateLabelWithRandomSerialRequest) (*primary.GenerateLabelResponse, error) {
	prefix, length := s.resolveSerialShape(req.SerialPrefix, req.SerialLength)
	serialNumber := s.serials.Generate(prefix, length)

	return s.GenerateLabel(ctx, primary.GenerateLabelRequest{
		SerialNumber:  serialNumber,
		ServiceCycles: req.ServiceCycles,
		PartNumber:    req.PartNumber,
		Symbology:     req.Symbology,
		ImageFormat:   req.ImageFormat,
	})
}

// GenerateLabelBatch renders one label per distinct random serial, all
// recorded under a shared run ID.
func (s *LabelServiceImpl) GenerateLabelBatch(ctx context.Context, req primary.GenerateLabelBatchRequest) (*primary.GenerateLabelBatchResponse, error) {
	symbology, format, err := s.resolveRendering(req.Symbology, req.ImageFormat)
	if err != nil {
		return nil, err
	}

	prefix, length := s.resolveSerialShape(req.SerialPrefix, req.SerialLength)
	serials, err := s.serials.GenerateBatch(req.Count, prefix, length)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()

	labels := make([]*primary.GenerateLabelResponse, 0, len(serials))
	for _, serialNumber := range serials {
		resp, err := s.generateOne(ctx, serialNumber, req.ServiceCycles, req.PartNumber, symbology, format, runID)
		if err != nil {
			return nil, err
		}
		labels = append(labels, resp)
	}

	return &primary.GenerateLabelBatchResponse{
		RunID:  runID,
		Labels: labels,
	}, nil
}

// GetLabel retrieves a recorded label by ID.
func (s *LabelServiceImpl) GetLabel(ctx context.Context, labelID string) (*primary.Label, error) {
	record, err := s.labelRepo.GetByID(ctx, labelID)
	if err != nil {
		return nil, err
	}
	return recordToLabel(record), nil
}

// GetLabelBySerial retrieves the most recent recorded label for a serial
// number.
func (s *LabelServiceImpl) GetLabelBySerial(ctx context.Context, serialNumber string) (*primary.Label, error) {
	record, err := s.labelRepo.GetBySerial(ctx, serialNumber)
	if err != nil {
		return nil, err
	}
	return recordToLabel(record), nil
}

// ListLabels retrieves recorded labels, newest first.
func (s *LabelServiceImpl) ListLabels(ctx context.Context, req primary.ListLabelsRequest) ([]*primary.Label, error) {
	records, err := s.labelRepo.List(ctx, secondary.LabelFilters{
		PartNumber:   req.PartNumber,
		SerialNumber: req.SerialNumber,
		RunID:        req.RunID,
		Limit:        req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	labels := make([]*primary.Label, len(records))
	for i, r := range records {
		labels[i] = recordToLabel(r)
	}
	return labels, nil
}

// generateOne builds the payload and file stem, renders the image, and
// records the emission. Shared by the single and batch paths; symbology
// and format arrive already normalized.
func (s *LabelServiceImpl) generateOne(ctx context.Context, serialNumber string, serviceCycles int, partNumber, symbology, format, runID string) (*primary.GenerateLabelResponse, error) {
	// Build payload
	payload := label.Payload{
		SerialNumber:  serialNumber,
		ServiceCycles: serviceCycles,
		PartNumber:    partNumber,
	}.Encode()

	// Build file stem from the sanitized serial and the current time
	stem := label.FileStem(serialNumber, time.Now())

	// Render the image
	path, err := s.renderer.Render(ctx, secondary.RenderRequest{
		Symbology:   symbology,
		Payload:     payload,
		ImageFormat: format,
		FileStem:    stem,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render label: %w", err)
	}

	// Get next ID
	nextID, err := s.labelRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate label ID: %w", err)
	}

	// Record the emission
	record := &secondary.LabelRecord{
		ID:            nextID,
		SerialNumber:  serialNumber,
		PartNumber:    partNumber,
		ServiceCycles: serviceCycles,
		Payload:       payload,
		Symbology:     symbology,
		ImageFormat:   format,
		ImagePath:     path,
		RunID:         runID,
	}

	if err := s.labelRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record label: %w", err)
	}

	return &primary.GenerateLabelResponse{
		LabelID:      nextID,
		SerialNumber: serialNumber,
		Payload:      payload,
		Path:         path,
	}, nil
}

// resolveRendering fills empty symbology and format from config and
// normalizes both.
func (s *LabelServiceImpl) resolveRendering(symbology, format string) (string, string, error) {
	if symbology == "" {
		symbology = s.cfg.Symbology
	}
	if format == "" {
		format = s.cfg.ImageFormat
	}

	symbology, err := label.NormalizeSymbology(symbology)
	if err != nil {
		return "", "", err
	}
	format, err = label.NormalizeFormat(format)
	if err != nil {
		return "", "", err
	}

	return symbology, format, nil
}

// resolveSerialShape fills empty prefix and zero length from config.
func (s *LabelServiceImpl) resolveSerialShape(prefix string, length int) (string, int) {
	if prefix == "" {
		prefix = s.cfg.SerialPrefix
	}
	if length == 0 {
		length = s.cfg.SerialLength
	}
	return prefix, length
}

// Helper methods

func recordToLabel(r *secondary.LabelRecord) *primary.Label {
	return &primary.Label{
		ID:            r.ID,
		SerialNumber:  r.SerialNumber,
		PartNumber:    r.PartNumber,
		ServiceCycles: r.ServiceCycles,
		Payload:       r.Payload,
		Symbology:     r.Symbology,
		ImageFormat:   r.ImageFormat,
		ImagePath:     r.ImagePath,
		RunID:         r.RunID,
		CreatedAt:     r.CreatedAt,
	}
}

// Ensure LabelServiceImpl implements the interface.
var _ primary.LabelService = (*LabelServiceImpl)(nil)
