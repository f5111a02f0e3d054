package app

import (
	"context"

	"github.com/example/partmark/internal/config"
	"github.com/example/partmark/internal/core/serial"
	"github.com/example/partmark/internal/ports/primary"
)

// SerialServiceImpl implements the SerialService interface.
type SerialServiceImpl struct {
	serials *serial.Generator
	cfg     *config.Config
}

// NewSerialService creates a new SerialService with injected dependencies.
func NewSerialService(serials *serial.Generator, cfg *config.Config) *SerialServiceImpl {
	return &SerialServiceImpl{
		serials: serials,
		cfg:     cfg,
	}
}

// NewSerial draws a single random serial number.
func (s *SerialServiceImpl) NewSerial(ctx context.Context, req primary.NewSerialRequest) (string, error) {
	prefix, length := s.resolveShape(req.Prefix, req.Length)
	return s.serials.Generate(prefix, length), nil
}

// NewSerialBatch draws count distinct random serial numbers.
func (s *SerialServiceImpl) NewSerialBatch(ctx context.Context, req primary.NewSerialBatchRequest) ([]string, error) {
	prefix, length := s.resolveShape(req.Prefix, req.Length)
	return s.serials.GenerateBatch(req.Count, prefix, length)
}

// resolveShape fills empty prefix and zero length from config.
func (s *SerialServiceImpl) resolveShape(prefix string, length int) (string, int) {
	if prefix == "" {
		prefix = s.cfg.SerialPrefix
	}
	if length == 0 {
		length = s.cfg.SerialLength
	}
	return prefix, length
}

// Ensure SerialServiceImpl implements the interface.
var _ primary.SerialService = (*SerialServiceImpl)(nil)
