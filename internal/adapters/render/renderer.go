// Package render contains the image renderer adapter. It rasterizes label
// payloads into barcode image files on disk.
package render

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/example/partmark/internal/core/label"
	"github.com/example/partmark/internal/ports/secondary"
)

// jpegQuality is the encoder quality for JPEG label images.
const jpegQuality = 95

// ImageRenderer implements secondary.SymbolRenderer with the code128 and
// qr encoders, writing one image file per rendered label.
type ImageRenderer struct {
	outputDir string
	width     int
	height    int
}

// NewImageRenderer creates a renderer that writes into outputDir, creating
// the directory if needed. Width and height size one-dimensional symbols;
// QR codes use width as their square size.
func NewImageRenderer(outputDir string, width, height int) (*ImageRenderer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &ImageRenderer{
		outputDir: outputDir,
		width:     width,
		height:    height,
	}, nil
}

// Render encodes the payload in the requested symbology and writes the
// image file. Returns the final path, extension included.
func (r *ImageRenderer) Render(ctx context.Context, req secondary.RenderRequest) (string, error) {
	img, err := r.encode(req.Symbology, req.Payload)
	if err != nil {
		return "", err
	}

	path := filepath.Join(r.outputDir, req.FileStem+label.FormatExtension(req.ImageFormat))
	if err := r.writeImage(path, img, req.ImageFormat); err != nil {
		return "", err
	}

	return path, nil
}

// OutputDir returns the directory the renderer writes into.
func (r *ImageRenderer) OutputDir() string {
	return r.outputDir
}

// encode rasterizes the payload in the requested symbology.
func (r *ImageRenderer) encode(symbology, payload string) (image.Image, error) {
	switch symbology {
	case label.SymbologyCode128:
		bc, err := code128.Encode(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode code128 payload: %w", err)
		}
		scaled, err := barcode.Scale(bc, r.width, r.height)
		if err != nil {
			return nil, fmt.Errorf("failed to scale barcode: %w", err)
		}
		return scaled, nil

	case label.SymbologyQR:
		q, err := qrcode.New(payload, qrcode.Medium)
		if err != nil {
			return nil, fmt.Errorf("failed to encode qr payload: %w", err)
		}
		return q.Image(r.width), nil
	}

	return nil, fmt.Errorf("unsupported symbology '%s'", symbology)
}

// writeImage encodes img in the requested format and writes it to path.
func (r *ImageRenderer) writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	switch format {
	case label.FormatJPEG:
		if encErr := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); encErr != nil {
			f.Close()
			return fmt.Errorf("failed to encode jpeg: %w", encErr)
		}
	case label.FormatPNG:
		if encErr := png.Encode(f, img); encErr != nil {
			f.Close()
			return fmt.Errorf("failed to encode png: %w", encErr)
		}
	default:
		f.Close()
		return fmt.Errorf("unsupported image format '%s'", format)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}

	return nil
}

// Ensure ImageRenderer implements the interface
var _ secondary.SymbolRenderer = (*ImageRenderer)(nil)
