package label

import (
	"fmt"
	"strings"
)

// Supported symbologies.
const (
	SymbologyCode128 = "code128"
	SymbologyQR      = "qr"
)

// Supported image formats.
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
)

// NormalizeSymbology lowercases and validates a symbology identifier.
func NormalizeSymbology(s string) (string, error) {
	switch strings.ToLower(s) {
	case SymbologyCode128:
		return SymbologyCode128, nil
	case SymbologyQR:
		return SymbologyQR, nil
	}
	return "", fmt.Errorf("unsupported symbology '%s' (supported: %s, %s)", s, SymbologyCode128, SymbologyQR)
}

// NormalizeFormat lowercases and validates an image format identifier.
// JPEG is accepted as either 'jpeg' or 'jpg'.
func NormalizeFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case FormatJPEG, "jpg":
		return FormatJPEG, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unsupported image format '%s' (supported: %s, %s)", s, FormatJPEG, FormatPNG)
}

// FormatExtension returns the file extension for a normalized format,
// leading dot included.
func FormatExtension(format string) string {
	return "." + format
}
