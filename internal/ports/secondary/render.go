package secondary

import "context"

// SymbolRenderer defines the secondary port for rasterizing label
// payloads into image files.
type SymbolRenderer interface {
	// Render encodes the payload in the requested symbology, writes the
	// image under the renderer's output directory, and returns the final
	// file path, extension included. Encoding and filesystem failures
	// surface unchanged.
	Render(ctx context.Context, req RenderRequest) (string, error)

	// OutputDir returns the directory the renderer writes into.
	OutputDir() string
}

// RenderRequest contains parameters for rendering one label image.
// FileStem is the target file name without extension; the renderer
// appends the extension for ImageFormat.
type RenderRequest struct {
	Symbology   string
	Payload     string
	ImageFormat string
	FileStem    string
}
