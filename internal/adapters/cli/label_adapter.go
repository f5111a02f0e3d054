// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/example/partmark/internal/ports/primary"
)

// LabelAdapter is a thin adapter that translates CLI operations to LabelService calls.
// It depends only on the LabelService interface, enabling easy testing with mocks.
type LabelAdapter struct {
	service primary.LabelService
	out     io.Writer
}

// NewLabelAdapter creates a new LabelAdapter with the given service.
func NewLabelAdapter(service primary.LabelService, out io.Writer) *LabelAdapter {
	return &LabelAdapter{
		service: service,
		out:     out,
	}
}

// List prints recorded labels matching the filters, newest first.
func (a *LabelAdapter) List(ctx context.Context, req primary.ListLabelsRequest) error {
	labels, err := a.service.ListLabels(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list labels: %w", err)
	}

	if len(labels) == 0 {
		fmt.Fprintln(a.out, "No labels found")
		return nil
	}

	fmt.Fprintf(a.out, "Found %d label(s):\n\n", len(labels))
	for _, l := range labels {
		runMarker := ""
		if l.RunID != "" {
			runMarker = color.New(color.FgCyan).Sprintf("  [run %s]", shortRunID(l.RunID))
		}
		fmt.Fprintf(a.out, "%-9s %-14s %-14s %6d  %s%s\n",
			l.ID, l.SerialNumber, l.PartNumber, l.ServiceCycles, formatCreatedAt(l.CreatedAt), runMarker)
	}

	return nil
}

// Show displays details for a single label by ID.
func (a *LabelAdapter) Show(ctx context.Context, labelID string) (*primary.Label, error) {
	label, err := a.service.GetLabel(ctx, labelID)
	if err != nil {
		return nil, err
	}

	a.printDetail(label)
	return label, nil
}

// ShowBySerial displays the most recent recorded label for a serial number.
func (a *LabelAdapter) ShowBySerial(ctx context.Context, serialNumber string) (*primary.Label, error) {
	label, err := a.service.GetLabelBySerial(ctx, serialNumber)
	if err != nil {
		return nil, err
	}

	a.printDetail(label)
	return label, nil
}

func (a *LabelAdapter) printDetail(l *primary.Label) {
	fmt.Fprintf(a.out, "Label: %s\n", l.ID)
	fmt.Fprintf(a.out, "  Serial:    %s\n", l.SerialNumber)
	fmt.Fprintf(a.out, "  Part:      %s\n", l.PartNumber)
	fmt.Fprintf(a.out, "  Cycles:    %d\n", l.ServiceCycles)
	fmt.Fprintf(a.out, "  Payload:   %s\n", l.Payload)
	fmt.Fprintf(a.out, "  Symbology: %s (%s)\n", l.Symbology, l.ImageFormat)
	fmt.Fprintf(a.out, "  Image:     %s %s\n", l.ImagePath, imageStatus(l.ImagePath))
	if l.RunID != "" {
		fmt.Fprintf(a.out, "  Run:       %s\n", l.RunID)
	}
	fmt.Fprintf(a.out, "  Created:   %s\n", formatCreatedAt(l.CreatedAt))
}

// formatCreatedAt renders a stored RFC3339 timestamp for table output.
// Unparseable values pass through untouched.
func formatCreatedAt(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02 15:04")
}

// shortRunID abbreviates a run UUID to its first block.
func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}

// imageStatus reports whether the recorded image file still exists.
func imageStatus(path string) string {
	if _, err := os.Stat(path); err != nil {
		return color.New(color.FgYellow).Sprint("(missing)")
	}
	return color.New(color.FgGreen).Sprint("(present)")
}
