// +build ignore

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	_ "github.com/mattn/go-sqlite3"
	qrcode "github.com/skip2/go-qrcode"
)

// Label represents a label record from the database
type Label struct {
	ID          string
	Payload     string
	Symbology   string
	ImageFormat string
	ImagePath   string
}

// Rendering dimensions for recovered images. Labels rendered with a
// custom config will come back at the stock size.
const (
	imageWidth  = 600
	imageHeight = 200
	jpegQuality = 95
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview recovery without writing images")
	flag.Parse()

	// Find partmark database
	dbPath := os.Getenv("PARTMARK_DB_PATH")
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
			os.Exit(1)
		}
		dbPath = filepath.Join(homeDir, ".partmark", "partmark.db")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Find recorded labels whose image file is gone
	labels, err := findMissingImages(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding labels: %v\n", err)
		os.Exit(1)
	}

	if len(labels) == 0 {
		fmt.Println("No missing images found")
		return
	}

	fmt.Printf("Found %d label(s) with missing images:\n\n", len(labels))

	for _, label := range labels {
		fmt.Printf("  %s: %s\n", label.ID, label.ImagePath)
		fmt.Printf("    -> %s %s from payload %s\n", label.Symbology, label.ImageFormat, label.Payload)
		fmt.Println()
	}

	if *dryRun {
		fmt.Println("=== DRY RUN - No changes made ===")
		return
	}

	fmt.Println("=== Re-rendering images ===")
	fmt.Println()

	recovered := 0
	for _, label := range labels {
		if err := rerender(label); err != nil {
			fmt.Fprintf(os.Stderr, "Error re-rendering %s: %v\n", label.ID, err)
			continue
		}

		fmt.Printf("✓ Re-rendered %s -> %s\n", label.ID, label.ImagePath)
		recovered++
	}

	fmt.Printf("\n=== Recovery complete: %d/%d images re-rendered ===\n", recovered, len(labels))
}

func findMissingImages(db *sql.DB) ([]Label, error) {
	query := `
		SELECT id, payload, symbology, image_format, image_path
		FROM labels
		ORDER BY created_at ASC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []Label
	for rows.Next() {
		var l Label
		err := rows.Scan(&l.ID, &l.Payload, &l.Symbology, &l.ImageFormat, &l.ImagePath)
		if err != nil {
			return nil, err
		}

		// Only include labels whose image file no longer exists
		if _, err := os.Stat(l.ImagePath); os.IsNotExist(err) {
			labels = append(labels, l)
		}
	}

	return labels, nil
}

func rerender(label Label) error {
	var img image.Image
	switch label.Symbology {
	case "qr":
		q, err := qrcode.New(label.Payload, qrcode.Medium)
		if err != nil {
			return fmt.Errorf("failed to encode qr payload: %w", err)
		}
		img = q.Image(imageWidth)
	default:
		bc, err := code128.Encode(label.Payload)
		if err != nil {
			return fmt.Errorf("failed to encode code128 payload: %w", err)
		}
		img, err = barcode.Scale(bc, imageWidth, imageHeight)
		if err != nil {
			return fmt.Errorf("failed to scale barcode: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(label.ImagePath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(label.ImagePath)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if label.ImageFormat == "png" {
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
		return nil
	}

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return nil
}
