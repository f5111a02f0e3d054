package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when no config file is present or a field is unset.
const (
	DefaultOutputDir     = "barcodes"
	DefaultSymbology     = "code128"
	DefaultImageFormat   = "jpeg"
	DefaultImageWidth    = 600
	DefaultImageHeight   = 200
	DefaultSerialPrefix  = "SN"
	DefaultSerialLength  = 8
	DefaultServiceCycles = 1000
)

// Config represents the flat partmark configuration
type Config struct {
	Version       string `json:"version"`
	OutputDir     string `json:"output_dir"`     // directory label images are written into
	Symbology     string `json:"symbology"`      // "code128" or "qr"
	ImageFormat   string `json:"image_format"`   // "jpeg" or "png"
	ImageWidth    int    `json:"image_width"`    // pixels; QR uses width as its square size
	ImageHeight   int    `json:"image_height"`   // pixels
	SerialPrefix  string `json:"serial_prefix"`  // prefix for random serials
	SerialLength  int    `json:"serial_length"`  // digit count for random serials
	DefaultCycles int    `json:"default_cycles"` // service cycles when not specified
}

// DefaultConfig returns the built-in configuration. Generation works
// without a config file, so every field has a usable value.
func DefaultConfig() *Config {
	return &Config{
		Version:       "1.0",
		OutputDir:     DefaultOutputDir,
		Symbology:     DefaultSymbology,
		ImageFormat:   DefaultImageFormat,
		ImageWidth:    DefaultImageWidth,
		ImageHeight:   DefaultImageHeight,
		SerialPrefix:  DefaultSerialPrefix,
		SerialLength:  DefaultSerialLength,
		DefaultCycles: DefaultServiceCycles,
	}
}

// LoadConfig reads .partmark/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".partmark", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault reads the config if present and falls back to the
// built-in defaults when it is missing or unreadable.
func LoadOrDefault(dir string) *Config {
	cfg, err := LoadConfig(dir)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	partmarkDir := filepath.Join(dir, ".partmark")
	if err := os.MkdirAll(partmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create .partmark dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(partmarkDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyDefaults fills unset fields so partial config files stay usable.
func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Symbology == "" {
		c.Symbology = DefaultSymbology
	}
	if c.ImageFormat == "" {
		c.ImageFormat = DefaultImageFormat
	}
	if c.ImageWidth == 0 {
		c.ImageWidth = DefaultImageWidth
	}
	if c.ImageHeight == 0 {
		c.ImageHeight = DefaultImageHeight
	}
	if c.SerialPrefix == "" {
		c.SerialPrefix = DefaultSerialPrefix
	}
	if c.SerialLength == 0 {
		c.SerialLength = DefaultSerialLength
	}
	if c.DefaultCycles == 0 {
		c.DefaultCycles = DefaultServiceCycles
	}
}
