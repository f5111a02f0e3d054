// Package wire provides dependency injection for the partmark application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/partmark/internal/adapters/cli"
	"github.com/example/partmark/internal/adapters/render"
	"github.com/example/partmark/internal/adapters/sqlite"
	"github.com/example/partmark/internal/app"
	"github.com/example/partmark/internal/config"
	"github.com/example/partmark/internal/core/serial"
	"github.com/example/partmark/internal/db"
	"github.com/example/partmark/internal/ports/primary"
)

var (
	cfg           *config.Config
	labelService  primary.LabelService
	serialService primary.SerialService
	once          sync.Once
)

// Config returns the singleton configuration, loaded from the working
// directory or built from defaults.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// LabelService returns the singleton LabelService instance.
func LabelService() primary.LabelService {
	once.Do(initServices)
	return labelService
}

// SerialService returns the singleton SerialService instance.
func SerialService() primary.SerialService {
	once.Do(initServices)
	return serialService
}

// LabelAdapter returns a new LabelAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func LabelAdapter() *cliadapter.LabelAdapter {
	return LabelAdapterWithOutput(os.Stdout)
}

// LabelAdapterWithOutput returns a new LabelAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func LabelAdapterWithOutput(out io.Writer) *cliadapter.LabelAdapter {
	once.Do(initServices)
	return cliadapter.NewLabelAdapter(labelService, out)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Load config from cwd, falling back to defaults
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to determine working directory: %v", err)
	}
	cfg = config.LoadOrDefault(cwd)

	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create adapters (secondary ports)
	labelRepo := sqlite.NewLabelRepository(database)
	renderer, err := render.NewImageRenderer(cfg.OutputDir, cfg.ImageWidth, cfg.ImageHeight)
	if err != nil {
		log.Fatalf("failed to initialize renderer: %v", err)
	}

	// Create services (primary ports implementation)
	serials := serial.NewGenerator()
	labelService = app.NewLabelService(labelRepo, renderer, serials, cfg)
	serialService = app.NewSerialService(serials, cfg)
}
