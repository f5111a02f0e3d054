package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/partmark/internal/config"
	"github.com/example/partmark/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the partmark database and config",
		Long: `Initialize the partmark database at ~/.partmark/partmark.db, write a
config scaffold to .partmark/config.json in the current directory, and
create the output directory for label images.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing partmark database at %s\n", dbPath)

			// Initialize schema
			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			// Write config scaffold unless one already exists
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine working directory: %w", err)
			}

			cfg, err := initConfig(cwd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			fmt.Println("✓ Config ready at .partmark/config.json")

			// Create the output directory
			if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			fmt.Printf("✓ Output directory ready at %s\n", cfg.OutputDir)

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  partmark generate --serial SN12345 --part GEAR-7")
			fmt.Println("  partmark history")

			return nil
		},
	}
}

// initConfig writes the default config scaffold if none exists and returns
// the effective config.
func initConfig(dir string) (*config.Config, error) {
	path := filepath.Join(dir, ".partmark", "config.json")
	if _, err := os.Stat(path); err == nil {
		// Already exists, leave it untouched
		return config.LoadOrDefault(dir), nil
	}

	cfg := config.DefaultConfig()
	if err := config.SaveConfig(dir, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
