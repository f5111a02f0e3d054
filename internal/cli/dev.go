package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/partmark/internal/db"
)

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities (use via partmark-dev shim)",
		Long: `Development utilities for working with the partmark dev database.

These commands are intended to be run via the partmark-dev shim, which
sets PARTMARK_DB_PATH to ~/.partmark/dev.db. Running without the shim
will error to prevent accidental modification of the real ledger.`,
	}

	cmd.AddCommand(devResetCmd())
	return cmd
}

func devResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset dev database with fresh fixtures",
		Long: `Delete the dev database and recreate it with fixture data.

This command:
1. Deletes the existing dev database file
2. Creates a fresh database with the current schema
3. Seeds fixture labels for development

Safety: This command requires PARTMARK_DB_PATH to be set (via the
partmark-dev shim) to prevent accidental reset of the real ledger.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Safety check: require PARTMARK_DB_PATH to be set
			dbPath := os.Getenv("PARTMARK_DB_PATH")
			if dbPath == "" {
				return fmt.Errorf("PARTMARK_DB_PATH not set - use 'partmark-dev dev reset' instead of 'partmark dev reset'\n\nThis safety check prevents accidental reset of your label ledger")
			}

			// Confirmation unless --force
			if !force {
				fmt.Printf("This will delete and recreate: %s\n", dbPath)
				fmt.Print("Continue? [y/N] ")
				var response string
				fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			// Close any existing DB connection
			db.Close()

			// Delete existing database
			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete database: %w", err)
			}
			fmt.Printf("✓ Deleted %s\n", dbPath)

			// Create fresh database with schema
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}
			fmt.Println("✓ Created fresh database with schema")

			// Seed fixtures
			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}
			fmt.Println("✓ Seeded fixture data")

			fmt.Println("\nDev database reset complete!")
			fmt.Println("\nSeeded entities:")
			fmt.Println("  - 2 singleton labels")
			fmt.Println("  - 1 batch run of 3 labels")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
