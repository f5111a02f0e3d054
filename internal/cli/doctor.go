package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/partmark/internal/config"
	"github.com/example/partmark/internal/core/label"
	"github.com/example/partmark/internal/db"
	"github.com/example/partmark/internal/version"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the partmark environment",
		Long: `Environment health check for partmark.

Validates:
- Config file (.partmark/config.json) and its values
- Data directory (~/.partmark/) and database file
- Database schema version
- Output directory writability
- Binary installation and PATH

Examples:
  partmark doctor              # Run full health check
  partmark doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{}
			hasErrors := false

			// Run all checks
			results = append(results, checkConfig())
			results = append(results, checkDataDir())
			results = append(results, checkSchema())
			results = append(results, checkOutputDir())
			results = append(results, checkBinary())

			// Check for errors
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				// Print compact table
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				// Print details for non-passing checks
				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'partmark init' to set up the environment.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkConfig validates the config file in the working directory
func checkConfig() CheckResult {
	cwd, err := os.Getwd()
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: "  Cannot determine working directory"}
	}

	path := filepath.Join(cwd, ".partmark", "config.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Config",
			Status:  "⚠",
			Details: "  No .partmark/config.json, built-in defaults in use\n  Run: partmark init",
		}
	}

	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return CheckResult{
			Name:    "Config",
			Status:  "✗",
			Details: "  Cannot parse .partmark/config.json",
		}
	}

	if _, err := label.NormalizeSymbology(cfg.Symbology); err != nil {
		return CheckResult{
			Name:    "Config",
			Status:  "✗",
			Details: fmt.Sprintf("  Invalid symbology '%s' (use code128 or qr)", cfg.Symbology),
		}
	}
	if _, err := label.NormalizeFormat(cfg.ImageFormat); err != nil {
		return CheckResult{
			Name:    "Config",
			Status:  "✗",
			Details: fmt.Sprintf("  Invalid image_format '%s' (use jpeg or png)", cfg.ImageFormat),
		}
	}

	return CheckResult{Name: "Config", Status: "✓"}
}

// checkDataDir validates the data directory and database file
func checkDataDir() CheckResult {
	dbPath, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "Data Dir", Status: "✗", Details: "  Cannot resolve database path"}
	}

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Data Dir",
			Status:  "✗",
			Details: fmt.Sprintf("  Missing: %s\n  Run: partmark init", filepath.Dir(dbPath)),
		}
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Data Dir",
			Status:  "✗",
			Details: fmt.Sprintf("  Missing database: %s\n  Run: partmark init", dbPath),
		}
	}

	return CheckResult{Name: "Data Dir", Status: "✓"}
}

// checkSchema verifies the database schema is at the latest version
func checkSchema() CheckResult {
	dbPath, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "Schema", Status: "✗", Details: "  Cannot resolve database path"}
	}

	// Opening the DB would create it, so skip when it does not exist yet
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Schema",
			Status:  "⚠",
			Details: "  Skipped (database not initialized)",
		}
	}

	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Schema", Status: "✗", Details: "  Cannot open database"}
	}

	var current int
	err = database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current)
	if err != nil {
		return CheckResult{
			Name:    "Schema",
			Status:  "✗",
			Details: "  Cannot read schema_version table\n  Run: partmark init",
		}
	}

	if current < db.LatestVersion() {
		return CheckResult{
			Name:    "Schema",
			Status:  "⚠",
			Details: fmt.Sprintf("  Schema at version %d, latest is %d\n  Run: partmark init", current, db.LatestVersion()),
		}
	}

	return CheckResult{Name: "Schema", Status: "✓"}
}

// checkOutputDir verifies the output directory is writable
func checkOutputDir() CheckResult {
	cwd, err := os.Getwd()
	if err != nil {
		return CheckResult{Name: "Output Dir", Status: "✗", Details: "  Cannot determine working directory"}
	}

	cfg := config.LoadOrDefault(cwd)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return CheckResult{
			Name:    "Output Dir",
			Status:  "✗",
			Details: fmt.Sprintf("  Cannot create %s", cfg.OutputDir),
		}
	}

	// Probe writability with a throwaway file
	probe := filepath.Join(cfg.OutputDir, ".partmark-doctor")
	if err := os.WriteFile(probe, []byte("probe"), 0644); err != nil {
		return CheckResult{
			Name:    "Output Dir",
			Status:  "✗",
			Details: fmt.Sprintf("  %s is not writable", cfg.OutputDir),
		}
	}
	os.Remove(probe)

	return CheckResult{Name: "Output Dir", Status: "✓"}
}

// checkBinary validates partmark binary installation
func checkBinary() CheckResult {
	binPath, err := exec.LookPath("partmark")
	if err != nil {
		return CheckResult{
			Name:    "Binary",
			Status:  "⚠",
			Details: "  'partmark' not found in PATH\n  Run: make install",
		}
	}

	return CheckResult{Name: "Binary", Status: "✓", Details: fmt.Sprintf("  %s (%s)", binPath, version.String())}
}
