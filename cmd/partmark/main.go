package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/partmark/internal/cli"
	"github.com/example/partmark/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "partmark",
		Short:   "partmark - barcode label generator for machine parts",
		Version: version.String(),
		Long: `partmark generates Code128 and QR barcode label images for machine parts.
Each label encodes a serial number, service cycle count, and part number,
and every emission is recorded in a local SQLite ledger.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.BatchCmd())
	rootCmd.AddCommand(cli.SerialCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.DecodeCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DevCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
