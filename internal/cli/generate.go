package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/partmark/internal/ports/primary"
	"github.com/example/partmark/internal/wire"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a barcode label image for a part",
	Long: `Generate a barcode label image and record it in the ledger.

The label encodes the serial number, service cycle count, and part number
in a pipe-delimited payload. The image lands in the configured output
directory.

Examples:
  partmark generate --serial SN12345 --part GEAR-7 --cycles 5000
  partmark generate --serial SN12345 --part GEAR-7          # default cycles
  partmark generate --random-serial --part GEAR-7           # drawn serial
  partmark generate --serial SN12345 --part GEAR-7 --symbology qr --format png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		serialNumber, _ := cmd.Flags().GetString("serial")
		partNumber, _ := cmd.Flags().GetString("part")
		cycles, _ := cmd.Flags().GetInt("cycles")
		randomSerial, _ := cmd.Flags().GetBool("random-serial")
		prefix, _ := cmd.Flags().GetString("prefix")
		length, _ := cmd.Flags().GetInt("length")
		symbology, _ := cmd.Flags().GetString("symbology")
		format, _ := cmd.Flags().GetString("format")

		if serialNumber == "" && !randomSerial {
			return fmt.Errorf("either --serial or --random-serial is required")
		}
		if serialNumber != "" && randomSerial {
			return fmt.Errorf("--serial and --random-serial are mutually exclusive")
		}

		var resp *primary.GenerateLabelResponse
		var err error

		switch {
		case randomSerial:
			if !cmd.Flags().Changed("cycles") {
				cycles = wire.Config().DefaultCycles
			}
			resp, err = wire.LabelService().GenerateLabelWithRandomSerial(ctx, primary.GenerateLabelWithRandomSerialRequest{
				PartNumber:    partNumber,
				ServiceCycles: cycles,
				SerialPrefix:  prefix,
				SerialLength:  length,
				Symbology:     symbology,
				ImageFormat:   format,
			})
		case cmd.Flags().Changed("cycles"):
			resp, err = wire.LabelService().GenerateLabel(ctx, primary.GenerateLabelRequest{
				SerialNumber:  serialNumber,
				ServiceCycles: cycles,
				PartNumber:    partNumber,
				Symbology:     symbology,
				ImageFormat:   format,
			})
		default:
			resp, err = wire.LabelService().GenerateLabelWithDefaultCycles(ctx, primary.GenerateLabelWithDefaultCyclesRequest{
				SerialNumber: serialNumber,
				PartNumber:   partNumber,
				Symbology:    symbology,
				ImageFormat:  format,
			})
		}
		if err != nil {
			return fmt.Errorf("failed to generate label: %w", err)
		}

		fmt.Printf("✓ Generated label %s\n", resp.LabelID)
		fmt.Printf("  Serial:  %s\n", resp.SerialNumber)
		fmt.Printf("  Payload: %s\n", resp.Payload)
		fmt.Printf("  Image:   %s\n", resp.Path)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("serial", "s", "", "Serial number to encode")
	generateCmd.Flags().StringP("part", "p", "", "Part number to encode (required)")
	generateCmd.Flags().IntP("cycles", "c", 0, "Service cycle count (defaults to the configured default_cycles)")
	generateCmd.Flags().Bool("random-serial", false, "Draw a random serial number instead of --serial")
	generateCmd.Flags().String("prefix", "", "Prefix for the random serial (with --random-serial)")
	generateCmd.Flags().Int("length", 0, "Digit count for the random serial (with --random-serial)")
	generateCmd.Flags().String("symbology", "", "Barcode symbology: code128 or qr")
	generateCmd.Flags().String("format", "", "Image format: jpeg or png")
	generateCmd.MarkFlagRequired("part")
}

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	return generateCmd
}
