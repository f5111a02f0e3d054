package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/partmark/internal/ports/primary"
	"github.com/example/partmark/internal/wire"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate a batch of labels with distinct random serials",
	Long: `Generate one label per distinct random serial number.

Every label in the batch shares a run ID, so the whole emission can be
listed later with 'partmark history --run <id>'.

Examples:
  partmark batch --count 10 --part SHAFT-B2
  partmark batch --count 5 --part SHAFT-B2 --cycles 2000 --prefix LOT --length 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		count, _ := cmd.Flags().GetInt("count")
		partNumber, _ := cmd.Flags().GetString("part")
		cycles, _ := cmd.Flags().GetInt("cycles")
		prefix, _ := cmd.Flags().GetString("prefix")
		length, _ := cmd.Flags().GetInt("length")
		symbology, _ := cmd.Flags().GetString("symbology")
		format, _ := cmd.Flags().GetString("format")

		if count <= 0 {
			return fmt.Errorf("--count must be positive")
		}
		if !cmd.Flags().Changed("cycles") {
			cycles = wire.Config().DefaultCycles
		}

		resp, err := wire.LabelService().GenerateLabelBatch(ctx, primary.GenerateLabelBatchRequest{
			Count:         count,
			PartNumber:    partNumber,
			ServiceCycles: cycles,
			SerialPrefix:  prefix,
			SerialLength:  length,
			Symbology:     symbology,
			ImageFormat:   format,
		})
		if err != nil {
			return fmt.Errorf("failed to generate batch: %w", err)
		}

		fmt.Printf("✓ Generated %d label(s) in run %s\n\n", len(resp.Labels), resp.RunID)
		for _, l := range resp.Labels {
			fmt.Printf("  %-9s %-14s %s\n", l.LabelID, l.SerialNumber, l.Path)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntP("count", "n", 0, "Number of labels to generate (required)")
	batchCmd.Flags().StringP("part", "p", "", "Part number to encode (required)")
	batchCmd.Flags().IntP("cycles", "c", 0, "Service cycle count (defaults to the configured default_cycles)")
	batchCmd.Flags().String("prefix", "", "Prefix for the random serials")
	batchCmd.Flags().Int("length", 0, "Digit count for the random serials")
	batchCmd.Flags().String("symbology", "", "Barcode symbology: code128 or qr")
	batchCmd.Flags().String("format", "", "Image format: jpeg or png")
	batchCmd.MarkFlagRequired("count")
	batchCmd.MarkFlagRequired("part")
}

// BatchCmd returns the batch command
func BatchCmd() *cobra.Command {
	return batchCmd
}
