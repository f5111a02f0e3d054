package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/partmark/internal/ports/primary"
	"github.com/example/partmark/internal/wire"
)

var serialCmd = &cobra.Command{
	Use:   "serial",
	Short: "Draw serial numbers without rendering labels",
	Long:  "Draw random serial numbers using the configured prefix and length",
}

var serialNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Draw a single serial number",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		prefix, _ := cmd.Flags().GetString("prefix")
		length, _ := cmd.Flags().GetInt("length")

		serial, err := wire.SerialService().NewSerial(ctx, primary.NewSerialRequest{
			Prefix: prefix,
			Length: length,
		})
		if err != nil {
			return fmt.Errorf("failed to draw serial: %w", err)
		}

		// Bare output so the serial can be captured in scripts
		fmt.Println(serial)
		return nil
	},
}

var serialBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Draw a batch of distinct serial numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		count, _ := cmd.Flags().GetInt("count")
		prefix, _ := cmd.Flags().GetString("prefix")
		length, _ := cmd.Flags().GetInt("length")

		serials, err := wire.SerialService().NewSerialBatch(ctx, primary.NewSerialBatchRequest{
			Count:  count,
			Prefix: prefix,
			Length: length,
		})
		if err != nil {
			return fmt.Errorf("failed to draw serials: %w", err)
		}

		for _, s := range serials {
			fmt.Println(s)
		}
		return nil
	},
}

func init() {
	serialNewCmd.Flags().String("prefix", "", "Serial prefix")
	serialNewCmd.Flags().Int("length", 0, "Digit count")

	serialBatchCmd.Flags().IntP("count", "n", 0, "Number of serials to draw (required)")
	serialBatchCmd.Flags().String("prefix", "", "Serial prefix")
	serialBatchCmd.Flags().Int("length", 0, "Digit count")
	serialBatchCmd.MarkFlagRequired("count")

	serialCmd.AddCommand(serialNewCmd)
	serialCmd.AddCommand(serialBatchCmd)
}

// SerialCmd returns the serial command
func SerialCmd() *cobra.Command {
	return serialCmd
}
