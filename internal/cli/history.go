package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/partmark/internal/ports/primary"
	"github.com/example/partmark/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded labels, newest first",
	Long: `List labels recorded in the ledger, newest first.

Examples:
  partmark history
  partmark history --part GEAR-7 --limit 10
  partmark history --serial SN12345678
  partmark history --run 3f2d8a1e-6c54-4b8e-9a7d-0b1c2d3e4f50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		partNumber, _ := cmd.Flags().GetString("part")
		serialNumber, _ := cmd.Flags().GetString("serial")
		runID, _ := cmd.Flags().GetString("run")
		limit, _ := cmd.Flags().GetInt("limit")

		return wire.LabelAdapter().List(ctx, primary.ListLabelsRequest{
			PartNumber:   partNumber,
			SerialNumber: serialNumber,
			RunID:        runID,
			Limit:        limit,
		})
	},
}

func init() {
	historyCmd.Flags().StringP("part", "p", "", "Filter by part number")
	historyCmd.Flags().StringP("serial", "s", "", "Filter by serial number")
	historyCmd.Flags().String("run", "", "Filter by batch run ID")
	historyCmd.Flags().IntP("limit", "l", 0, "Maximum rows to show (0 = all)")
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	return historyCmd
}
