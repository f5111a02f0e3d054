package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/partmark/internal/core/label"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [payload]",
	Short: "Decode a label payload back into its fields",
	Long: `Decode a scanned payload string back into serial number, service
cycles, and part number.

Example:
  partmark decode 'SN:SN12345|SC:5000|PN:PN-ABC-789'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := label.ParsePayload(args[0])
		if err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}

		fmt.Printf("Serial: %s\n", p.SerialNumber)
		fmt.Printf("Cycles: %d\n", p.ServiceCycles)
		fmt.Printf("Part:   %s\n", p.PartNumber)
		return nil
	},
}

// DecodeCmd returns the decode command
func DecodeCmd() *cobra.Command {
	return decodeCmd
}
