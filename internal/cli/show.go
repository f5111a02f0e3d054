package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/partmark/internal/wire"
)

var showCmd = &cobra.Command{
	Use:   "show [label-id|serial]",
	Short: "Show a recorded label in detail",
	Long: `Show one recorded label. Accepts a label ID (LBL-001) or a serial
number, in which case the most recent emission for that serial is shown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		arg := args[0]

		adapter := wire.LabelAdapter()
		if isLabelID(arg) {
			if err := validateLabelID(arg); err != nil {
				return err
			}
			_, err := adapter.Show(ctx, arg)
			return err
		}

		_, err := adapter.ShowBySerial(ctx, arg)
		return err
	},
}

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return showCmd
}
