package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MolochDaGod/DudeGolf/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Interactive bag browser (TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return err
			}
			return tui.Run(ctx, svc)
		},
	}
	return cmd
}
