package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MolochDaGod/DudeGolf/internal/engine"
	"github.com/MolochDaGod/DudeGolf/internal/ui"
)

func newBagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bag",
		Short: "Show the equipment catalog and what you own",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			l := svc.Ledger()

			fmt.Fprintln(out, ui.Heading(ui.IconBag, "Equipment Bag"))
			for slot := engine.SlotDriver; slot < engine.SlotCount; slot++ {
				fmt.Fprintln(out, ui.H2.Render(slot.String()))
				for _, item := range svc.Catalog().BySlot(slot) {
					marker := ui.LockText(l.IsUnlocked(item.ID), l.Equipped[slot] == item.ID)
					req := ""
					if !l.IsUnlocked(item.ID) {
						req = ui.Warn.Render(fmt.Sprintf(" (level %d)", item.RequiredLevel))
					}
					fmt.Fprintf(out, "  [%2d] %-18s %s%s  %s\n",
						item.ID, item.Name, marker, req, ui.Muted.Render(item.Description))
				}
			}
			return nil
		},
	}
	return cmd
}
