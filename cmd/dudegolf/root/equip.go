package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MolochDaGod/DudeGolf/internal/engine"
	"github.com/MolochDaGod/DudeGolf/internal/ui"
)

func newEquipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equip <slot> <item-id>",
		Short: "Equip an unlocked item into a slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := engine.ParseSlot(args[0])
			if err != nil {
				return err
			}
			id, err := parseItemID(args[1])
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return err
			}

			ok, err := svc.EquipItem(ctx, slot, id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("cannot equip item %d into %s: not unlocked or wrong slot", id, slot)
			}
			item, _ := svc.Catalog().Lookup(id)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconClub+" equipped ")+item.Name)
			return nil
		},
	}
	return cmd
}

func newUnlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock <item-id>",
		Short: "Unlock a catalog item your level allows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return err
			}

			ok, err := svc.UnlockEquipment(ctx, id)
			if err != nil {
				return err
			}
			if !ok {
				if reason := svc.LockReason(id); reason != nil {
					return reason
				}
				return fmt.Errorf("item %d is already unlocked", id)
			}
			item, _ := svc.Catalog().Lookup(id)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconOpen+" unlocked ")+item.Name)
			return nil
		},
	}
	return cmd
}

func parseItemID(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, errors.New("item ID must be a positive number")
	}
	return uint32(n), nil
}
