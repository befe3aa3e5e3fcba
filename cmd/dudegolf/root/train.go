package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MolochDaGod/DudeGolf/internal/engine"
	"github.com/MolochDaGod/DudeGolf/internal/ui"
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train <power|accuracy|spin|putting|recovery>",
		Short: "Spend a skill point on a stat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stat := engine.StatName(args[0])
			if !stat.IsValid() {
				return fmt.Errorf("unknown stat %q", args[0])
			}

			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return err
			}

			ok, err := svc.SpendSkillPoint(ctx, stat)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("cannot train %s: no skill points or stat is maxed", stat)
			}
			val := *svc.Ledger().BaseStats.Field(stat)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %.1f (%d points left)\n",
				ui.Good.Render(ui.IconSparkle), stat, val, svc.Ledger().SkillPoints)
			return nil
		},
	}
	return cmd
}
