package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MolochDaGod/DudeGolf/internal/engine"
	"github.com/MolochDaGod/DudeGolf/internal/ui"
)

func newHoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hole <strokes> <par>",
		Short: "Record a completed hole",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strokes, err := strconv.Atoi(args[0])
			if err != nil || strokes < 1 {
				return fmt.Errorf("strokes must be a positive number")
			}
			par, err := strconv.Atoi(args[1])
			if err != nil || par < 1 {
				return fmt.Errorf("par must be a positive number")
			}

			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return err
			}

			res, err := svc.RecordHoleScore(ctx, strokes, par)
			if err != nil {
				return err
			}
			// Distance records and non-levelling awards live in memory
			// until a write-through; save so a one-shot CLI run sticks.
			if err := svc.Save(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Category != engine.ScoreOther {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconStar+" "+string(res.Category)+"!"))
			}
			fmt.Fprintf(out, "%s +%d XP\n", ui.Good.Render(ui.IconBolt), res.XPAwarded)
			if res.LeveledUp {
				fmt.Fprintf(out, "%s now level %d\n", ui.BadgeLevelUp, svc.Ledger().Level)
			}
			return nil
		},
	}
	return cmd
}

func newDriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drive <yards>",
		Short: "Record a drive distance",
		Args:  cobra.ExactArgs(1),
		RunE:  distanceRunE("drive", engine.LongDriveYards, (*engine.Service).RecordDriveDistance),
	}
	return cmd
}

func newPuttCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "putt <feet>",
		Short: "Record a holed putt distance",
		Args:  cobra.ExactArgs(1),
		RunE:  distanceRunE("putt", engine.LongPuttFeet, (*engine.Service).RecordPuttDistance),
	}
	return cmd
}

func distanceRunE(kind string, threshold float64, record func(*engine.Service, context.Context, float64) (bool, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dist, err := strconv.ParseFloat(args[0], 64)
		if err != nil || dist <= 0 {
			return fmt.Errorf("%s distance must be a positive number", kind)
		}

		ctx := context.Background()
		svc, err := openService(ctx)
		if err != nil {
			return err
		}

		newBest, err := record(svc, ctx, dist)
		if err != nil {
			return err
		}
		if err := svc.Save(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !newBest {
			fmt.Fprintln(out, ui.Muted.Render("not a personal best"))
			return nil
		}
		fmt.Fprintf(out, "%s new longest %s: %.1f\n", ui.Good.Render(ui.IconSparkle), kind, dist)
		if dist >= threshold {
			fmt.Fprintf(out, "%s long %s bonus XP\n", ui.Good.Render(ui.IconBolt), kind)
		}
		return nil
	}
}

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Record a completed round",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return err
			}
			leveled, err := svc.RecordRoundComplete(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s +%d XP for the round\n", ui.Good.Render(ui.IconBolt), engine.XPCompletedRound)
			if leveled {
				fmt.Fprintf(cmd.OutOrStdout(), "%s now level %d\n", ui.BadgeLevelUp, svc.Ledger().Level)
			}
			return nil
		},
	}
	return cmd
}

func newTournamentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Record a tournament victory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return err
			}
			leveled, err := svc.RecordTournamentWin(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconTrophy+" tournament won!"))
			if leveled {
				fmt.Fprintf(cmd.OutOrStdout(), "%s now level %d\n", ui.BadgeLevelUp, svc.Ledger().Level)
			}
			return nil
		},
	}
	return cmd
}
