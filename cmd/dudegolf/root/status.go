package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MolochDaGod/DudeGolf/internal/engine"
	"github.com/MolochDaGod/DudeGolf/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player level, stats and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			l := svc.Ledger()
			next := engine.ExperienceForLevel(l.Level + 1)
			toNext := uint32(0)
			if next > l.Experience {
				toNext = next - l.Experience
			}

			fmt.Fprintln(out, ui.Heading(ui.IconGolf, "Player Status — "+l.PlayerUID))
			fmt.Fprintln(out, ui.LabelValue("Level", l.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d %s next at %d (%d to go)", l.Experience, ui.XPBar(l.Experience, next, 20), next, toNext)))
			fmt.Fprintln(out, ui.LabelValue("Skill points", l.SkillPoints))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats (base → total)"))
			total := l.TotalStats(svc.Catalog())
			printStat(out, "Power", l.BaseStats.Power, total.Power)
			printStat(out, "Accuracy", l.BaseStats.Accuracy, total.Accuracy)
			printStat(out, "Spin", l.BaseStats.Spin, total.Spin)
			printStat(out, "Putting", l.BaseStats.Putting, total.Putting)
			printStat(out, "Recovery", l.BaseStats.Recovery, total.Recovery)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🏌️ Career"))
			fmt.Fprintf(out, "- holes played: %d (aces %d · eagles %d · birdies %d · pars %d)\n",
				l.HolesPlayed, l.HolesInOne, l.Eagles, l.Birdies, l.Pars)
			fmt.Fprintf(out, "- longest drive: %.1f yd · longest putt: %.1f ft · tournaments won: %d\n",
				l.LongestDrive, l.LongestPutt, l.TournamentsWon)
			fmt.Fprintln(out, "")

			checker := engine.NewAchievementChecker(l, svc.Catalog())
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, checker.CountEarned(), checker.CountTotal())))
			for _, a := range checker.GetAchievements() {
				mark := ui.Muted.Render("·")
				name := ui.Muted.Render(a.Name)
				if a.Earned {
					mark = ui.Good.Render("✓")
					name = ui.Gold.Render(a.Name)
				}
				fmt.Fprintf(out, "%s %s %s %s\n", mark, a.Icon, name, ui.Muted.Render(a.Description))
			}
			return nil
		},
	}
	return cmd
}

func printStat(out io.Writer, name string, base, total float64) {
	fmt.Fprintf(out, "- %s %.1f → %.1f %s\n",
		ui.Key.Render(name+":"), base, total,
		ui.Muted.Render(fmt.Sprintf("(x%.2f)", engine.Multiplier(total))))
}
