package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MolochDaGod/DudeGolf/internal/ui"
)

const Version = "0.1.0"

var playerFlag string

var rootCmd = &cobra.Command{
	Use:           "dudegolf",
	Short:         "DudeGolf — golf RPG progression tracker",
	Long:          "DudeGolf tracks a golfer's RPG progression: experience, levels, skill points, stats and the equipment bag, saved to a local database.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&playerFlag, "player", "", "player UID (defaults to $DUDEGOLF_PLAYER)")

	rootCmd.AddCommand(
		newStatusCmd(),
		newBagCmd(),
		newEquipCmd(),
		newUnlockCmd(),
		newTrainCmd(),
		newHoleCmd(),
		newDriveCmd(),
		newPuttCmd(),
		newRoundCmd(),
		newTournamentCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
