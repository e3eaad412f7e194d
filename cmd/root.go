package cmd

import (
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/concord/display"
	"github.com/they4kman/concord/game"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "concord",
	Short: "Play a memory-matching game of pairs",
	Long: `concord is a memory game: flip two tiles at a time and find
every matching pair in as few attempts as possible.

Run with no arguments to choose a board size and play
	concord

Watch the computer play a game in the terminal
	concord demo 6
`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		pixelgl.Run(func() {
			err = display.Run(display.Config{
				Game: game.NewGameConfig(),
				Seed: time.Now().UnixNano(),
				Log:  log,
			})
		})
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
}
