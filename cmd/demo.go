package cmd

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/concord/director/recall"
	"github.com/they4kman/concord/game"
)

const demoInterval = 250 * time.Millisecond

var demoCmd = &cobra.Command{
	Use:   "demo [size]",
	Short: "Watch the computer play a game",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := game.NewGameConfig()

		size := config.Sizes[0]
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid size %q", args[0])
			}
			size = parsed
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return runDemo(ctx, config, size, time.Now().UnixNano())
	},
}

func runDemo(ctx context.Context, config game.GameConfig, size int, seed int64) error {
	board, err := game.NewBoard(config.BoardConfig(size, seed))
	if err != nil {
		return err
	}

	loop := game.NewLoop(clock.New())
	session := game.NewSession(board, loop, log)
	session.Subscribe(func(notification game.Notification) {
		if changed, ok := notification.(game.StatusChanged); ok {
			log.WithFields(logrus.Fields{
				"attempts": changed.Status.Attempts,
				"pairs":    changed.Status.PairsFound,
			}).Info(config.Labels.StatusLine(changed.Status))
		}
	})

	complete, err := game.Autoplay(ctx, game.AutoplayConfig{
		Loop:     loop,
		Session:  session,
		Director: &recall.Director{},
		Interval: demoInterval,
	})
	if err != nil {
		return err
	}

	log.Info(config.Labels.CompleteNotice(complete.Attempts))
	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
