package display

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/concord/game"
)

type Config struct {
	Game game.GameConfig
	Seed int64
	Log  logrus.FieldLogger
}

// Run opens the game window and blocks until it is closed. It must be called
// from within pixelgl.Run.
func Run(config Config) error {
	labels := config.Game.Labels
	chooser := newPicker(config.Game)

	cfg := pixelgl.WindowConfig{
		Title:  labels.Title,
		Bounds: chooser.bounds,
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	defer win.Destroy()

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	loop := game.NewLoop(clock.New())
	seed := config.Seed

	var current *table

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		if current == nil {
			size, chosen := chooser.update(win)
			if chosen {
				current, err = newTable(config.Game, size, seed, loop, config.Log)
				if err != nil {
					return err
				}
				seed = current.session.Board().NextSeed()

				win.SetBounds(current.layout.bounds)
				win.SetTitle(fmt.Sprintf("%s - %s", labels.Title, labels.SizeLabel(size)))
				continue
			}

			chooser.draw(win, atlas)
			continue
		}

		if current.update(win) {
			current = nil
			loop.Reset()

			win.SetBounds(chooser.bounds)
			win.SetTitle(labels.Title)
			continue
		}

		current.draw(win, atlas)
	}

	return nil
}
