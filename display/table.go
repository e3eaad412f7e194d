package display

import (
	"fmt"
	"image/color"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/they4kman/concord/game"
)

var tileColors = map[game.TileState]color.Color{
	game.FaceDown: colornames.Royalblue,
	game.FaceUp:   colornames.White,
	game.Matched:  colornames.Limegreen,
	game.Wildcard: colornames.Lightgray,
}

// table is the screen of a game in progress
type table struct {
	labels  game.Labels
	loop    *game.Loop
	session *game.Session
	layout  layout

	complete *game.GameComplete
}

func newTable(config game.GameConfig, size int, seed int64, loop *game.Loop, log logrus.FieldLogger) (*table, error) {
	board, err := game.NewBoard(config.BoardConfig(size, seed))
	if err != nil {
		return nil, err
	}

	// Whatever the previous session left queued belongs to it
	loop.Reset()

	t := &table{
		labels:  config.Labels,
		loop:    loop,
		session: game.NewSession(board, loop, log),
		layout:  newLayout(size),
	}
	t.session.Subscribe(func(notification game.Notification) {
		if complete, isComplete := notification.(game.GameComplete); isComplete {
			t.complete = &complete
		}
	})

	log.WithFields(logrus.Fields{"size": size, "seed": seed}).Info("new game")
	return t, nil
}

// update forwards clicks to the session and applies whatever is queued.
// It returns true once the player asks for a new game.
func (t *table) update(win *pixelgl.Window) bool {
	if win.JustPressed(pixelgl.KeyN) {
		return true
	}

	if t.complete != nil {
		return win.JustPressed(pixelgl.KeyEnter) || win.JustPressed(pixelgl.MouseButtonLeft)
	}

	if win.JustPressed(pixelgl.MouseButtonLeft) {
		if id, ok := t.layout.screenToTile(win.MousePosition()); ok {
			t.loop.Post(game.TileSelected{ID: id})
		}
	}

	t.loop.Drain(t.session)
	return false
}

func (t *table) draw(win *pixelgl.Window, atlas *text.Atlas) {
	board := t.session.Board()

	imd := imdraw.New(nil)
	for _, tile := range board.Tiles() {
		rect := t.layout.tileRect(tile.ID())
		imd.Color = tileColors[tile.State()]
		imd.Push(rect.Min, rect.Max)
		imd.Rectangle(0)
	}
	imd.Draw(win)

	value := text.New(pixel.ZV, atlas)
	for _, tile := range board.Tiles() {
		state := tile.State()
		if state != game.FaceUp && state != game.Matched {
			continue
		}

		value.Clear()
		value.Color = colornames.Black
		fmt.Fprint(value, tile.Value())
		drawCentered(win, value, t.layout.tileRect(tile.ID()).Center(), 2.5)
	}

	status := text.New(t.layout.statusOrigin(), atlas)
	status.Color = colornames.Black
	fmt.Fprint(status, t.labels.StatusLine(t.session.Status()))
	status.Draw(win, pixel.IM.Scaled(status.Orig, 1.5))

	footer := text.New(t.layout.footerOrigin(), atlas)
	footer.Color = colornames.Dimgray
	fmt.Fprint(footer, t.labels.Abandon)
	footer.Draw(win, pixel.IM)

	if t.complete != nil {
		t.drawNotice(win, atlas)
	}
}

func (t *table) drawNotice(win *pixelgl.Window, atlas *text.Atlas) {
	bounds := t.layout.bounds
	center := bounds.Center()

	imd := imdraw.New(nil)
	imd.Color = pixel.RGB(0, 0, 0).Mul(pixel.Alpha(0.6))
	imd.Push(bounds.Min, bounds.Max)
	imd.Rectangle(0)
	imd.Draw(win)

	notice := text.New(pixel.ZV, atlas)
	notice.Color = colornames.White
	fmt.Fprint(notice, t.labels.CompleteNotice(t.complete.Attempts))
	drawCentered(win, notice, center.Add(pixel.V(0, 20)), 1.2)

	restart := text.New(pixel.ZV, atlas)
	restart.Color = colornames.Limegreen
	fmt.Fprint(restart, t.labels.NewGame)
	drawCentered(win, restart, center.Sub(pixel.V(0, 20)), 1.2)
}
