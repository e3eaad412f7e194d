package display

import (
	"fmt"
	"strconv"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"

	"github.com/they4kman/concord/game"
)

const optionHeight = 36

// picker is the screen offering the configured board sizes
type picker struct {
	config   game.GameConfig
	selected int
	bounds   pixel.Rect
}

func newPicker(config game.GameConfig) *picker {
	return &picker{
		config: config,
		bounds: pixel.R(0, 0, minWindowWidth, pickerHeight),
	}
}

func (p *picker) optionRect(i int) pixel.Rect {
	top := p.bounds.Max.Y - 70 - float64(i*optionHeight)
	return pixel.R(margin*4, top-optionHeight+4, p.bounds.W()-margin*4, top)
}

// update handles input and returns the chosen size once the user confirms one
func (p *picker) update(win *pixelgl.Window) (int, bool) {
	sizes := p.config.Sizes

	if win.JustPressed(pixelgl.KeyUp) && p.selected > 0 {
		p.selected--
	}
	if win.JustPressed(pixelgl.KeyDown) && p.selected < len(sizes)-1 {
		p.selected++
	}

	for _, r := range win.Typed() {
		if size, err := strconv.Atoi(string(r)); err == nil && p.config.HasSize(size) {
			return size, true
		}
	}

	if win.JustPressed(pixelgl.MouseButtonLeft) {
		for i := range sizes {
			if p.optionRect(i).Contains(win.MousePosition()) {
				return sizes[i], true
			}
		}
	}

	if win.JustPressed(pixelgl.KeyEnter) {
		return sizes[p.selected], true
	}

	return 0, false
}

func (p *picker) draw(win *pixelgl.Window, atlas *text.Atlas) {
	labels := p.config.Labels

	title := text.New(pixel.V(margin*2, p.bounds.Max.Y-40), atlas)
	title.Color = colornames.Black
	fmt.Fprint(title, labels.PickSize)
	title.Draw(win, pixel.IM.Scaled(title.Orig, 1.5))

	imd := imdraw.New(nil)
	for i := range p.config.Sizes {
		if i == p.selected {
			imd.Color = colornames.Royalblue
		} else {
			imd.Color = colornames.Lightsteelblue
		}
		rect := p.optionRect(i)
		imd.Push(rect.Min, rect.Max)
		imd.Rectangle(0)
	}
	imd.Draw(win)

	option := text.New(pixel.ZV, atlas)
	for i, size := range p.config.Sizes {
		option.Clear()
		option.Color = colornames.White
		fmt.Fprint(option, labels.SizeLabel(size))
		drawCentered(win, option, p.optionRect(i).Center(), 1.5)
	}

	footer := text.New(pixel.V(margin, footerHeight/2-5), atlas)
	footer.Color = colornames.Dimgray
	fmt.Fprint(footer, labels.Start)
	footer.Draw(win, pixel.IM)
}

func drawCentered(win *pixelgl.Window, txt *text.Text, center pixel.Vec, scale float64) {
	offset := center.Sub(txt.Bounds().Center())
	txt.Draw(win, pixel.IM.Moved(offset).Scaled(center, scale))
}
