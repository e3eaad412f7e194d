package display

import (
	"math"

	"github.com/faiface/pixel"
)

const (
	tileWidth    = 64
	tileGap      = 6
	margin       = 12
	headerHeight = 50
	footerHeight = 30

	minWindowWidth = 360
	pickerHeight   = 260
)

// layout maps board tiles to window coordinates. pixel's origin is the
// bottom-left corner, while tile (0, 0) is drawn top-left.
type layout struct {
	size   int
	bounds pixel.Rect
}

func newLayout(size int) layout {
	grid := float64(size*tileWidth + (size-1)*tileGap)
	width := math.Max(grid+2*margin, minWindowWidth)
	height := grid + 2*margin + headerHeight + footerHeight

	return layout{
		size:   size,
		bounds: pixel.R(0, 0, width, height),
	}
}

func (l layout) gridTopLeft() pixel.Vec {
	grid := float64(l.size*tileWidth + (l.size-1)*tileGap)
	left := (l.bounds.W() - grid) / 2
	return pixel.V(left, l.bounds.Max.Y-headerHeight-margin)
}

func (l layout) tileRect(id int) pixel.Rect {
	x, y := id%l.size, id/l.size
	topLeft := l.gridTopLeft()

	minX := topLeft.X + float64(x*(tileWidth+tileGap))
	maxY := topLeft.Y - float64(y*(tileWidth+tileGap))
	return pixel.R(minX, maxY-tileWidth, minX+tileWidth, maxY)
}

// screenToTile returns the id of the tile under pos, if any. Clicks landing
// in the gaps between tiles hit nothing.
func (l layout) screenToTile(pos pixel.Vec) (int, bool) {
	topLeft := l.gridTopLeft()
	dx, dy := pos.X-topLeft.X, topLeft.Y-pos.Y
	if dx < 0 || dy < 0 {
		return 0, false
	}

	stride := float64(tileWidth + tileGap)
	x, y := int(dx/stride), int(dy/stride)
	if x >= l.size || y >= l.size {
		return 0, false
	}

	id := y*l.size + x
	if !l.tileRect(id).Contains(pos) {
		return 0, false
	}
	return id, true
}

func (l layout) statusOrigin() pixel.Vec {
	return pixel.V(margin, l.bounds.Max.Y-headerHeight/2-5)
}

func (l layout) footerOrigin() pixel.Vec {
	return pixel.V(margin, footerHeight/2-5)
}
